package models

import "time"

// Service is one of the company services shown on the public site.
// All human-readable fields come as English/Arabic pairs.
type Service struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleEn       string    `gorm:"not null" json:"title_en"`
	TitleAr       string    `gorm:"not null" json:"title_ar"`
	DescriptionEn string    `gorm:"type:text" json:"description_en"`
	DescriptionAr string    `gorm:"type:text" json:"description_ar"`
	Icon          string    `json:"icon"` // icon name or emoji
	Order         int       `gorm:"default:0" json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

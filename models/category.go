package models

import "time"

// ProductCategory groups products and is addressed publicly by its slug.
type ProductCategory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEn    string    `gorm:"not null" json:"name_en"`
	NameAr    string    `gorm:"not null" json:"name_ar"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Order     int       `gorm:"default:0" json:"order"`
	Products  []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// Product belongs to exactly one ProductCategory. Image holds the public
// path of an uploaded file, never the bytes themselves.
type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID    uint            `gorm:"not null;index" json:"category"`
	Category      ProductCategory `gorm:"foreignKey:CategoryID" json:"-"`
	NameEn        string          `gorm:"not null" json:"name_en"`
	NameAr        string          `gorm:"not null" json:"name_ar"`
	DescriptionEn string          `gorm:"type:text" json:"description_en"`
	DescriptionAr string          `gorm:"type:text" json:"description_ar"`
	Image         string          `json:"image"`
	IsFeatured    bool            `gorm:"default:false" json:"is_featured"`
	Order         int             `gorm:"default:0" json:"order"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

package models

import "time"

// ThreeDPrintingProject is a showcase item for the 3D printing section.
type ThreeDPrintingProject struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleEn       string    `gorm:"not null" json:"title_en"`
	TitleAr       string    `gorm:"not null" json:"title_ar"`
	DescriptionEn string    `gorm:"type:text" json:"description_en"`
	DescriptionAr string    `gorm:"type:text" json:"description_ar"`
	Image         string    `json:"image"`
	IsFeatured    bool      `gorm:"default:false" json:"is_featured"`
	Material      string    `json:"material"`   // e.g. PLA, ABS, PETG
	PrintTime     string    `json:"print_time"` // estimated print time
	Order         int       `gorm:"default:0" json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (ThreeDPrintingProject) TableName() string {
	return "three_d_printing_projects"
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Course levels.
const (
	CourseLevelBeginner     = "beginner"
	CourseLevelIntermediate = "intermediate"
	CourseLevelAdvanced     = "advanced"
)

// ValidCourseLevel reports whether level is one of the three allowed values.
func ValidCourseLevel(level string) bool {
	switch level {
	case CourseLevelBeginner, CourseLevelIntermediate, CourseLevelAdvanced:
		return true
	}
	return false
}

// Course is a training course offered by the company.
type Course struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TitleEn       string    `gorm:"not null" json:"title_en"`
	TitleAr       string    `gorm:"not null" json:"title_ar"`
	DescriptionEn string    `gorm:"type:text" json:"description_en"`
	DescriptionAr string    `gorm:"type:text" json:"description_ar"`
	Duration      string    `json:"duration"` // e.g. "3 weeks" or "40 hours"
	Level         string    `gorm:"type:varchar(20);default:'beginner'" json:"level"`
	IsFeatured    bool      `gorm:"default:false" json:"is_featured"`
	Icon          string    `json:"icon"`
	Order         int       `gorm:"default:0" json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.Level == "" {
		c.Level = CourseLevelBeginner
	}
	return nil
}

// LevelDisplay returns the human-readable label for the course level.
func (c Course) LevelDisplay() string {
	switch c.Level {
	case CourseLevelIntermediate:
		return "Intermediate"
	case CourseLevelAdvanced:
		return "Advanced"
	default:
		return "Beginner"
	}
}

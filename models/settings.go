package models

import (
	"time"

	"gorm.io/gorm"
)

// siteSettingsID is the fixed primary key of the single settings row.
const siteSettingsID = 1

// SiteSettings holds the site-wide contact and footer content. Exactly one
// row exists system-wide; it is created with defaults on first access.
type SiteSettings struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CompanyNameEn string    `gorm:"default:'Hydra Tech'" json:"company_name_en"`
	CompanyNameAr string    `gorm:"default:'هيدرا تك'" json:"company_name_ar"`
	ShortAboutEn  string    `gorm:"type:text" json:"short_about_en"`
	ShortAboutAr  string    `gorm:"type:text" json:"short_about_ar"`
	AddressEn     string    `gorm:"type:text" json:"address_en"`
	AddressAr     string    `gorm:"type:text" json:"address_ar"`
	Email         string    `json:"email"`
	Phone1        string    `json:"phone1"`
	Phone2        string    `json:"phone2"`
	FooterTextEn  string    `json:"footer_text_en"`
	FooterTextAr  string    `json:"footer_text_ar"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeSave pins every write to the singleton row, so repeated saves update
// in place instead of creating new rows.
func (s *SiteSettings) BeforeSave(tx *gorm.DB) error {
	s.ID = siteSettingsID
	return nil
}

// LoadSiteSettings returns the singleton settings row, creating it with
// defaults if it does not exist yet. Two concurrent first accesses may both
// try to create; the primary-key constraint lets one win and the loser
// re-fetches the existing row.
func LoadSiteSettings(db *gorm.DB) (SiteSettings, error) {
	var s SiteSettings
	err := db.Where("id = ?", siteSettingsID).
		Attrs(SiteSettings{CompanyNameEn: "Hydra Tech", CompanyNameAr: "هيدرا تك"}).
		FirstOrCreate(&s).Error
	if err != nil {
		var existing SiteSettings
		if ferr := db.First(&existing, siteSettingsID).Error; ferr == nil {
			return existing, nil
		}
		return s, err
	}
	return s, nil
}

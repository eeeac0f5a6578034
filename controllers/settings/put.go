package settingscontroller

import (
	"net/http"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// settingsPayload uses pointers so editors can clear a field by sending an
// empty string, while omitted fields keep their current value.
type settingsPayload struct {
	CompanyNameEn *string `json:"company_name_en"`
	CompanyNameAr *string `json:"company_name_ar"`
	ShortAboutEn  *string `json:"short_about_en"`
	ShortAboutAr  *string `json:"short_about_ar"`
	AddressEn     *string `json:"address_en"`
	AddressAr     *string `json:"address_ar"`
	Email         *string `json:"email"`
	Phone1        *string `json:"phone1"`
	Phone2        *string `json:"phone2"`
	FooterTextEn  *string `json:"footer_text_en"`
	FooterTextAr  *string `json:"footer_text_ar"`
}

// UpdateSiteSettings overwrites submitted fields on the singleton record.
// Every write lands on the same fixed identity, so there is no path to a
// second settings row and nothing to delete.
func UpdateSiteSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload settingsPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		settings, err := models.LoadSiteSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site settings"})
			return
		}

		if payload.CompanyNameEn != nil {
			settings.CompanyNameEn = *payload.CompanyNameEn
		}
		if payload.CompanyNameAr != nil {
			settings.CompanyNameAr = *payload.CompanyNameAr
		}
		if payload.ShortAboutEn != nil {
			settings.ShortAboutEn = *payload.ShortAboutEn
		}
		if payload.ShortAboutAr != nil {
			settings.ShortAboutAr = *payload.ShortAboutAr
		}
		if payload.AddressEn != nil {
			settings.AddressEn = *payload.AddressEn
		}
		if payload.AddressAr != nil {
			settings.AddressAr = *payload.AddressAr
		}
		if payload.Email != nil {
			settings.Email = *payload.Email
		}
		if payload.Phone1 != nil {
			settings.Phone1 = *payload.Phone1
		}
		if payload.Phone2 != nil {
			settings.Phone2 = *payload.Phone2
		}
		if payload.FooterTextEn != nil {
			settings.FooterTextEn = *payload.FooterTextEn
		}
		if payload.FooterTextAr != nil {
			settings.FooterTextAr = *payload.FooterTextAr
		}

		if err := db.Save(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site settings"})
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}

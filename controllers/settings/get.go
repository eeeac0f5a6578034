package settingscontroller

import (
	"net/http"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSiteSettings returns the singleton settings record, creating it with
// defaults on first access.
func GetSiteSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := models.LoadSiteSettings(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site settings"})
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}

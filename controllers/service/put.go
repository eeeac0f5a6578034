package servicecontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateService updates an existing service by ID. Only submitted form
// fields change.
func UpdateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
			return
		}

		var service models.Service
		if err := db.First(&service, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service"})
			}
			return
		}

		if v := c.PostForm("title_en"); v != "" {
			service.TitleEn = v
		}
		if v := c.PostForm("title_ar"); v != "" {
			service.TitleAr = v
		}
		if v := c.PostForm("description_en"); v != "" {
			service.DescriptionEn = v
		}
		if v := c.PostForm("description_ar"); v != "" {
			service.DescriptionAr = v
		}
		if v := c.PostForm("icon"); v != "" {
			service.Icon = v
		}
		if v := c.PostForm("order"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
				return
			}
			service.Order = parsed
		}

		if err := db.Save(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
			return
		}

		c.JSON(http.StatusOK, service)
	}
}

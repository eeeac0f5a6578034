package servicecontroller

import (
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateService creates a new service from console form fields.
func CreateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleEn := c.PostForm("title_en")
		titleAr := c.PostForm("title_ar")
		if titleEn == "" || titleAr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title_en and title_ar are required"})
			return
		}

		order := 0
		if v := c.PostForm("order"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
				return
			}
			order = parsed
		}

		service := models.Service{
			TitleEn:       titleEn,
			TitleAr:       titleAr,
			DescriptionEn: c.PostForm("description_en"),
			DescriptionAr: c.PostForm("description_ar"),
			Icon:          c.PostForm("icon"),
			Order:         order,
		}

		if err := db.Create(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
			return
		}

		c.JSON(http.StatusCreated, service)
	}
}

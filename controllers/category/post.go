package categorycontroller

import (
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// CreateCategory creates a product category. When no slug is submitted it is
// derived from the English name.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		nameEn := c.PostForm("name_en")
		nameAr := c.PostForm("name_ar")
		if nameEn == "" || nameAr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_en and name_ar are required"})
			return
		}

		catSlug := c.PostForm("slug")
		if catSlug == "" {
			catSlug = slug.Make(nameEn)
		}

		var count int64
		if err := db.Model(&models.ProductCategory{}).Where("slug = ?", catSlug).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check slug"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
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

		category := models.ProductCategory{
			NameEn: nameEn,
			NameAr: nameAr,
			Slug:   catSlug,
			Order:  order,
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

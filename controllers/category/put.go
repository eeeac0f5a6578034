package categorycontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateCategory updates an existing category by ID. A changed slug must not
// collide with another category.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var category models.ProductCategory
		if err := db.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
			}
			return
		}

		if v := c.PostForm("name_en"); v != "" {
			category.NameEn = v
		}
		if v := c.PostForm("name_ar"); v != "" {
			category.NameAr = v
		}
		if v := c.PostForm("slug"); v != "" && v != category.Slug {
			var count int64
			if err := db.Model(&models.ProductCategory{}).
				Where("slug = ? AND id <> ?", v, category.ID).
				Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check slug"})
				return
			}
			if count > 0 {
				c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
				return
			}
			category.Slug = v
		}
		if v := c.PostForm("order"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
				return
			}
			category.Order = parsed
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

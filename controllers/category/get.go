package categorycontroller

import (
	"errors"
	"net/http"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCategoryBySlug returns a single category. Categories are addressed by
// slug, not by numeric ID.
// URL param: /product-categories/:slug
func GetCategoryBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var category models.ProductCategory
		if err := db.Where("slug = ?", slug).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
			}
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

package categorycontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/fouad201/hydra-tech/uploads"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteCategory removes a category and every product that belongs to it in
// one transaction. Ownership deletion is explicit here rather than left to
// the store's cascade behavior.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var category models.ProductCategory
		if err := db.Preload("Products").First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
			}
			return
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Product{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category products"})
			return
		}

		if err := tx.Delete(&category).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit category deletion"})
			return
		}

		// Image files only after the commit; a failed delete must not lose files.
		for _, product := range category.Products {
			uploads.RemoveImage(product.Image)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}

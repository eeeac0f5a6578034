package categorycontroller

import (
	"net/http"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCategories returns all product categories in display order.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.ProductCategory{})

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("LOWER(name_en) LIKE LOWER(?) OR LOWER(name_ar) LIKE LOWER(?)", like, like)
		}

		var categories []models.ProductCategory
		if err := query.Order(orderClause(c, "name_en")).Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

// orderClause resolves the ?ordering= parameter against the allow-list.
// Unknown values fall back to the default deterministic ordering.
func orderClause(c *gin.Context, secondary string) string {
	switch c.Query("ordering") {
	case "order":
		return `"order" ASC`
	case "-order":
		return `"order" DESC`
	case "created_at":
		return "created_at ASC"
	case "-created_at":
		return "created_at DESC"
	}
	return `"order" ASC, ` + secondary + " ASC"
}

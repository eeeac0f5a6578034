package servicecontroller

import (
	"net/http"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetServices returns all services. Default order is display order then
// English title; ?ordering= may pick order/created_at (prefix "-" for DESC).
func GetServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Service{})

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"LOWER(title_en) LIKE LOWER(?) OR LOWER(title_ar) LIKE LOWER(?) OR LOWER(description_en) LIKE LOWER(?) OR LOWER(description_ar) LIKE LOWER(?)",
				like, like, like, like,
			)
		}

		var services []models.Service
		if err := query.Order(orderClause(c, "title_en")).Find(&services).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
			return
		}

		c.JSON(http.StatusOK, services)
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

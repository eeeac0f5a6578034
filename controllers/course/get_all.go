package coursecontroller

import (
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCourses returns courses, optionally filtered by level and featured flag.
// Query params: ?level=beginner&is_featured=true&ordering=order
func GetCourses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Course{})

		if level := c.Query("level"); level != "" {
			if !models.ValidCourseLevel(level) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{
					"level": "Level must be one of: beginner, intermediate, advanced.",
				}})
				return
			}
			query = query.Where("level = ?", level)
		}

		if featuredStr := c.Query("is_featured"); featuredStr != "" {
			featured, err := strconv.ParseBool(featuredStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_featured"})
				return
			}
			query = query.Where("is_featured = ?", featured)
		}

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"LOWER(title_en) LIKE LOWER(?) OR LOWER(title_ar) LIKE LOWER(?) OR LOWER(description_en) LIKE LOWER(?) OR LOWER(description_ar) LIKE LOWER(?)",
				like, like, like, like,
			)
		}

		var courses []models.Course
		if err := query.Order(orderClause(c, "title_en")).Find(&courses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
			return
		}

		c.JSON(http.StatusOK, toCourseResponses(courses))
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

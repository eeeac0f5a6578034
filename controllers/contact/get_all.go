package contactcontroller

import (
	"net/http"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetContactMessages lists submissions for the console, newest first.
// Query params: ?status=new&search=alice
func GetContactMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.ContactMessage{})

		if status := c.Query("status"); status != "" {
			if !models.ValidContactStatus(status) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{
					"status": "Status must be one of: new, read, replied, archived.",
				}})
				return
			}
			query = query.Where("status = ?", status)
		}

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(subject) LIKE LOWER(?)",
				like, like, like,
			)
		}

		var messages []models.ContactMessage
		if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, messages)
	}
}

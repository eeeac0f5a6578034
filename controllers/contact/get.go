package contactcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetContactMessageByID returns a single submission for the console.
func GetContactMessageByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
			return
		}

		var msg models.ContactMessage
		if err := db.First(&msg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve message"})
			}
			return
		}

		c.JSON(http.StatusOK, msg)
	}
}

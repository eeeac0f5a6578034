package contactcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateContactMessageStatus lets operators track handling of a submission.
// Status is the only mutable field; everything else stays as submitted.
func UpdateContactMessageStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
			return
		}

		var payload statusPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}
		if !models.ValidContactStatus(payload.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{
				"status": "Status must be one of: new, read, replied, archived.",
			}})
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

		if err := db.Model(&msg).Update("status", payload.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}

		c.JSON(http.StatusOK, msg)
	}
}

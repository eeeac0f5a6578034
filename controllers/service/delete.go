package servicecontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
			return
		}

		var service models.Service
		if err := db.First(&service, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service"})
			}
			return
		}

		if err := db.Delete(&service).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
	}
}

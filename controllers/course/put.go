package coursecontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateCourse updates an existing course by ID. Only submitted form fields
// change.
func UpdateCourse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
			return
		}

		var course models.Course
		if err := db.First(&course, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve course"})
			}
			return
		}

		if v := c.PostForm("title_en"); v != "" {
			course.TitleEn = v
		}
		if v := c.PostForm("title_ar"); v != "" {
			course.TitleAr = v
		}
		if v := c.PostForm("description_en"); v != "" {
			course.DescriptionEn = v
		}
		if v := c.PostForm("description_ar"); v != "" {
			course.DescriptionAr = v
		}
		if v := c.PostForm("duration"); v != "" {
			course.Duration = v
		}
		if v := c.PostForm("level"); v != "" {
			if !models.ValidCourseLevel(v) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{
					"level": "Level must be one of: beginner, intermediate, advanced.",
				}})
				return
			}
			course.Level = v
		}
		if v := c.PostForm("is_featured"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_featured"})
				return
			}
			course.IsFeatured = parsed
		}
		if v := c.PostForm("icon"); v != "" {
			course.Icon = v
		}
		if v := c.PostForm("order"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
				return
			}
			course.Order = parsed
		}

		if err := db.Save(&course).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
			return
		}

		c.JSON(http.StatusOK, toCourseResponse(course))
	}
}

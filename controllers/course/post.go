package coursecontroller

import (
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateCourse creates a new course from console form fields. Level defaults
// to beginner when omitted.
func CreateCourse(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleEn := c.PostForm("title_en")
		titleAr := c.PostForm("title_ar")
		if titleEn == "" || titleAr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title_en and title_ar are required"})
			return
		}

		level := c.PostForm("level")
		if level != "" && !models.ValidCourseLevel(level) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{
				"level": "Level must be one of: beginner, intermediate, advanced.",
			}})
			return
		}

		featured := false
		if v := c.PostForm("is_featured"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_featured"})
				return
			}
			featured = parsed
		}

		order := 0
		if v := c.PostForm("order"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
				return
			}
			order = parsed
		}

		course := models.Course{
			TitleEn:       titleEn,
			TitleAr:       titleAr,
			DescriptionEn: c.PostForm("description_en"),
			DescriptionAr: c.PostForm("description_ar"),
			Duration:      c.PostForm("duration"),
			Level:         level,
			IsFeatured:    featured,
			Icon:          c.PostForm("icon"),
			Order:         order,
		}

		if err := db.Create(&course).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
			return
		}

		c.JSON(http.StatusCreated, toCourseResponse(course))
	}
}

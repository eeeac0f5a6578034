package printingcontroller

import (
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/fouad201/hydra-tech/uploads"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProject creates a new 3D printing project with an optional image
// upload.
func CreateProject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		titleEn := c.PostForm("title_en")
		titleAr := c.PostForm("title_ar")
		if titleEn == "" || titleAr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title_en and title_ar are required"})
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

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = uploads.SaveImage(c, file, "3d-printing")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
		}

		project := models.ThreeDPrintingProject{
			TitleEn:       titleEn,
			TitleAr:       titleAr,
			DescriptionEn: c.PostForm("description_en"),
			DescriptionAr: c.PostForm("description_ar"),
			Image:         imageURL,
			IsFeatured:    featured,
			Material:      c.PostForm("material"),
			PrintTime:     c.PostForm("print_time"),
			Order:         order,
		}

		if err := db.Create(&project).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
			return
		}

		c.JSON(http.StatusCreated, toProjectResponse(project))
	}
}

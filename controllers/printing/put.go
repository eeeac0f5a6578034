package printingcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/fouad201/hydra-tech/uploads"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProject updates an existing 3D printing project by ID. A replaced
// image removes the old file.
func UpdateProject(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
			return
		}

		var project models.ThreeDPrintingProject
		if err := db.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
			}
			return
		}

		if v := c.PostForm("title_en"); v != "" {
			project.TitleEn = v
		}
		if v := c.PostForm("title_ar"); v != "" {
			project.TitleAr = v
		}
		if v := c.PostForm("description_en"); v != "" {
			project.DescriptionEn = v
		}
		if v := c.PostForm("description_ar"); v != "" {
			project.DescriptionAr = v
		}
		if v := c.PostForm("material"); v != "" {
			project.Material = v
		}
		if v := c.PostForm("print_time"); v != "" {
			project.PrintTime = v
		}
		if v := c.PostForm("is_featured"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_featured"})
				return
			}
			project.IsFeatured = parsed
		}
		if v := c.PostForm("order"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
				return
			}
			project.Order = parsed
		}

		if file, err := c.FormFile("image"); err == nil {
			oldImage := project.Image
			imageURL, err := uploads.SaveImage(c, file, "3d-printing")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			project.Image = imageURL
			uploads.RemoveImage(oldImage)
		}

		if err := db.Save(&project).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}

		c.JSON(http.StatusOK, toProjectResponse(project))
	}
}

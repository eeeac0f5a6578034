package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/fouad201/hydra-tech/uploads"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct creates a new product with an optional image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		nameEn := c.PostForm("name_en")
		nameAr := c.PostForm("name_ar")
		categoryIDStr := c.PostForm("category_id")
		if nameEn == "" || nameAr == "" || categoryIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_en, name_ar, and category_id are required"})
			return
		}

		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		var category models.ProductCategory
		if err := db.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category"})
			}
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
			imageURL, err = uploads.SaveImage(c, file, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
		}

		product := models.Product{
			CategoryID:    category.ID,
			Category:      category,
			NameEn:        nameEn,
			NameAr:        nameAr,
			DescriptionEn: c.PostForm("description_en"),
			DescriptionAr: c.PostForm("description_ar"),
			Image:         imageURL,
			IsFeatured:    featured,
			Order:         order,
		}

		if err := db.Omit("Category").Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, toProductResponse(product))
	}
}

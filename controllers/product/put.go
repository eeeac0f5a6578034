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

// UpdateProduct updates an existing product by ID. Accepts the same fields
// as CreateProduct; a replaced image removes the old file.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if v := c.PostForm("category_id"); v != "" {
			categoryID, err := strconv.ParseUint(v, 10, 64)
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
			product.CategoryID = category.ID
			product.Category = category
		}

		if v := c.PostForm("name_en"); v != "" {
			product.NameEn = v
		}
		if v := c.PostForm("name_ar"); v != "" {
			product.NameAr = v
		}
		if v := c.PostForm("description_en"); v != "" {
			product.DescriptionEn = v
		}
		if v := c.PostForm("description_ar"); v != "" {
			product.DescriptionAr = v
		}
		if v := c.PostForm("is_featured"); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_featured"})
				return
			}
			product.IsFeatured = parsed
		}
		if v := c.PostForm("order"); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order"})
				return
			}
			product.Order = parsed
		}

		if file, err := c.FormFile("image"); err == nil {
			oldImage := product.Image
			imageURL, err := uploads.SaveImage(c, file, "products")
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = imageURL
			uploads.RemoveImage(oldImage)
		}

		if err := db.Omit("Category").Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, toProductResponse(product))
	}
}

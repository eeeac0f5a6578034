package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts returns products, optionally filtered by owning category slug
// and featured flag.
// Query params: ?category__slug=automation&is_featured=true&ordering=order
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Preload("Category")

		if catSlug := c.Query("category__slug"); catSlug != "" {
			query = query.
				Joins("JOIN product_categories ON product_categories.id = products.category_id").
				Where("product_categories.slug = ?", catSlug)
		}

		if featuredStr := c.Query("is_featured"); featuredStr != "" {
			featured, err := strconv.ParseBool(featuredStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_featured"})
				return
			}
			query = query.Where("products.is_featured = ?", featured)
		}

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"LOWER(products.name_en) LIKE LOWER(?) OR LOWER(products.name_ar) LIKE LOWER(?) OR LOWER(products.description_en) LIKE LOWER(?) OR LOWER(products.description_ar) LIKE LOWER(?)",
				like, like, like, like,
			)
		}

		var products []models.Product
		if err := query.Order(orderClause(c)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, toProductResponses(products))
	}
}

// orderClause resolves the ?ordering= parameter against the allow-list.
// Unknown values fall back to the default deterministic ordering.
func orderClause(c *gin.Context) string {
	switch c.Query("ordering") {
	case "order":
		return `products."order" ASC`
	case "-order":
		return `products."order" DESC`
	case "created_at":
		return "products.created_at ASC"
	case "-created_at":
		return "products.created_at DESC"
	}
	return `products."order" ASC, products.name_en ASC`
}

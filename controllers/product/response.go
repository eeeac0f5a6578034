package productcontroller

import (
	"time"

	"github.com/fouad201/hydra-tech/models"
)

// productResponse is the public projection of a product: the owning
// category's name and slug are flattened onto the record so the frontend
// never needs a second lookup.
type productResponse struct {
	ID             uint      `json:"id"`
	Category       uint      `json:"category"`
	CategoryNameEn string    `json:"category_name_en"`
	CategoryNameAr string    `json:"category_name_ar"`
	CategorySlug   string    `json:"category_slug"`
	NameEn         string    `json:"name_en"`
	NameAr         string    `json:"name_ar"`
	DescriptionEn  string    `json:"description_en"`
	DescriptionAr  string    `json:"description_ar"`
	Image          *string   `json:"image"`
	IsFeatured     bool      `json:"is_featured"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toProductResponse(p models.Product) productResponse {
	var image *string
	if p.Image != "" {
		image = &p.Image
	}
	return productResponse{
		ID:             p.ID,
		Category:       p.CategoryID,
		CategoryNameEn: p.Category.NameEn,
		CategoryNameAr: p.Category.NameAr,
		CategorySlug:   p.Category.Slug,
		NameEn:         p.NameEn,
		NameAr:         p.NameAr,
		DescriptionEn:  p.DescriptionEn,
		DescriptionAr:  p.DescriptionAr,
		Image:          image,
		IsFeatured:     p.IsFeatured,
		Order:          p.Order,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProductResponses(products []models.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

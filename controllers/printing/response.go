package printingcontroller

import (
	"time"

	"github.com/fouad201/hydra-tech/models"
)

// projectResponse is the public projection of a 3D printing project. The
// image is null rather than an empty string when no file was uploaded.
type projectResponse struct {
	ID            uint      `json:"id"`
	TitleEn       string    `json:"title_en"`
	TitleAr       string    `json:"title_ar"`
	DescriptionEn string    `json:"description_en"`
	DescriptionAr string    `json:"description_ar"`
	Image         *string   `json:"image"`
	IsFeatured    bool      `json:"is_featured"`
	Material      string    `json:"material"`
	PrintTime     string    `json:"print_time"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toProjectResponse(p models.ThreeDPrintingProject) projectResponse {
	var image *string
	if p.Image != "" {
		image = &p.Image
	}
	return projectResponse{
		ID:            p.ID,
		TitleEn:       p.TitleEn,
		TitleAr:       p.TitleAr,
		DescriptionEn: p.DescriptionEn,
		DescriptionAr: p.DescriptionAr,
		Image:         image,
		IsFeatured:    p.IsFeatured,
		Material:      p.Material,
		PrintTime:     p.PrintTime,
		Order:         p.Order,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProjectResponses(projects []models.ThreeDPrintingProject) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out
}

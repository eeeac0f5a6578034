package coursecontroller

import (
	"time"

	"github.com/fouad201/hydra-tech/models"
)

// courseResponse adds the human-readable level label to the course record.
type courseResponse struct {
	ID            uint      `json:"id"`
	TitleEn       string    `json:"title_en"`
	TitleAr       string    `json:"title_ar"`
	DescriptionEn string    `json:"description_en"`
	DescriptionAr string    `json:"description_ar"`
	Duration      string    `json:"duration"`
	Level         string    `json:"level"`
	LevelDisplay  string    `json:"level_display"`
	IsFeatured    bool      `json:"is_featured"`
	Icon          string    `json:"icon"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toCourseResponse(course models.Course) courseResponse {
	return courseResponse{
		ID:            course.ID,
		TitleEn:       course.TitleEn,
		TitleAr:       course.TitleAr,
		DescriptionEn: course.DescriptionEn,
		DescriptionAr: course.DescriptionAr,
		Duration:      course.Duration,
		Level:         course.Level,
		LevelDisplay:  course.LevelDisplay(),
		IsFeatured:    course.IsFeatured,
		Icon:          course.Icon,
		Order:         course.Order,
		CreatedAt:     course.CreatedAt,
		UpdatedAt:     course.UpdatedAt,
	}
}

func toCourseResponses(courses []models.Course) []courseResponse {
	out := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, toCourseResponse(course))
	}
	return out
}

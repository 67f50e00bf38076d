package dto

import "github.com/sonquang/laixe-registry/internal/app/models"

// TeacherListResponse wraps a filtered listing of the collection
type TeacherListResponse struct {
	Teachers []models.TeacherRecord `json:"teachers"`
	Total    int                    `json:"total"`
	Filter   string                 `json:"filter"`
}

// TeacherSearchResponse wraps a single search hit
type TeacherSearchResponse struct {
	Teacher models.TeacherRecord `json:"teacher"`
	Query   string               `json:"query"`
}

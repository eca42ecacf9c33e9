package dto

import (
	"time"

	"github.com/compass-edu/compass-api/internal/models"
)

// AnswerSubmitRequest captures one answer submission. Value is the selected
// option index encoded as a string, matching how the catalog stores options.
type AnswerSubmitRequest struct {
	QuestionID   uint   `json:"question_id" validate:"required"`
	Value        string `json:"value" validate:"required,max=64"`
	TimeSpentSec int    `json:"time_spent_sec" validate:"gte=0"`
}

// AnswerResponse echoes the stored answer including its derived score.
type AnswerResponse struct {
	ID           uint      `json:"id"`
	QuestionID   uint      `json:"question_id"`
	Value        string    `json:"value"`
	Score        float64   `json:"score"`
	TimeSpentSec int       `json:"time_spent_sec"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAnswerResponse maps a stored answer to its response shape.
func NewAnswerResponse(a models.Answer) AnswerResponse {
	return AnswerResponse{
		ID:           a.ID,
		QuestionID:   a.QuestionID,
		Value:        a.Value,
		Score:        a.Score,
		TimeSpentSec: a.TimeSpentSec,
		UpdatedAt:    a.UpdatedAt,
	}
}

// SectionProgress reports how far a user has progressed through one section.
type SectionProgress struct {
	Section   string `json:"section"`
	Answered  int64  `json:"answered"`
	Available int64  `json:"available"`
}

// ProgressResponse summarises assessment progress across all sections.
type ProgressResponse struct {
	Sections []SectionProgress `json:"sections"`
	Complete bool              `json:"complete"`
}

package dto

import "github.com/compass-edu/compass-api/internal/models"

// QuestionResponse is the client-facing question shape. The answer key and
// reverse-scoring flag stay server-side; leaking either would let a client
// game the assessment.
type QuestionResponse struct {
	ID           uint     `json:"id"`
	Section      string   `json:"section"`
	SubDomain    string   `json:"sub_domain,omitempty"`
	Type         string   `json:"type"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	Difficulty   string   `json:"difficulty,omitempty"`
	TimeLimitSec int      `json:"time_limit_sec"`
}

// NewQuestionResponse maps a catalog question to its response shape.
func NewQuestionResponse(q models.Question) QuestionResponse {
	return QuestionResponse{
		ID:           q.ID,
		Section:      q.Section,
		SubDomain:    q.SubDomain,
		Type:         q.Type,
		Text:         q.Text,
		Options:      q.Options,
		Difficulty:   q.Difficulty,
		TimeLimitSec: q.TimeLimitSec,
	}
}

// NewQuestionListResponse maps a slice of catalog questions.
func NewQuestionListResponse(questions []models.Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, NewQuestionResponse(q))
	}
	return responses
}

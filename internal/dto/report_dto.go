package dto

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/compass-edu/compass-api/internal/models"
)

// ReportGenerateRequest asks for a fresh report under a named assessment type.
type ReportGenerateRequest struct {
	AssessmentType string `json:"assessment_type" validate:"required,max=64"`
	TopMatches     int    `json:"top_matches" validate:"gte=0,lte=20"`
}

// ReportMatchResponse is one ranked career inside a report.
type ReportMatchResponse struct {
	CareerID        uint   `json:"career_id"`
	Title           string `json:"title"`
	MatchPercentage int    `json:"match_percentage"`
	Rank            int    `json:"rank"`
}

// ReportResponse is the full rendered report payload.
type ReportResponse struct {
	ID                 uint                  `json:"id"`
	UserID             uint                  `json:"user_id"`
	Audience           string                `json:"audience"`
	Version            int                   `json:"version"`
	AptitudeScores     map[string]float64    `json:"aptitude_scores"`
	PersonalityScores  map[string]float64    `json:"personality_scores"`
	InterestScores     map[string]float64    `json:"interest_scores"`
	PersonalitySummary string                `json:"personality_summary"`
	InterestSummary    string                `json:"interest_summary"`
	CareerMatches      []ReportMatchResponse `json:"career_matches"`
	Strengths          []string              `json:"strengths"`
	DevelopmentAreas   []string              `json:"development_areas"`
	Recommendations    []string              `json:"recommendations"`
	CompletedSections  []string              `json:"completed_sections"`
	Complete           bool                  `json:"complete"`
	CreatedAt          time.Time             `json:"created_at"`
}

// NewReportResponse maps a persisted report to its response shape.
func NewReportResponse(r models.Report) ReportResponse {
	matches := make([]ReportMatchResponse, 0, len(r.CareerMatches))
	for _, m := range r.CareerMatches {
		matches = append(matches, ReportMatchResponse{
			CareerID:        m.CareerID,
			Title:           m.Title,
			MatchPercentage: m.MatchPercentage,
			Rank:            m.Rank,
		})
	}

	return ReportResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		Audience:           r.Audience,
		Version:            r.Version,
		AptitudeScores:     scoreMap(r.AptitudeScores),
		PersonalityScores:  scoreMap(r.PersonalityScores),
		InterestScores:     scoreMap(r.InterestScores),
		PersonalitySummary: r.PersonalitySummary,
		InterestSummary:    r.InterestSummary,
		CareerMatches:      matches,
		Strengths:          r.Strengths,
		DevelopmentAreas:   r.DevelopmentAreas,
		Recommendations:    r.Recommendations,
		CompletedSections:  r.CompletedSections,
		Complete:           r.IsComplete(),
		CreatedAt:          r.CreatedAt,
	}
}

// NewReportListResponse maps a slice of persisted reports.
func NewReportListResponse(reports []models.Report) []ReportResponse {
	responses := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, NewReportResponse(r))
	}
	return responses
}

func scoreMap(raw map[string]interface{}) map[string]float64 {
	scores := make(map[string]float64, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case float64:
			scores[key] = v
		case json.Number:
			if f, err := v.Float64(); err == nil {
				scores[key] = f
			}
		case string:
			// The sqlite driver round-trips JSON numbers as strings.
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				scores[key] = f
			}
		}
	}
	return scores
}

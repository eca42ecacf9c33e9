package models

import (
	"time"

	"gorm.io/datatypes"
)

// ReportMatch is one ranked career embedded in a report. Matches are never
// persisted on their own; they exist only inside the report that produced them.
type ReportMatch struct {
	CareerID        uint   `json:"career_id"`
	Title           string `json:"title"`
	MatchPercentage int    `json:"match_percentage"`
	Rank            int    `json:"rank"`
}

// Report is the persisted output of one completed scoring run. A user
// accumulates versioned reports over time; each is immutable after creation.
type Report struct {
	ID                 uint                                  `gorm:"primaryKey" json:"id"`
	UserID             uint                                  `gorm:"not null;index" json:"user_id"`
	AssessmentTypeID   uint                                  `gorm:"index" json:"assessment_type_id"`
	Audience           string                                `gorm:"size:64" json:"audience"`
	Version            int                                   `gorm:"not null" json:"version"`
	AptitudeScores     datatypes.JSONMap                     `gorm:"type:json" json:"aptitude_scores"`
	PersonalityScores  datatypes.JSONMap                     `gorm:"type:json" json:"personality_scores"`
	InterestScores     datatypes.JSONMap                     `gorm:"type:json" json:"interest_scores"`
	PersonalitySummary string                                `gorm:"type:text" json:"personality_summary"`
	InterestSummary    string                                `gorm:"type:text" json:"interest_summary"`
	CareerMatches      datatypes.JSONSlice[ReportMatch]      `gorm:"type:json" json:"career_matches"`
	Strengths          datatypes.JSONSlice[string]           `gorm:"type:json" json:"strengths"`
	DevelopmentAreas   datatypes.JSONSlice[string]           `gorm:"type:json" json:"development_areas"`
	Recommendations    datatypes.JSONSlice[string]           `gorm:"type:json" json:"recommendations"`
	CompletedSections  datatypes.JSONSlice[string]           `gorm:"type:json" json:"completed_sections"`
	CreatedAt          time.Time                             `json:"created_at"`
}

// IsComplete reports whether every section had answers when the report was
// generated.
func (r Report) IsComplete() bool {
	return len(r.CompletedSections) == 3
}

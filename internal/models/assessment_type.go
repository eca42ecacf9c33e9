package models

import (
	"time"

	"gorm.io/datatypes"
)

// Well-known assessment type slugs shipped in seed data. Arbitrary additional
// types can be created by admin tooling; nothing in the scoring path depends
// on these two.
const (
	AssessmentTypeSchoolStudent  = "school_student"
	AssessmentTypeCollegeStudent = "college_student"
)

// AssessmentType configures one assessment variant: how many questions each
// section draws, per-section time limits and the section weights the career
// matcher combines fit scores under.
type AssessmentType struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Slug           string            `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	Name           string            `gorm:"size:255;not null" json:"name"`
	Description    string            `gorm:"type:text" json:"description"`
	QuestionCounts datatypes.JSONMap `gorm:"type:json" json:"question_counts"`
	TimeLimits     datatypes.JSONMap `gorm:"type:json" json:"time_limits"`
	ScoringWeights datatypes.JSONMap `gorm:"type:json" json:"scoring_weights"`
	TopMatches     int               `gorm:"default:5" json:"top_matches"`
	IsActive       bool              `gorm:"default:true;index" json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// SectionWeight returns the configured weight for a section, or 0 when the
// record does not define one.
func (a AssessmentType) SectionWeight(section string) float64 {
	v, _ := jsonMapNumber(a.ScoringWeights, section)
	return v
}

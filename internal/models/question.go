package models

import (
	"time"

	"gorm.io/datatypes"
)

// Assessment sections a question can belong to.
const (
	SectionAptitude    = "aptitude"
	SectionPersonality = "personality"
	SectionInterest    = "interest"
)

// Question item types.
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeLikert         = "likert"
	QuestionTypePreference     = "preference"
)

// Question is an immutable catalog item presented during an assessment.
// Section-specific tagging (sub-domain, trait, RIASEC category) is resolved
// once when the catalog is loaded; scoring never infers it from question text.
type Question struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	Section       string                      `gorm:"size:32;not null;index" json:"section"`
	SubDomain     string                      `gorm:"size:64;index" json:"sub_domain,omitempty"`
	Trait         string                      `gorm:"size:64;index" json:"trait,omitempty"`
	RIASECCode    string                      `gorm:"size:32;index" json:"riasec_code,omitempty"`
	Type          string                      `gorm:"size:32;not null" json:"type"`
	Text          string                      `gorm:"type:text;not null" json:"text"`
	Options       datatypes.JSONSlice[string] `gorm:"type:json" json:"options"`
	CorrectAnswer *int                        `json:"correct_answer,omitempty"`
	IsReversed    bool                        `json:"is_reversed"`
	Difficulty    string                      `gorm:"size:32" json:"difficulty,omitempty"`
	TimeLimitSec  int                         `json:"time_limit_sec"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// HasCorrectAnswer reports whether the question carries a valid answer key.
func (q Question) HasCorrectAnswer() bool {
	return q.CorrectAnswer != nil && *q.CorrectAnswer >= 0 && *q.CorrectAnswer < len(q.Options)
}

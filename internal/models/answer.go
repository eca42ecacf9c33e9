package models

import "time"

// Answer records one user's response to one question. A user has at most one
// answer per question; later submissions overwrite the earlier row. The Score
// column holds the normalized contribution computed at save time with the same
// function the report pipeline uses, so the two never diverge.
type Answer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_answers_user_question" json:"user_id"`
	QuestionID   uint      `gorm:"not null;uniqueIndex:idx_answers_user_question" json:"question_id"`
	Value        string    `gorm:"size:64;not null" json:"value"`
	TimeSpentSec int       `json:"time_spent_sec"`
	Score        float64   `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Question     Question  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

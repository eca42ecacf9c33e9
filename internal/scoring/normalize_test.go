package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compass-edu/compass-api/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func aptitudeQuestion(id uint, subDomain string, correct *int) models.Question {
	return models.Question{
		ID:            id,
		Section:       models.SectionAptitude,
		SubDomain:     subDomain,
		Type:          models.QuestionTypeMultipleChoice,
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: correct,
	}
}

func likertQuestion(id uint, trait string, reversed bool) models.Question {
	return models.Question{
		ID:         id,
		Section:    models.SectionPersonality,
		Trait:      trait,
		Type:       models.QuestionTypeLikert,
		Options:    []string{"Strongly disagree", "Disagree", "Neutral", "Agree", "Strongly agree"},
		IsReversed: reversed,
	}
}

func preferenceQuestion(id uint, category string) models.Question {
	return models.Question{
		ID:         id,
		Section:    models.SectionInterest,
		RIASECCode: category,
		Type:       models.QuestionTypePreference,
		Options:    []string{"Strongly dislike", "Dislike", "Neutral", "Like", "Strongly like"},
	}
}

func answerFor(questionID uint, value string) models.Answer {
	return models.Answer{UserID: 1, QuestionID: questionID, Value: value}
}

func TestNormalizeAnswerAptitude(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	cases := []struct {
		name     string
		question models.Question
		value    string
		want     float64
	}{
		{"correct option", aptitudeQuestion(1, "logical", intPtr(2)), "2", 1},
		{"wrong option", aptitudeQuestion(1, "logical", intPtr(2)), "0", 0},
		{"missing answer key", aptitudeQuestion(1, "logical", nil), "2", 0},
		{"answer key out of option range", aptitudeQuestion(1, "logical", intPtr(9)), "9", 0},
		{"non numeric value", aptitudeQuestion(1, "logical", intPtr(2)), "two", 0},
		{"whitespace tolerated", aptitudeQuestion(1, "logical", intPtr(2)), " 2 ", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.NormalizeAnswer(answerFor(tc.question.ID, tc.value), tc.question)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeAnswerLikert(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	cases := []struct {
		name     string
		reversed bool
		value    string
		want     float64
	}{
		{"plain item", false, "4", 4},
		{"reversed item inverts", true, "4", 2},
		{"reversed extreme", true, "1", 5},
		{"below range", false, "0", 0},
		{"above range", false, "6", 0},
		{"non numeric", false, "agree", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := likertQuestion(7, "openness", tc.reversed)
			got := engine.NormalizeAnswer(answerFor(7, tc.value), q)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeAnswerPreference(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	q := preferenceQuestion(3, "artistic")

	require.Equal(t, 0.0, engine.NormalizeAnswer(answerFor(3, "0"), q))
	require.Equal(t, 50.0, engine.NormalizeAnswer(answerFor(3, "2"), q))
	require.Equal(t, 100.0, engine.NormalizeAnswer(answerFor(3, "4"), q))
	require.Equal(t, 0.0, engine.NormalizeAnswer(answerFor(3, "5"), q))
	require.Equal(t, 0.0, engine.NormalizeAnswer(answerFor(3, "-1"), q))
	require.Equal(t, 0.0, engine.NormalizeAnswer(answerFor(3, "often"), q))
}

func TestNormalizeAnswerPreferenceBoundedByOptions(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	q := preferenceQuestion(3, "artistic")
	q.Options = []string{"Dislike", "Neutral", "Like"}

	require.Equal(t, 50.0, engine.NormalizeAnswer(answerFor(3, "2"), q))
	require.Equal(t, 0.0, engine.NormalizeAnswer(answerFor(3, "3"), q))
	require.Equal(t, 0.0, engine.NormalizeAnswer(answerFor(3, "4"), q))
}

func TestNormalizeAnswerUnknownSection(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	q := models.Question{ID: 9, Section: "motivation"}
	require.Equal(t, 0.0, engine.NormalizeAnswer(answerFor(9, "3"), q))
}

package scoring

import (
	"strconv"
	"strings"

	"github.com/compass-edu/compass-api/internal/models"
)

// NormalizeAnswer converts one stored answer into its per-question
// contribution. Malformed values never fail; they degrade to a zero
// contribution so one bad row cannot sink a whole report.
//
// Aptitude items score binary against the answer key. Likert items contribute
// the parsed 1-5 value, inverted to 6-v for reverse-scored questions.
// Preference items contribute the configured points for the selected option
// index; indexes outside the question's option list score zero.
func (e *Engine) NormalizeAnswer(answer models.Answer, question models.Question) float64 {
	switch question.Section {
	case models.SectionAptitude:
		idx, ok := parseIndex(answer.Value)
		if !ok || !question.HasCorrectAnswer() {
			return 0
		}
		if idx == *question.CorrectAnswer {
			return 1
		}
		return 0

	case models.SectionPersonality:
		v, ok := parseIndex(answer.Value)
		if !ok || v < 1 || v > 5 {
			return 0
		}
		if question.IsReversed {
			return float64(6 - v)
		}
		return float64(v)

	case models.SectionInterest:
		idx, ok := parseIndex(answer.Value)
		if !ok || idx < 0 || idx >= len(question.Options) || idx >= len(e.cfg.PreferencePoints) {
			return 0
		}
		return e.cfg.PreferencePoints[idx]
	}

	return 0
}

func parseIndex(raw string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

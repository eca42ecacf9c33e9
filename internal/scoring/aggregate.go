package scoring

import "github.com/compass-edu/compass-api/internal/models"

type tally struct {
	sum   float64
	count float64
}

func (t *tally) add(v float64) {
	t.sum += v
	t.count++
}

func (t tally) average() float64 {
	if t.count == 0 {
		return 0
	}
	return t.sum / t.count
}

// AggregateAptitude reduces aptitude answers into per-sub-domain percentages
// plus an overall score. Every configured sub-domain key is always present;
// unanswered sub-domains report 0 so consumers never need existence checks.
func (e *Engine) AggregateAptitude(answers []models.Answer, questions []models.Question) SectionScores {
	index := indexQuestions(questions)
	byDomain := map[string]*tally{}
	overall := &tally{}

	for _, a := range answers {
		q, ok := index[a.QuestionID]
		if !ok || q.Section != models.SectionAptitude {
			continue
		}
		score := e.NormalizeAnswer(a, q)
		overall.add(score)
		if q.SubDomain == "" {
			continue
		}
		t := byDomain[q.SubDomain]
		if t == nil {
			t = &tally{}
			byDomain[q.SubDomain] = t
		}
		t.add(score)
	}

	scores := make(SectionScores, len(e.cfg.SubDomains)+1)
	for _, domain := range e.cfg.SubDomains {
		scores[domain] = 0
	}
	for domain, t := range byDomain {
		scores[domain] = clampScore(t.average() * 100)
	}
	scores[KeyOverall] = clampScore(overall.average() * 100)

	return scores
}

// AggregatePersonality reduces Likert answers into Big-Five trait scores.
// Each trait is the scaled average of its reverse-adjusted contributions
// (1-5 average times 20). Traits with no answers report the neutral midpoint
// 50 rather than being absent.
func (e *Engine) AggregatePersonality(answers []models.Answer, questions []models.Question) SectionScores {
	index := indexQuestions(questions)
	byTrait := map[string]*tally{}

	for _, a := range answers {
		q, ok := index[a.QuestionID]
		if !ok || q.Section != models.SectionPersonality || q.Trait == "" {
			continue
		}
		t := byTrait[q.Trait]
		if t == nil {
			t = &tally{}
			byTrait[q.Trait] = t
		}
		t.add(e.NormalizeAnswer(a, q))
	}

	scores := make(SectionScores, len(TraitKeys))
	for _, trait := range TraitKeys {
		scores[trait] = 50
	}
	for trait, t := range byTrait {
		scores[trait] = clampScore(t.average() * 20)
	}

	return scores
}

// AggregateInterest reduces preference answers into RIASEC category scores.
// Each answer contributes its points as a fraction of the ceiling achievable
// on that question, so the per-category average stays in [0,100] regardless
// of how many options each question offered. Categories with no answers
// report 0.
func (e *Engine) AggregateInterest(answers []models.Answer, questions []models.Question) SectionScores {
	index := indexQuestions(questions)
	byCategory := map[string]*tally{}

	for _, a := range answers {
		q, ok := index[a.QuestionID]
		if !ok || q.Section != models.SectionInterest || q.RIASECCode == "" {
			continue
		}
		fraction := 0.0
		if ceiling := e.cfg.preferenceCeiling(len(q.Options)); ceiling > 0 {
			fraction = e.NormalizeAnswer(a, q) / ceiling
		}
		t := byCategory[q.RIASECCode]
		if t == nil {
			t = &tally{}
			byCategory[q.RIASECCode] = t
		}
		t.add(fraction)
	}

	scores := make(SectionScores, len(RIASECKeys))
	for _, category := range RIASECKeys {
		scores[category] = 0
	}
	for category, t := range byCategory {
		scores[category] = clampScore(t.average() * 100)
	}

	return scores
}

package scoring

import "github.com/compass-edu/compass-api/internal/models"

// Engine runs the scoring pipeline under one configuration. It is stateless
// and safe for concurrent use; a fresh Engine per request is equally valid.
type Engine struct {
	cfg Config
}

// NewEngine constructs an engine for the given configuration.
func NewEngine(cfg Config) *Engine {
	if len(cfg.SubDomains) == 0 {
		cfg.SubDomains = DefaultConfig().SubDomains
	}
	if len(cfg.PreferencePoints) == 0 {
		cfg.PreferencePoints = DefaultConfig().PreferencePoints
	}
	if cfg.DefaultTopMatches <= 0 {
		cfg.DefaultTopMatches = DefaultConfig().DefaultTopMatches
	}
	return &Engine{cfg: cfg}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// BuildProfile aggregates all three sections for one user's answers.
func (e *Engine) BuildProfile(answers []models.Answer, questions []models.Question) Profile {
	index := indexQuestions(questions)
	completed := make(map[string]bool, 3)
	for _, a := range answers {
		if q, ok := index[a.QuestionID]; ok {
			completed[q.Section] = true
		}
	}

	return Profile{
		Aptitude:    e.AggregateAptitude(answers, questions),
		Personality: e.AggregatePersonality(answers, questions),
		Interest:    e.AggregateInterest(answers, questions),
		Completed:   completed,
	}
}

// GenerateReport runs the full pipeline: profile aggregation, summaries,
// career matching and report assembly.
func (e *Engine) GenerateReport(userID uint, answers []models.Answer, questions []models.Question, careers []models.Career, topN int) Report {
	profile := e.BuildProfile(answers, questions)
	matches := e.MatchCareers(profile, careers, topN)
	summaries := Summaries{
		Personality: e.PersonalitySummary(profile.Personality),
		Interest:    e.InterestSummary(profile.Interest),
	}
	return e.AssembleReport(userID, profile, summaries, matches)
}

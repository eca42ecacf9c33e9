package dto

// SeedQuestion is the wire shape for a catalog question in a seed payload.
// Legacy exports tag interest items with single-letter Holland codes; the
// seed service expands those to full category names before anything is
// persisted, so scoring only ever sees one representation.
type SeedQuestion struct {
	ID            uint     `json:"id"`
	Section       string   `json:"section"`
	SubDomain     string   `json:"sub_domain,omitempty"`
	Trait         string   `json:"trait,omitempty"`
	RIASECCode    string   `json:"riasec_code,omitempty"`
	Type          string   `json:"type"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correct_answer,omitempty"`
	IsReversed    bool     `json:"is_reversed,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	TimeLimitSec  int      `json:"time_limit_sec,omitempty"`
}

// SeedCareer is the wire shape for a catalog career in a seed payload.
type SeedCareer struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	Industry        string             `json:"industry,omitempty"`
	EducationLevel  string             `json:"education_level,omitempty"`
	WorkStyle       string             `json:"work_style,omitempty"`
	WorkEnvironment string             `json:"work_environment,omitempty"`
	GrowthOutlook   string             `json:"growth_outlook,omitempty"`
	SalaryRange     string             `json:"salary_range,omitempty"`
	RequiredSkills  []string           `json:"required_skills,omitempty"`
	TargetAudiences []string           `json:"target_audiences,omitempty"`
	RIASECProfile   map[string]float64 `json:"riasec_profile,omitempty"`
	PersonalityFit  map[string]float64 `json:"personality_fit,omitempty"`
}

// SeedAssessmentType is the wire shape for an assessment configuration record.
type SeedAssessmentType struct {
	Slug           string             `json:"slug"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	QuestionCounts map[string]int     `json:"question_counts,omitempty"`
	TimeLimits     map[string]int     `json:"time_limits,omitempty"`
	ScoringWeights map[string]float64 `json:"scoring_weights"`
	TopMatches     int                `json:"top_matches,omitempty"`
}

// SeedCatalogRequest is the full seed payload accepted by the seed endpoint.
type SeedCatalogRequest struct {
	Questions       []SeedQuestion       `json:"questions"`
	Careers         []SeedCareer         `json:"careers"`
	AssessmentTypes []SeedAssessmentType `json:"assessment_types"`
}

// SeedCatalogResponse reports how many rows each batch touched.
type SeedCatalogResponse struct {
	Questions       int64 `json:"questions"`
	Careers         int64 `json:"careers"`
	AssessmentTypes int64 `json:"assessment_types"`
}

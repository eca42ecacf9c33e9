package dto

import "github.com/compass-edu/compass-api/internal/models"

// CareerResponse is the catalog entry shape returned to clients. Matching
// profiles stay internal; clients see the descriptive fields only.
type CareerResponse struct {
	ID              uint     `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Industry        string   `json:"industry"`
	EducationLevel  string   `json:"education_level"`
	WorkStyle       string   `json:"work_style"`
	WorkEnvironment string   `json:"work_environment"`
	GrowthOutlook   string   `json:"growth_outlook"`
	SalaryRange     string   `json:"salary_range"`
	RequiredSkills  []string `json:"required_skills"`
}

// CareerListResponse wraps a catalog listing with its cache provenance.
type CareerListResponse struct {
	Items    []CareerResponse `json:"items"`
	CacheHit bool             `json:"cache_hit"`
}

// NewCareerResponse maps a catalog career to its response shape.
func NewCareerResponse(c models.Career) CareerResponse {
	return CareerResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Industry:        c.Industry,
		EducationLevel:  c.EducationLevel,
		WorkStyle:       c.WorkStyle,
		WorkEnvironment: c.WorkEnvironment,
		GrowthOutlook:   c.GrowthOutlook,
		SalaryRange:     c.SalaryRange,
		RequiredSkills:  c.RequiredSkills,
	}
}

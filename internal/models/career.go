package models

import (
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Career is a catalog entry the matcher scores user profiles against. The
// RIASEC profile maps Holland category names to weights 0-100; the personality
// fit maps Big-Five trait names to ideal levels 0-100. Both are admin-managed
// and read-only from the scoring core's perspective.
type Career struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	Title           string            `gorm:"size:255;not null" json:"title"`
	Description     string            `gorm:"type:text" json:"description"`
	Industry        string            `gorm:"size:128;index" json:"industry"`
	EducationLevel  string            `gorm:"size:128" json:"education_level"`
	WorkStyle       string            `gorm:"size:64" json:"work_style"`
	WorkEnvironment string            `gorm:"size:128" json:"work_environment"`
	GrowthOutlook   string            `gorm:"size:64" json:"growth_outlook"`
	SalaryRange     string            `gorm:"size:64" json:"salary_range"`
	SkillsRaw       string            `gorm:"column:required_skills;type:text" json:"-"`
	AudiencesRaw    string            `gorm:"column:target_audiences;type:text" json:"-"`
	RIASECProfile   datatypes.JSONMap `gorm:"type:json" json:"riasec_profile"`
	PersonalityFit  datatypes.JSONMap `gorm:"type:json" json:"personality_fit"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	RequiredSkills  []string          `gorm:"-" json:"required_skills"`
	TargetAudiences []string          `gorm:"-" json:"target_audiences"`
}

// BeforeSave normalises skill and audience tags before persisting.
func (c *Career) BeforeSave(tx *gorm.DB) error {
	c.SkillsRaw = encodeTags(c.RequiredSkills)
	c.AudiencesRaw = encodeTags(c.TargetAudiences)
	return nil
}

// AfterFind hydrates tag slices after loading from the database.
func (c *Career) AfterFind(tx *gorm.DB) error {
	c.RequiredSkills = decodeTags(c.SkillsRaw)
	c.TargetAudiences = decodeTags(c.AudiencesRaw)
	return nil
}

// TargetsAudience reports whether the career is offered to the given audience.
// An empty audience list means the career applies to everyone.
func (c Career) TargetsAudience(audience string) bool {
	if len(c.TargetAudiences) == 0 {
		return true
	}
	for _, a := range c.TargetAudiences {
		if a == audience {
			return true
		}
	}
	return false
}

// ProfileWeight returns the RIASEC weight stored for the given category and
// whether the profile defines it.
func (c Career) ProfileWeight(category string) (float64, bool) {
	return jsonMapNumber(c.RIASECProfile, category)
}

// IdealTraitLevel returns the personality-fit level for the given trait and
// whether the fit defines it.
func (c Career) IdealTraitLevel(trait string) (float64, bool) {
	return jsonMapNumber(c.PersonalityFit, trait)
}

func jsonMapNumber(m datatypes.JSONMap, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	raw, ok := m[key]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		// The sqlite driver round-trips JSON numbers as strings.
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

package scoring

// Config carries every tunable the pipeline depends on. Values are threaded
// explicitly so multiple presets can be exercised side by side; the package
// holds no mutable state.
type Config struct {
	// Section weights combined by the career matcher. Arbitrary values are
	// accepted; weights are renormalized by their sum before use.
	AptitudeWeight    float64
	PersonalityWeight float64
	InterestWeight    float64

	// SubDomains are the aptitude sub-domain keys always present in the
	// aggregate output, answered or not.
	SubDomains []string

	// PreferencePoints maps an interest option index to its contribution.
	// Indexes outside the table or the question's option list degrade to
	// zero.
	PreferencePoints []float64

	// LowTraitThreshold marks a trait worth calling out as a development
	// area; StrongScoreThreshold marks a score worth calling a strength.
	LowTraitThreshold    float64
	StrongScoreThreshold float64
	WeakScoreThreshold   float64

	// DefaultTopMatches bounds the career ranking when the caller does not
	// request a specific count.
	DefaultTopMatches int
}

// DefaultConfig returns the baseline preset.
func DefaultConfig() Config {
	return Config{
		AptitudeWeight:       0.25,
		PersonalityWeight:    0.35,
		InterestWeight:       0.40,
		SubDomains:           []string{"logical", "numerical", "verbal", "spatial"},
		PreferencePoints:     []float64{0, 25, 50, 75, 100},
		LowTraitThreshold:    30,
		StrongScoreThreshold: 70,
		WeakScoreThreshold:   40,
		DefaultTopMatches:    5,
	}
}

// SchoolStudentConfig mirrors the school_student seed preset.
func SchoolStudentConfig() Config {
	cfg := DefaultConfig()
	cfg.AptitudeWeight = 0.30
	cfg.PersonalityWeight = 0.30
	cfg.InterestWeight = 0.40
	return cfg
}

// CollegeStudentConfig mirrors the college_student seed preset.
func CollegeStudentConfig() Config {
	cfg := DefaultConfig()
	cfg.AptitudeWeight = 0.35
	cfg.PersonalityWeight = 0.35
	cfg.InterestWeight = 0.30
	return cfg
}

// WithWeights returns a copy of the config using the supplied section
// weights. Non-positive sums fall back to the defaults so a misconfigured
// assessment type still produces a ranked result.
func (c Config) WithWeights(aptitude, personality, interest float64) Config {
	if aptitude+personality+interest <= 0 {
		base := DefaultConfig()
		aptitude, personality, interest = base.AptitudeWeight, base.PersonalityWeight, base.InterestWeight
	}
	c.AptitudeWeight = aptitude
	c.PersonalityWeight = personality
	c.InterestWeight = interest
	return c
}

func (c Config) normalizedWeights() (aptitude, personality, interest float64) {
	sum := c.AptitudeWeight + c.PersonalityWeight + c.InterestWeight
	if sum <= 0 {
		base := DefaultConfig()
		sum = base.AptitudeWeight + base.PersonalityWeight + base.InterestWeight
		return base.AptitudeWeight / sum, base.PersonalityWeight / sum, base.InterestWeight / sum
	}
	return c.AptitudeWeight / sum, c.PersonalityWeight / sum, c.InterestWeight / sum
}

// preferenceCeiling returns the highest contribution achievable on a question
// with the given option count, bounded by the points table. Questions with
// fewer options than table entries top out at the points for their last
// option.
func (c Config) preferenceCeiling(optionCount int) float64 {
	if optionCount <= 0 || len(c.PreferencePoints) == 0 {
		return 0
	}
	if optionCount > len(c.PreferencePoints) {
		optionCount = len(c.PreferencePoints)
	}
	return c.PreferencePoints[optionCount-1]
}

package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// Summaries holds the generated display text for a report.
type Summaries struct {
	Personality string
	Interest    string
}

// PersonalitySummary renders a short deterministic sentence naming the user's
// strongest traits, plus a development note when the lowest trait falls under
// the configured threshold. Identical scores always yield identical text.
func (e *Engine) PersonalitySummary(scores SectionScores) string {
	ranked := rankKeys(scores, TraitKeys)
	if len(ranked) == 0 {
		return "Your personality profile is not available yet."
	}

	top := make([]string, 0, 3)
	for _, trait := range ranked {
		if len(top) == 3 {
			break
		}
		if scores[trait] >= e.cfg.StrongScoreThreshold {
			top = append(top, trait)
		}
	}
	if len(top) == 0 {
		top = ranked[:1]
	}

	var b strings.Builder
	if len(top) == 1 {
		fmt.Fprintf(&b, "Your strongest personality trait is %s.", top[0])
	} else {
		fmt.Fprintf(&b, "Your strongest personality traits are %s.", joinNames(top))
	}

	lowest := ranked[len(ranked)-1]
	if scores[lowest] < e.cfg.LowTraitThreshold {
		fmt.Fprintf(&b, " You scored comparatively low on %s.", lowest)
	}

	return b.String()
}

// InterestSummary renders a deterministic sentence naming the user's top three
// RIASEC categories.
func (e *Engine) InterestSummary(scores SectionScores) string {
	ranked := rankKeys(scores, RIASECKeys)
	if len(ranked) == 0 || scores[ranked[0]] == 0 {
		return "You have not expressed strong interest in any area yet."
	}

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}
	return fmt.Sprintf("Your interests align most closely with %s pursuits.", joinNames(top))
}

// rankKeys orders score keys descending by value. Canonical keys come first in
// their canonical order so ties always resolve the same way; keys outside the
// canonical set follow alphabetically.
func rankKeys(scores SectionScores, canonical []string) []string {
	seen := make(map[string]bool, len(canonical))
	keys := make([]string, 0, len(scores))
	for _, k := range canonical {
		if _, ok := scores[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	extras := make([]string, 0)
	for k := range scores {
		if !seen[k] {
			extras = append(extras, k)
		}
	}
	sort.Strings(extras)
	keys = append(keys, extras...)

	sort.SliceStable(keys, func(i, j int) bool {
		return scores[keys[i]] > scores[keys[j]]
	})
	return keys
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

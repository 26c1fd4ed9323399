package analysis

import (
	"sort"
	"strings"

	"github.com/ksamaarora/vciso-backend/internal/model"
)

// Frameworks whose compliance is scored. Citation matching is a case-sensitive
// substring check against these names; kept deliberately simple so scores stay
// comparable across runs.
var frameworkNames = []string{"NIST", "CISA", "SANS"}

const maxPriorityActions = 5

// overallScore applies additive severity penalties to a perfect score of 100.
// Many critical gaps floor the score at 0 well before the penalties run out;
// that saturation is intended.
func overallScore(gaps []model.Gap) int {
	score := 100
	for _, g := range gaps {
		score -= g.Severity.Penalty()
	}
	if score < 0 {
		return 0
	}
	return score
}

// frameworkCompliance scores each framework, subtracting 5 for every citation
// that mentions it. Clamping happens once at the end, not per subtraction.
func frameworkCompliance(gaps []model.Gap) map[string]int {
	scores := make(map[string]int, len(frameworkNames))
	for _, name := range frameworkNames {
		scores[name] = 100
	}

	for _, g := range gaps {
		for _, ref := range g.FrameworkReferences {
			for _, name := range frameworkNames {
				if strings.Contains(ref, name) {
					scores[name] -= 5
				}
			}
		}
	}

	for name, s := range scores {
		if s < 0 {
			scores[name] = 0
		} else if s > 100 {
			scores[name] = 100
		}
	}
	return scores
}

// priorityActions returns the recommendations of the most severe gaps, at most
// five. The sort is stable so ties keep section-then-insertion order, and
// duplicate recommendation texts are kept as-is.
func priorityActions(gaps []model.Gap) []string {
	sorted := make([]model.Gap, len(gaps))
	copy(sorted, gaps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() < sorted[j].Severity.Rank()
	})

	n := len(sorted)
	if n > maxPriorityActions {
		n = maxPriorityActions
	}

	actions := make([]string, 0, n)
	for _, g := range sorted[:n] {
		actions = append(actions, g.Recommendation)
	}
	return actions
}

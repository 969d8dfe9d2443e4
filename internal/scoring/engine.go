package scoring

import (
	"sort"

	"career-quiz-service/internal/models"
)

// Score accumulates career-area points from a raw answer array. Every area
// in areas starts at 0. For answer i, each area's per-option value from the
// question's scoring matrix is added when the answer index is within the
// matrix's range. Answers beyond the question count and questions beyond
// the answer count are ignored. Areas not listed in areas are ignored even
// when a matrix mentions them.
func Score(questions []models.Question, answers []int, areas []string) map[string]int {
	scores := make(map[string]int, len(areas))
	for _, area := range areas {
		scores[area] = 0
	}

	n := len(answers)
	if len(questions) < n {
		n = len(questions)
	}

	for i := 0; i < n; i++ {
		matrix := questions[i].Scoring
		if matrix == nil {
			continue
		}
		answer := answers[i]
		for _, area := range areas {
			values, ok := matrix[area]
			if !ok {
				continue
			}
			if answer >= 0 && answer < len(values) {
				scores[area] += values[answer]
			}
		}
	}
	return scores
}

// TopAreas ranks areas by descending score and returns at most n of them.
// The sort is stable: areas with equal scores keep their declaration order.
func TopAreas(scores map[string]int, areas []string, n int) []string {
	ranked := make([]string, len(areas))
	copy(ranked, areas)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

package scoring

import (
	"reflect"
	"testing"

	"career-quiz-service/internal/models"
)

func artScienceQuestions(n int) []models.Question {
	qs := make([]models.Question, n)
	for i := range qs {
		qs[i] = models.Question{
			Text:    "q",
			Options: []string{"a", "b", "c", "d"},
			Scoring: map[string][]int{
				"Art":     {3, 2, 1, 0},
				"Science": {0, 1, 2, 3},
			},
		}
	}
	return qs
}

func TestScoreArtScienceScenario(t *testing.T) {
	areas := []string{"Art", "Science", "Sports"}
	questions := artScienceQuestions(5)
	answers := []int{0, 0, 3, 3, 1}

	scores := Score(questions, answers, areas)

	if scores["Art"] != 8 {
		t.Errorf("Expected Art score 8, got %d", scores["Art"])
	}
	if scores["Science"] != 7 {
		t.Errorf("Expected Science score 7, got %d", scores["Science"])
	}
	if scores["Sports"] != 0 {
		t.Errorf("Expected Sports score 0, got %d", scores["Sports"])
	}

	top := TopAreas(scores, areas, 3)
	if top[0] != "Art" || top[1] != "Science" {
		t.Errorf("Expected Art ranked above Science, got %v", top)
	}
}

func TestScoreUniformValueProperty(t *testing.T) {
	// An area scoring the same value for every option accumulates
	// value * question count for any valid answer array.
	questions := make([]models.Question, 4)
	for i := range questions {
		questions[i] = models.Question{
			Options: []string{"a", "b", "c"},
			Scoring: map[string][]int{"Music": {2, 2, 2}},
		}
	}
	for _, answers := range [][]int{{0, 0, 0, 0}, {2, 1, 0, 2}, {1, 1, 1, 1}} {
		scores := Score(questions, answers, []string{"Music"})
		if scores["Music"] != 8 {
			t.Errorf("answers %v: expected 8, got %d", answers, scores["Music"])
		}
	}
}

func TestScoreIgnoresUnlistedAreas(t *testing.T) {
	questions := artScienceQuestions(2)
	scores := Score(questions, []int{0, 0}, []string{"Art"})
	if _, ok := scores["Science"]; ok {
		t.Error("Science should not appear in scores when not in the area list")
	}
	if len(scores) != 1 {
		t.Errorf("Expected 1 scored area, got %d", len(scores))
	}
}

func TestScoreAnswerLengthMismatch(t *testing.T) {
	questions := artScienceQuestions(3)

	testCases := []struct {
		name    string
		answers []int
		wantArt int
	}{
		{"short answers", []int{0}, 3},
		{"long answers", []int{0, 0, 0, 1, 2, 3}, 9},
		{"empty answers", []int{}, 0},
		{"out of range index", []int{9, -1, 0}, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scores := Score(questions, tc.answers, []string{"Art"})
			if scores["Art"] != tc.wantArt {
				t.Errorf("Expected Art %d, got %d", tc.wantArt, scores["Art"])
			}
		})
	}
}

func TestScoreMissingMatrix(t *testing.T) {
	questions := []models.Question{
		{Options: []string{"a", "b"}},
		{Options: []string{"a", "b"}, Scoring: map[string][]int{"Art": {5, 0}}},
	}
	scores := Score(questions, []int{0, 0}, []string{"Art"})
	if scores["Art"] != 5 {
		t.Errorf("Expected 5, got %d", scores["Art"])
	}
}

func TestTopAreasTieBreakKeepsDeclarationOrder(t *testing.T) {
	areas := []string{"Art", "Science", "Sports", "Music"}
	scores := map[string]int{"Art": 2, "Science": 5, "Sports": 2, "Music": 2}

	top := TopAreas(scores, areas, 4)
	want := []string{"Science", "Art", "Sports", "Music"}
	if !reflect.DeepEqual(top, want) {
		t.Errorf("Expected %v, got %v", want, top)
	}
}

func TestTopAreasBounds(t *testing.T) {
	areas := []string{"Art", "Science"}
	scores := map[string]int{"Art": 1, "Science": 2}

	if got := TopAreas(scores, areas, 3); len(got) != 2 {
		t.Errorf("Expected 2 areas when n exceeds area count, got %d", len(got))
	}
	if got := TopAreas(scores, areas, 1); len(got) != 1 || got[0] != "Science" {
		t.Errorf("Expected [Science], got %v", got)
	}
}

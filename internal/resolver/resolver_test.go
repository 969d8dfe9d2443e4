package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-quiz-service/internal/models"
)

// fakeStore serves resolver tests from a slice ordered newest first.
type fakeStore struct {
	quizzes     []models.Quiz
	flagUpdates []string
}

func (f *fakeStore) FindByIDAndUser(_ context.Context, id, userID string) (*models.Quiz, error) {
	for i := range f.quizzes {
		if f.quizzes[i].ID == id && f.quizzes[i].UserID == userID {
			return &f.quizzes[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeStore) FindByID(_ context.Context, id string) (*models.Quiz, error) {
	for i := range f.quizzes {
		if f.quizzes[i].ID == id {
			return &f.quizzes[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeStore) FindRecent(_ context.Context, limit int64) ([]models.Quiz, error) {
	if int64(len(f.quizzes)) < limit {
		limit = int64(len(f.quizzes))
	}
	return f.quizzes[:limit], nil
}

func (f *fakeStore) findLatest(userID string, match func(*models.Quiz) bool) (*models.Quiz, error) {
	for i := range f.quizzes {
		q := &f.quizzes[i]
		if q.UserID == userID && match(q) {
			return q, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeStore) FindLatestSubmitted(_ context.Context, userID string) (*models.Quiz, error) {
	return f.findLatest(userID, func(q *models.Quiz) bool { return q.Submitted })
}

func (f *fakeStore) FindLatestCompleted(_ context.Context, userID string) (*models.Quiz, error) {
	return f.findLatest(userID, func(q *models.Quiz) bool { return q.Completed })
}

func (f *fakeStore) FindLatestAny(_ context.Context, userID string) (*models.Quiz, error) {
	return f.findLatest(userID, func(q *models.Quiz) bool { return true })
}

func (f *fakeStore) SetCompletionFlags(_ context.Context, id string, _ time.Time) error {
	f.flagUpdates = append(f.flagUpdates, id)
	return nil
}

func TestResolveExactMatch(t *testing.T) {
	store := &fakeStore{quizzes: []models.Quiz{
		{ID: "64f1aa00aa00aa00aa00aa01", UserID: "u1"},
		{ID: "64f1aa00aa00aa00aa00aa02", UserID: "u2"},
	}}
	r := New(store)

	quiz, err := r.Resolve(context.Background(), "u2", "64f1aa00aa00aa00aa00aa02")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if quiz.ID != "64f1aa00aa00aa00aa00aa02" {
		t.Errorf("Resolved wrong quiz: %s", quiz.ID)
	}
}

func TestResolveIDOnlyMatchToleratesUserDrift(t *testing.T) {
	store := &fakeStore{quizzes: []models.Quiz{
		{ID: "64f1aa00aa00aa00aa00aa01", UserID: "someone-else"},
	}}
	r := New(store)

	quiz, err := r.Resolve(context.Background(), "u1", "64f1aa00aa00aa00aa00aa01")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if quiz.UserID != "someone-else" {
		t.Errorf("Expected the id-only match to be returned, got user %q", quiz.UserID)
	}
}

func TestResolveTruncatedID(t *testing.T) {
	store := &fakeStore{quizzes: []models.Quiz{
		{ID: "64f1aa00aa00aa00aa00aa01", UserID: "u1"},
		{ID: "64f1bb11bb11bb11bb11bb02", UserID: "u1"},
	}}
	r := New(store)

	quiz, err := r.Resolve(context.Background(), "u1", "bb11bb")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if quiz.ID != "64f1bb11bb11bb11bb11bb02" {
		t.Errorf("Expected substring match, got %s", quiz.ID)
	}
}

func TestResolveSubstringMissFallsBackToLatest(t *testing.T) {
	store := &fakeStore{quizzes: []models.Quiz{
		{ID: "64f1aa00aa00aa00aa00aa03", UserID: "u1", Submitted: true, Completed: true, Answers: []int{1}},
		{ID: "64f1aa00aa00aa00aa00aa01", UserID: "u1"},
	}}
	r := New(store)

	quiz, err := r.Resolve(context.Background(), "u1", "ffffff")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if quiz.ID != "64f1aa00aa00aa00aa00aa03" {
		t.Errorf("Expected latest submitted quiz, got %s", quiz.ID)
	}
}

func TestResolveFallbackOrder(t *testing.T) {
	// No submitted quiz: the completed one outranks the newer bare record.
	store := &fakeStore{quizzes: []models.Quiz{
		{ID: "newest", UserID: "u1"},
		{ID: "completed", UserID: "u1", Completed: true},
	}}
	r := New(store)

	quiz, err := r.Resolve(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if quiz.ID != "completed" {
		t.Errorf("Expected completed quiz to win, got %s", quiz.ID)
	}
}

func TestResolveNothingFound(t *testing.T) {
	r := New(&fakeStore{})
	if _, err := r.Resolve(context.Background(), "u1", "abc123"); !errors.Is(err, ErrNoQuiz) {
		t.Errorf("Expected ErrNoQuiz, got %v", err)
	}
	if _, err := r.Resolve(context.Background(), "", ""); !errors.Is(err, ErrNoQuiz) {
		t.Errorf("Expected ErrNoQuiz for empty identifiers, got %v", err)
	}
}

func TestResolveRepairsStaleFlags(t *testing.T) {
	store := &fakeStore{quizzes: []models.Quiz{
		{ID: "64f1aa00aa00aa00aa00aa01", UserID: "u1", Answers: []int{1, 2}},
	}}
	r := New(store)

	quiz, err := r.Resolve(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !quiz.Submitted || !quiz.Completed {
		t.Error("Expected flags repaired to true")
	}
	if quiz.SubmittedAt == nil {
		t.Error("Expected a submission timestamp to be stamped")
	}
	if len(store.flagUpdates) != 1 || store.flagUpdates[0] != quiz.ID {
		t.Errorf("Expected exactly one flag persist for %s, got %v", quiz.ID, store.flagUpdates)
	}
}

func TestResolveConsistentQuizNotRewritten(t *testing.T) {
	at := time.Now()
	store := &fakeStore{quizzes: []models.Quiz{
		{ID: "q1", UserID: "u1", Answers: []int{0}, Submitted: true, Completed: true, SubmittedAt: &at},
	}}
	r := New(store)

	if _, err := r.Resolve(context.Background(), "u1", "q1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(store.flagUpdates) != 0 {
		t.Errorf("Expected no flag writes, got %v", store.flagUpdates)
	}
}

func TestReconcile(t *testing.T) {
	testCases := []struct {
		name        string
		quiz        models.Quiz
		wantChanged bool
	}{
		{"empty answers untouched", models.Quiz{}, false},
		{"already consistent", models.Quiz{Answers: []int{1}, Submitted: true, Completed: true}, false},
		{"both flags false", models.Quiz{Answers: []int{1, 2}}, true},
		{"one flag false", models.Quiz{Answers: []int{1}, Submitted: true}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			changed := Reconcile(&tc.quiz)
			if changed != tc.wantChanged {
				t.Errorf("Expected changed=%v, got %v", tc.wantChanged, changed)
			}
			if changed && (!tc.quiz.Submitted || !tc.quiz.Completed || tc.quiz.SubmittedAt == nil) {
				t.Error("Repaired quiz must have both flags true and a timestamp")
			}
		})
	}
}

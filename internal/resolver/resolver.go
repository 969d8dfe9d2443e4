package resolver

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-quiz-service/internal/models"
)

// ErrNoQuiz means the full resolution chain found nothing. It is distinct
// from transport errors so callers can offer a "take the quiz" action
// instead of failing.
var ErrNoQuiz = errors.New("no quiz found")

// recentWindow bounds the substring scan over recent records.
const recentWindow = 50

// QuizStore is the persistence surface the resolver needs. The Mongo
// repository satisfies it; tests use an in-memory fake.
type QuizStore interface {
	FindByIDAndUser(ctx context.Context, id, userID string) (*models.Quiz, error)
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	FindRecent(ctx context.Context, limit int64) ([]models.Quiz, error)
	FindLatestSubmitted(ctx context.Context, userID string) (*models.Quiz, error)
	FindLatestCompleted(ctx context.Context, userID string) (*models.Quiz, error)
	FindLatestAny(ctx context.Context, userID string) (*models.Quiz, error)
	SetCompletionFlags(ctx context.Context, id string, submittedAt time.Time) error
}

type Resolver struct {
	store QuizStore
}

func New(store QuizStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve locates the authoritative quiz record for a user and an optional,
// possibly truncated quiz id. Upstream clients have historically sent
// partial ids and stale user references, so the chain degrades from exact
// match to substring match to most-recent-for-user before giving up.
// Resolved records with answers but stale completion flags are repaired and
// persisted before being returned.
func (r *Resolver) Resolve(ctx context.Context, userID, quizID string) (*models.Quiz, error) {
	quiz := r.locate(ctx, userID, quizID)
	if quiz == nil {
		return nil, ErrNoQuiz
	}

	if Reconcile(quiz) {
		log.Printf("quiz %s had answers but stale completion flags, repairing", quiz.ID)
		if err := r.store.SetCompletionFlags(ctx, quiz.ID, *quiz.SubmittedAt); err != nil {
			log.Printf("failed to persist repaired flags for quiz %s: %v", quiz.ID, err)
		}
	}
	return quiz, nil
}

func (r *Resolver) locate(ctx context.Context, userID, quizID string) *models.Quiz {
	if quizID != "" {
		if quiz, err := r.store.FindByIDAndUser(ctx, quizID, userID); err == nil && quiz != nil {
			return quiz
		}

		if quiz, err := r.store.FindByID(ctx, quizID); err == nil && quiz != nil {
			if quiz.UserID != userID {
				log.Printf("quiz %s matched by id only: owner %q, requester %q", quiz.ID, quiz.UserID, userID)
			}
			return quiz
		}

		if quiz := r.substringScan(ctx, quizID); quiz != nil {
			return quiz
		}
	}

	if userID == "" {
		return nil
	}

	lookups := []func(context.Context, string) (*models.Quiz, error){
		r.store.FindLatestSubmitted,
		r.store.FindLatestCompleted,
		r.store.FindLatestAny,
	}
	for _, find := range lookups {
		if quiz, err := find(ctx, userID); err == nil && quiz != nil {
			return quiz
		}
	}
	return nil
}

// substringScan accepts a record whose id contains the supplied fragment.
// First match over a bounded recent window wins.
func (r *Resolver) substringScan(ctx context.Context, fragment string) *models.Quiz {
	recent, err := r.store.FindRecent(ctx, recentWindow)
	if err != nil {
		log.Printf("recent-quiz scan failed: %v", err)
		return nil
	}
	for i := range recent {
		if strings.Contains(recent[i].ID, fragment) {
			log.Printf("quiz %s matched truncated id %q", recent[i].ID, fragment)
			return &recent[i]
		}
	}
	return nil
}

// Reconcile repairs a quiz whose completion flags disagree with its stored
// answers: a non-empty answer set forces submitted and completed true and
// stamps a submission time when one is missing. It mutates the quiz in
// place and reports whether anything changed; the caller decides whether
// to persist.
func Reconcile(quiz *models.Quiz) bool {
	if !quiz.HasAnswers() {
		return false
	}
	if quiz.Submitted && quiz.Completed {
		return false
	}
	quiz.Submitted = true
	quiz.Completed = true
	if quiz.SubmittedAt == nil {
		now := time.Now()
		quiz.SubmittedAt = &now
	}
	return true
}

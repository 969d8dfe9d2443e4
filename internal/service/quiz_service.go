package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"career-quiz-service/internal/event"
	"career-quiz-service/internal/models"
	"career-quiz-service/internal/questionbank"
)

// Fatal-input errors. These surface to the caller; everything else in this
// layer degrades to fallbacks.
var (
	ErrInvalidAgeRange = errors.New("unsupported age range")
	ErrNoAnswers       = errors.New("answers are required")
)

const completionRewardPoints = 50

// QuizStore is what this layer needs from the quiz repository beyond
// resolution.
type QuizStore interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	SaveSubmission(ctx context.Context, quiz *models.Quiz) error
	AttachAnalysis(ctx context.Context, id string, analysis *models.Analysis) error
}

// QuizFinder is the resolver surface.
type QuizFinder interface {
	Resolve(ctx context.Context, userID, quizID string) (*models.Quiz, error)
}

// Analyzer produces an analysis for a quiz; it fails only on an
// unsupported age range.
type Analyzer interface {
	Analyze(ctx context.Context, quiz *models.Quiz) (*models.Analysis, error)
}

// Rewarder posts best-effort reward updates upstream.
type Rewarder interface {
	PostRewardUpdate(ctx context.Context, userID string, points int, token string)
	PostQuizCompletionAward(ctx context.Context, userID, quizID, token string)
}

type QuizService struct {
	store    QuizStore
	finder   QuizFinder
	analyzer Analyzer
	rewards  Rewarder
	events   *event.Publisher
}

func NewQuizService(store QuizStore, finder QuizFinder, analyzer Analyzer, rewards Rewarder, events *event.Publisher) *QuizService {
	return &QuizService{
		store:    store,
		finder:   finder,
		analyzer: analyzer,
		rewards:  rewards,
		events:   events,
	}
}

// Generate creates an empty quiz from the static question bank.
func (s *QuizService) Generate(ctx context.Context, userID, sessionID, ageRange string) (*models.Quiz, error) {
	if !questionbank.Supported(ageRange) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAgeRange, ageRange)
	}

	quiz := &models.Quiz{
		UserID:      userID,
		SessionID:   sessionID,
		AgeRange:    ageRange,
		Questions:   questionbank.QuestionsFor(ageRange),
		Answers:     []int{},
		CareerAreas: questionbank.CareerAreasFor(ageRange),
	}
	if err := s.store.Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("create quiz: %w", err)
	}

	s.events.Publish(event.QuizGenerated, map[string]string{"quiz_id": quiz.ID, "age_range": ageRange})
	return quiz, nil
}

// Submit records the one-time answer submission, computes the analysis,
// and persists both in a single write. Reward calls and events are
// best-effort; concurrent submissions are not serialized and the last
// writer wins.
func (s *QuizService) Submit(ctx context.Context, userID, quizID string, answers []int, token string) (*models.Quiz, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	quiz, err := s.finder.Resolve(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	quiz.Answers = answers
	quiz.Submitted = true
	quiz.Completed = true
	quiz.SubmittedAt = &now

	analysis, err := s.analyzer.Analyze(ctx, quiz)
	if err != nil {
		return nil, err
	}
	quiz.Analysis = analysis

	if err := s.store.SaveSubmission(ctx, quiz); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	if s.rewards != nil && quiz.UserID != "" {
		// Detached from the request: a slow upstream must not delay the
		// response, and a late reply after the caller gives up is fine.
		go func(userID, quizID, token string) {
			rewardCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			s.rewards.PostQuizCompletionAward(rewardCtx, userID, quizID, token)
			s.rewards.PostRewardUpdate(rewardCtx, userID, completionRewardPoints, token)
		}(quiz.UserID, quiz.ID, token)
	}

	s.events.Publish(event.QuizCompleted, map[string]any{
		"quiz_id":   quiz.ID,
		"user_id":   quiz.UserID,
		"top_areas": analysis.TopCareerAreas,
	})
	return quiz, nil
}

// Result resolves the caller's quiz and backfills a missing analysis for
// records submitted before analysis storage existed.
func (s *QuizService) Result(ctx context.Context, userID, quizID string) (*models.Quiz, error) {
	quiz, err := s.finder.Resolve(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	if quiz.Analysis == nil && quiz.HasAnswers() {
		analysis, err := s.analyzer.Analyze(ctx, quiz)
		if err != nil {
			return nil, err
		}
		quiz.Analysis = analysis
		if err := s.store.AttachAnalysis(ctx, quiz.ID, analysis); err != nil {
			log.Printf("failed to store backfilled analysis for quiz %s: %v", quiz.ID, err)
		}
	}
	return quiz, nil
}

package service

import (
	"context"
	"log"

	"career-quiz-service/internal/event"
	"career-quiz-service/internal/extractor"
	"career-quiz-service/internal/models"
)

const historyLimit = 20

// AnalysisProvider is the orchestrator surface this layer needs: real
// analyses for resolved quizzes, clearly-marked fallbacks for everyone
// else.
type AnalysisProvider interface {
	Analyze(ctx context.Context, quiz *models.Quiz) (*models.Analysis, error)
	FallbackAnalysis(ageRange, reason string) *models.Analysis
}

// BundleBuilder assembles the four content categories. It never fails.
type BundleBuilder interface {
	BuildBundle(ctx context.Context, analysis *models.Analysis, userID, sessionID string) *models.EducationalContentBundle
}

type ContentStore interface {
	Create(ctx context.Context, bundle *models.EducationalContentBundle) error
	FindByUser(ctx context.Context, userID string, limit int64) ([]models.EducationalContentBundle, error)
}

// AnalysisAttacher persists a backfilled analysis onto its quiz.
type AnalysisAttacher interface {
	AttachAnalysis(ctx context.Context, id string, analysis *models.Analysis) error
}

type RecommendationService struct {
	finder    QuizFinder
	analyzer  AnalysisProvider
	pipeline  BundleBuilder
	store     ContentStore
	attacher  AnalysisAttacher
	extractor *extractor.Extractor
	events    *event.Publisher
}

func NewRecommendationService(
	finder QuizFinder,
	analyzer AnalysisProvider,
	pipeline BundleBuilder,
	store ContentStore,
	attacher AnalysisAttacher,
	ex *extractor.Extractor,
	events *event.Publisher,
) *RecommendationService {
	return &RecommendationService{
		finder:    finder,
		analyzer:  analyzer,
		pipeline:  pipeline,
		store:     store,
		attacher:  attacher,
		extractor: ex,
		events:    events,
	}
}

// Bundle builds (and stores) a content bundle for the caller. A user with
// no quiz on record gets clearly-labeled generic fallback content, never an
// error.
func (s *RecommendationService) Bundle(ctx context.Context, userID, sessionID, quizID, ageRange string) *models.EducationalContentBundle {
	analysis := s.analysisFor(ctx, userID, quizID, ageRange)

	bundle := s.pipeline.BuildBundle(ctx, analysis, userID, sessionID)
	if err := s.store.Create(ctx, bundle); err != nil {
		log.Printf("failed to store content bundle for user %q: %v", userID, err)
	}

	s.events.Publish(event.RecommendationsBuilt, map[string]any{
		"user_id":  userID,
		"fallback": analysis.Fallback,
	})
	return bundle
}

func (s *RecommendationService) analysisFor(ctx context.Context, userID, quizID, ageRange string) *models.Analysis {
	quiz, err := s.finder.Resolve(ctx, userID, quizID)
	if err != nil {
		return s.analyzer.FallbackAnalysis(ageRange, "no completed quiz was found for this user")
	}
	if quiz.Analysis != nil {
		return quiz.Analysis
	}

	analysis, err := s.analyzer.Analyze(ctx, quiz)
	if err != nil {
		log.Printf("analysis for quiz %s failed: %v", quiz.ID, err)
		return s.analyzer.FallbackAnalysis(ageRange, "the stored quiz could not be analyzed")
	}
	if err := s.attacher.AttachAnalysis(ctx, quiz.ID, analysis); err != nil {
		log.Printf("failed to store backfilled analysis for quiz %s: %v", quiz.ID, err)
	}
	return analysis
}

// Summary returns the trait/career extraction for the caller's latest
// analysis, with bounded generic defaults when extraction comes up empty.
func (s *RecommendationService) Summary(ctx context.Context, userID, quizID string) ([]models.TraitRecord, []models.CareerRecord) {
	var in extractor.Input
	if quiz, err := s.finder.Resolve(ctx, userID, quizID); err == nil {
		if quiz.Analysis != nil {
			in.Structured = quiz.Analysis
		} else if quiz.LegacyAnalysis != "" {
			in.Legacy = quiz.LegacyAnalysis
		}
	}

	traits := s.extractor.Traits(in)
	if len(traits) == 0 {
		traits = defaultTraits()
	}
	careers := s.extractor.Careers(in)
	if len(careers) == 0 {
		careers = defaultCareers()
	}
	return traits, careers
}

// History lists the user's stored bundles, newest first. Storage failure
// degrades to an empty list.
func (s *RecommendationService) History(ctx context.Context, userID string) []models.EducationalContentBundle {
	bundles, err := s.store.FindByUser(ctx, userID, historyLimit)
	if err != nil {
		log.Printf("bundle history lookup for user %q failed: %v", userID, err)
		return []models.EducationalContentBundle{}
	}
	if bundles == nil {
		bundles = []models.EducationalContentBundle{}
	}
	return bundles
}

func defaultTraits() []models.TraitRecord {
	return []models.TraitRecord{
		{Name: "Curious", Emoji: "🔍", Description: "You love asking questions and finding out how things work."},
		{Name: "Creative", Emoji: "🎨", Description: "You enjoy making new things and imagining possibilities."},
		{Name: "Determined", Emoji: "💪", Description: "You keep trying even when things get tricky."},
	}
}

func defaultCareers() []models.CareerRecord {
	return []models.CareerRecord{
		{Title: "Explorer of Ideas", Emoji: "🌟", Affinity: 85, Description: "Take the career quiz to discover fields that fit you best."},
		{Title: "Creative Maker", Emoji: "🎨", Affinity: 80, Description: "Building, drawing, and inventing could be your thing."},
		{Title: "Team Player", Emoji: "🤝", Affinity: 75, Description: "Working with others opens many doors."},
	}
}

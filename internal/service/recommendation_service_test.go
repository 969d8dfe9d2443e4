package service

import (
	"context"
	"errors"
	"testing"

	"career-quiz-service/internal/extractor"
	"career-quiz-service/internal/models"
	"career-quiz-service/internal/questionbank"
	"career-quiz-service/internal/resolver"
)

type fakeContentStore struct {
	created []*models.EducationalContentBundle
	stored  []models.EducationalContentBundle
	err     error
}

func (f *fakeContentStore) Create(_ context.Context, bundle *models.EducationalContentBundle) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, bundle)
	return nil
}

func (f *fakeContentStore) FindByUser(_ context.Context, _ string, _ int64) ([]models.EducationalContentBundle, error) {
	return f.stored, f.err
}

type fakePipeline struct{}

func (f *fakePipeline) BuildBundle(_ context.Context, analysis *models.Analysis, userID, sessionID string) *models.EducationalContentBundle {
	return &models.EducationalContentBundle{
		UserID:    userID,
		SessionID: sessionID,
		Analysis:  analysis,
		Videos:    []models.VideoItem{},
		Books:     []models.BookItem{{Title: "b", Category: "book"}},
		Games:     []models.GameItem{{Title: "g", Category: "game"}},
		Resources: []models.ResourceItem{{Title: "r", Category: "resource"}},
	}
}

func newRecommendationService(finder QuizFinder, store ContentStore) *RecommendationService {
	attacher := &fakeQuizStore{}
	return NewRecommendationService(finder, &fakeAnalyzer{}, &fakePipeline{}, store, attacher, extractor.New(extractor.DefaultTables()), nil)
}

func TestBundleWithResolvedQuiz(t *testing.T) {
	analysis := &models.Analysis{TopCareerAreas: []string{"Science"}, AgeRange: questionbank.AgeRange9to12}
	finder := &fakeFinder{quiz: &models.Quiz{ID: "q1", UserID: "u1", Analysis: analysis}}
	store := &fakeContentStore{}
	s := newRecommendationService(finder, store)

	bundle := s.Bundle(context.Background(), "u1", "", "q1", questionbank.AgeRange9to12)

	if bundle.Analysis != analysis {
		t.Error("Expected the stored analysis to drive the bundle")
	}
	if bundle.Analysis.Fallback {
		t.Error("Resolved quiz must not produce a fallback analysis")
	}
	if len(store.created) != 1 {
		t.Errorf("Expected the bundle to be stored once, got %d writes", len(store.created))
	}
}

func TestBundleWithoutQuizUsesLabeledFallback(t *testing.T) {
	finder := &fakeFinder{err: resolver.ErrNoQuiz}
	s := newRecommendationService(finder, &fakeContentStore{})

	bundle := s.Bundle(context.Background(), "u1", "", "", questionbank.AgeRange6to8)

	if bundle == nil {
		t.Fatal("Bundle must never be nil")
	}
	if !bundle.Analysis.Fallback || bundle.Analysis.FallbackReason == "" {
		t.Error("No-quiz bundles must carry a labeled fallback analysis")
	}
	if len(bundle.Books) == 0 || len(bundle.Games) == 0 {
		t.Error("Fallback bundles still carry content")
	}
}

func TestBundleSurvivesStorageFailure(t *testing.T) {
	finder := &fakeFinder{err: resolver.ErrNoQuiz}
	s := newRecommendationService(finder, &fakeContentStore{err: errors.New("mongo down")})

	if bundle := s.Bundle(context.Background(), "u1", "", "", ""); bundle == nil {
		t.Fatal("Storage failure must not blank the response")
	}
}

func TestBundleBackfillsAnalysis(t *testing.T) {
	finder := &fakeFinder{quiz: &models.Quiz{ID: "q1", UserID: "u1", AgeRange: questionbank.AgeRange6to8, Answers: []int{0}}}
	attacher := &fakeQuizStore{}
	s := NewRecommendationService(finder, &fakeAnalyzer{}, &fakePipeline{}, &fakeContentStore{}, attacher, extractor.New(extractor.DefaultTables()), nil)

	bundle := s.Bundle(context.Background(), "u1", "", "q1", "")

	if bundle.Analysis.Fallback {
		t.Error("A resolvable quiz must get a real analysis")
	}
	if attacher.attached["q1"] == nil {
		t.Error("Backfilled analysis must be attached to the quiz")
	}
}

func TestSummaryStructured(t *testing.T) {
	analysis := &models.Analysis{
		TopCareerAreas: []string{"Art", "Science"},
		AIAnalysis:     models.AINarrative{Skills: []string{"drawing"}},
	}
	finder := &fakeFinder{quiz: &models.Quiz{ID: "q1", Analysis: analysis}}
	s := newRecommendationService(finder, &fakeContentStore{})

	traits, careers := s.Summary(context.Background(), "u1", "")

	if len(traits) != 1 || traits[0].Name != "drawing" {
		t.Errorf("Expected the narrative skill as a trait, got %v", traits)
	}
	if len(careers) != 2 || careers[0].Title != "Art" {
		t.Errorf("Expected top areas as careers, got %v", careers)
	}
}

func TestSummaryLegacyText(t *testing.T) {
	finder := &fakeFinder{quiz: &models.Quiz{
		ID:             "q1",
		LegacyAnalysis: "A very curious child who could become a great scientist.",
	}}
	s := newRecommendationService(finder, &fakeContentStore{})

	traits, careers := s.Summary(context.Background(), "u1", "")

	if len(traits) == 0 || traits[0].Name != "Curious" {
		t.Errorf("Expected legacy trait scan to find Curious, got %v", traits)
	}
	if len(careers) == 0 || careers[0].Title != "Scientist" {
		t.Errorf("Expected legacy career scan to find Scientist, got %v", careers)
	}
}

func TestSummaryDefaultsWhenNothingExtractable(t *testing.T) {
	finder := &fakeFinder{err: resolver.ErrNoQuiz}
	s := newRecommendationService(finder, &fakeContentStore{})

	traits, careers := s.Summary(context.Background(), "u1", "")

	if len(traits) == 0 || len(careers) == 0 {
		t.Error("Summary must fall back to generic defaults, never empty lists")
	}
}

func TestHistoryDegradesToEmpty(t *testing.T) {
	s := newRecommendationService(&fakeFinder{}, &fakeContentStore{err: errors.New("timeout")})

	if got := s.History(context.Background(), "u1"); got == nil || len(got) != 0 {
		t.Errorf("Expected empty history on storage failure, got %v", got)
	}
}

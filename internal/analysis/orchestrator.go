package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"career-quiz-service/internal/llm"
	"career-quiz-service/internal/models"
	"career-quiz-service/internal/questionbank"
	"career-quiz-service/internal/scoring"
)

// ErrUnsupportedAgeRange is the orchestrator's only failure mode: the
// caller asked for an age range the question bank does not know.
var ErrUnsupportedAgeRange = errors.New("unsupported age range")

const (
	narrativeMaxTokens   = 600
	narrativeTemperature = 0.7
	topAreaCount         = 3
)

type Orchestrator struct {
	gen llm.Generator
}

func NewOrchestrator(gen llm.Generator) *Orchestrator {
	return &Orchestrator{gen: gen}
}

// Analyze scores a quiz and attaches an AI narrative. Scores are always
// authoritative: a failed or garbled narrative never fails the analysis,
// it is replaced by a canned one built from the top areas.
func (o *Orchestrator) Analyze(ctx context.Context, quiz *models.Quiz) (*models.Analysis, error) {
	areas := questionbank.CareerAreasFor(quiz.AgeRange)
	if areas == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAgeRange, quiz.AgeRange)
	}

	scores := scoring.Score(quiz.Questions, quiz.Answers, areas)
	top := scoring.TopAreas(scores, areas, topAreaCount)

	return &models.Analysis{
		TopCareerAreas: top,
		CareerScores:   scores,
		AIAnalysis:     o.narrative(ctx, quiz.AgeRange, top, areas),
		AgeRange:       quiz.AgeRange,
		GeneratedAt:    time.Now(),
	}, nil
}

// FallbackAnalysis produces a clearly-marked generic analysis for callers
// with no quiz at all, so recommendation requests still get something.
func (o *Orchestrator) FallbackAnalysis(ageRange, reason string) *models.Analysis {
	areas := questionbank.CareerAreasFor(ageRange)
	if areas == nil {
		ageRange = questionbank.AgeRange9to12
		areas = questionbank.CareerAreasFor(ageRange)
	}
	scores := make(map[string]int, len(areas))
	for _, a := range areas {
		scores[a] = 0
	}
	top := areas
	if len(top) > topAreaCount {
		top = top[:topAreaCount]
	}
	return &models.Analysis{
		TopCareerAreas: top,
		CareerScores:   scores,
		AIAnalysis:     cannedNarrative(top),
		AgeRange:       ageRange,
		GeneratedAt:    time.Now(),
		Fallback:       true,
		FallbackReason: reason,
	}
}

func (o *Orchestrator) narrative(ctx context.Context, ageRange string, top, areas []string) models.AINarrative {
	if o.gen == nil {
		return cannedNarrative(top)
	}

	raw, err := o.gen.Complete(ctx, narrativePrompt(ageRange, top, areas), narrativeMaxTokens, narrativeTemperature)
	if err != nil {
		log.Printf("narrative generation failed, using canned narrative: %v", err)
		return cannedNarrative(top)
	}

	var n models.AINarrative
	if !llm.ExtractJSON(raw, &n) || n.Explanation == "" {
		log.Printf("narrative response was not usable JSON, using canned narrative")
		return cannedNarrative(top)
	}

	// Partial payloads keep their good fields; the rest come from the
	// canned narrative.
	canned := cannedNarrative(top)
	if len(n.Skills) == 0 {
		n.Skills = canned.Skills
	}
	if len(n.Activities) == 0 {
		n.Activities = canned.Activities
	}
	if n.Encouragement == "" {
		n.Encouragement = canned.Encouragement
	}
	return n
}

func narrativePrompt(ageRange string, top, areas []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an encouraging career coach for children aged %s.\n", ageRange)
	fmt.Fprintf(&b, "A career interest quiz ranked these areas highest: %s.\n", strings.Join(top, ", "))
	fmt.Fprintf(&b, "All tracked areas were: %s.\n\n", strings.Join(areas, ", "))
	b.WriteString("Respond with JSON only, using exactly this shape:\n")
	b.WriteString(`{"explanation": "...", "skills": ["..."], "activities": ["..."], "encouragement": "..."}` + "\n\n")
	b.WriteString("The explanation should say, in warm and simple language, why these areas fit. ")
	b.WriteString("List 3-4 skills worth growing and 3-4 concrete activities to try. ")
	b.WriteString("Finish with one short encouraging sentence.")
	return b.String()
}

func cannedNarrative(top []string) models.AINarrative {
	lead := "your favorite areas"
	if len(top) > 0 {
		lead = strings.Join(top, " and ")
	}
	return models.AINarrative{
		Explanation: fmt.Sprintf("Your answers show a real spark for %s! You picked activities that let you explore, create, and share, which is exactly how people in these fields got started.", lead),
		Skills: []string{
			"Curiosity and asking good questions",
			"Sticking with a project until it's done",
			"Sharing your ideas with others",
		},
		Activities: []string{
			"Try a beginner project in your favorite area this week",
			"Visit a library and pick one book about it",
			"Ask a grown-up who works in the field what their day looks like",
		},
		Encouragement: "Keep exploring! Every expert started out exactly where you are now.",
	}
}

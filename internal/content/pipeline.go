package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"career-quiz-service/internal/llm"
	"career-quiz-service/internal/models"
	"career-quiz-service/internal/videosearch"
)

const (
	categoryMaxTokens   = 800
	categoryTemperature = 0.7
	maxSearchTerms      = 3
	maxPromptAreas      = 3
)

// Pipeline assembles an educational content bundle from an analysis. Each
// of the four categories degrades independently: a failed generator call or
// unusable payload yields that category's static fallback (an empty list
// for videos), never an error.
type Pipeline struct {
	gen    llm.Generator
	videos videosearch.Searcher
}

func NewPipeline(gen llm.Generator, videos videosearch.Searcher) *Pipeline {
	return &Pipeline{gen: gen, videos: videos}
}

// BuildBundle fetches all four categories. The AI categories and the video
// search run concurrently; each goroutine writes only its own slot.
func (p *Pipeline) BuildBundle(ctx context.Context, analysis *models.Analysis, userID, sessionID string) *models.EducationalContentBundle {
	bundle := &models.EducationalContentBundle{
		UserID:    userID,
		SessionID: sessionID,
		Analysis:  analysis,
		CreatedAt: time.Now(),
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); bundle.Videos = p.searchVideos(ctx, analysis) }()
	go func() { defer wg.Done(); bundle.Books = p.generateBooks(ctx, analysis) }()
	go func() { defer wg.Done(); bundle.Games = p.generateGames(ctx, analysis) }()
	go func() { defer wg.Done(); bundle.Resources = p.generateResources(ctx, analysis) }()
	wg.Wait()

	return bundle
}

// searchVideos queries the provider with up to three topics pulled from the
// analysis. Transport failure means an empty list, not a failed bundle.
func (p *Pipeline) searchVideos(ctx context.Context, analysis *models.Analysis) []models.VideoItem {
	if p.videos == nil {
		return []models.VideoItem{}
	}

	terms := searchTerms(analysis)
	subject := ""
	if len(analysis.TopCareerAreas) > 0 {
		subject = analysis.TopCareerAreas[0]
	}

	videos, err := p.videos.Search(ctx, videosearch.Query{
		Query:      strings.Join(terms, " "),
		AgeRange:   analysis.AgeRange,
		Subject:    subject,
		MaxResults: 5,
	})
	if err != nil {
		log.Printf("video search failed, returning no videos: %v", err)
		return []models.VideoItem{}
	}
	return videos
}

// searchTerms picks the top career areas plus any skills the narrative
// named, capped at three terms.
func searchTerms(analysis *models.Analysis) []string {
	terms := append([]string{}, analysis.TopCareerAreas...)
	terms = append(terms, analysis.AIAnalysis.Skills...)
	if len(terms) > maxSearchTerms {
		terms = terms[:maxSearchTerms]
	}
	return terms
}

func (p *Pipeline) generateGames(ctx context.Context, analysis *models.Analysis) []models.GameItem {
	raw, ok := p.complete(ctx, "games", gamesPrompt(analysis))
	if !ok {
		return fallbackGames()
	}
	list, ok := normalizeList(raw, "games", "items", "recommendations")
	if !ok {
		log.Printf("games payload was not usable, using fallback list")
		return fallbackGames()
	}
	var items []models.GameItem
	if err := json.Unmarshal(list, &items); err != nil || len(items) == 0 {
		return fallbackGames()
	}
	for i := range items {
		items[i].Category = "game"
	}
	return items
}

func (p *Pipeline) generateBooks(ctx context.Context, analysis *models.Analysis) []models.BookItem {
	raw, ok := p.complete(ctx, "books", booksPrompt(analysis))
	if !ok {
		return fallbackBooks(analysis.AgeRange)
	}
	list, ok := normalizeList(raw, "books", "items", "recommendations")
	if !ok {
		log.Printf("books payload was not usable, using fallback list")
		return fallbackBooks(analysis.AgeRange)
	}
	var items []models.BookItem
	if err := json.Unmarshal(list, &items); err != nil || len(items) == 0 {
		return fallbackBooks(analysis.AgeRange)
	}
	for i := range items {
		items[i].Category = "book"
		if items[i].AgeRange == "" {
			items[i].AgeRange = analysis.AgeRange
		}
	}
	return items
}

func (p *Pipeline) generateResources(ctx context.Context, analysis *models.Analysis) []models.ResourceItem {
	raw, ok := p.complete(ctx, "resources", resourcesPrompt(analysis))
	if !ok {
		return fallbackResources(analysis.AgeRange)
	}
	list, ok := normalizeList(raw, "resources", "items", "recommendations")
	if !ok {
		log.Printf("resources payload was not usable, using fallback list")
		return fallbackResources(analysis.AgeRange)
	}
	var items []models.ResourceItem
	if err := json.Unmarshal(list, &items); err != nil || len(items) == 0 {
		return fallbackResources(analysis.AgeRange)
	}
	for i := range items {
		items[i].Category = "resource"
	}
	return items
}

func (p *Pipeline) complete(ctx context.Context, category, prompt string) (string, bool) {
	if p.gen == nil {
		return "", false
	}
	raw, err := p.gen.Complete(ctx, prompt, categoryMaxTokens, categoryTemperature)
	if err != nil {
		log.Printf("%s generation failed, using fallback list: %v", category, err)
		return "", false
	}
	return raw, true
}

// normalizeList extracts a JSON array from raw model output. Models often
// wrap the array in an object under a synonymous key, or return a single
// object instead of an array; both shapes are normalized here.
func normalizeList(raw string, synonyms ...string) (json.RawMessage, bool) {
	var doc json.RawMessage
	if !llm.ExtractJSON(raw, &doc) {
		return nil, false
	}

	trimmed := strings.TrimSpace(string(doc))
	if strings.HasPrefix(trimmed, "[") {
		return doc, true
	}
	if !strings.HasPrefix(trimmed, "{") {
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		return nil, false
	}
	for _, key := range synonyms {
		inner, ok := obj[key]
		if !ok {
			continue
		}
		innerTrimmed := strings.TrimSpace(string(inner))
		if strings.HasPrefix(innerTrimmed, "[") {
			return inner, true
		}
		if strings.HasPrefix(innerTrimmed, "{") {
			return json.RawMessage("[" + innerTrimmed + "]"), true
		}
	}
	// A lone object is treated as a single-element list.
	return json.RawMessage("[" + trimmed + "]"), true
}

func promptAreas(analysis *models.Analysis) string {
	areas := analysis.TopCareerAreas
	if len(areas) > maxPromptAreas {
		areas = areas[:maxPromptAreas]
	}
	return strings.Join(areas, ", ")
}

func gamesPrompt(analysis *models.Analysis) string {
	return fmt.Sprintf(`Suggest 4 fun educational games for a child aged %s interested in: %s.
Respond with JSON only, an array of objects shaped like:
[{"title": "...", "description": "...", "skill": "...", "type": "board|card|digital|outdoor"}]`,
		analysis.AgeRange, promptAreas(analysis))
}

func booksPrompt(analysis *models.Analysis) string {
	return fmt.Sprintf(`Suggest 4 age-appropriate books for a child aged %s interested in: %s.
Respond with JSON only, an array of objects shaped like:
[{"title": "...", "author": "...", "description": "...", "age_range": "%s"}]`,
		analysis.AgeRange, promptAreas(analysis), analysis.AgeRange)
}

func resourcesPrompt(analysis *models.Analysis) string {
	return fmt.Sprintf(`Suggest 4 learning resources (websites, kits, classes) for a child aged %s interested in: %s.
Respond with JSON only, an array of objects shaped like:
[{"title": "...", "type": "website|kit|class", "description": "...", "skill_level": "beginner|intermediate", "estimated_time": "..."}]`,
		analysis.AgeRange, promptAreas(analysis))
}

package extractor

import (
	"testing"

	"career-quiz-service/internal/models"
)

func defaultExtractor() *Extractor {
	return New(DefaultTables())
}

func TestStructuredCareers(t *testing.T) {
	analysis := &models.Analysis{
		TopCareerAreas: []string{"Art", "Science", "Music"},
	}

	careers := defaultExtractor().Careers(Input{Structured: analysis})

	if len(careers) != 3 {
		t.Fatalf("Expected 3 careers, got %d", len(careers))
	}
	if careers[0].Title != "Art" || careers[0].Emoji != "🎨" {
		t.Errorf("Expected Art with exact emoji match, got %+v", careers[0])
	}
	for i, c := range careers {
		if c.Affinity < 70 || c.Affinity > 99 {
			t.Errorf("Affinity out of range for %s: %d", c.Title, c.Affinity)
		}
		if i > 0 && c.Affinity > careers[i-1].Affinity {
			t.Error("Affinity must not increase down the ranking")
		}
		if c.Description == "" {
			t.Errorf("Missing description for %s", c.Title)
		}
	}
}

func TestStructuredCareersUnknownAreaGetsDefaultEmoji(t *testing.T) {
	analysis := &models.Analysis{TopCareerAreas: []string{"Zoology"}}
	careers := defaultExtractor().Careers(Input{Structured: analysis})
	if len(careers) != 1 || careers[0].Emoji != "🌟" {
		t.Errorf("Expected default glyph for unknown area, got %+v", careers)
	}
}

func TestStructuredTraitsFromSkills(t *testing.T) {
	analysis := &models.Analysis{
		AIAnalysis: models.AINarrative{Skills: []string{"Creative thinking", "teamwork", ""}},
	}

	traits := defaultExtractor().Traits(Input{Structured: analysis})

	if len(traits) != 2 {
		t.Fatalf("Expected 2 traits (empty entry dropped), got %d", len(traits))
	}
	if traits[0].Emoji != "🎨" {
		t.Errorf("Expected substring emoji match for 'Creative thinking', got %q", traits[0].Emoji)
	}
	if traits[1].Emoji != "🤝" {
		t.Errorf("Expected exact emoji match for 'teamwork', got %q", traits[1].Emoji)
	}
}

func TestLegacyTraitScan(t *testing.T) {
	text := "This child is very Curious about nature and shows creative energy."

	traits := defaultExtractor().Traits(Input{Legacy: text})

	if len(traits) < 2 {
		t.Fatalf("Expected at least curious and creative, got %v", traits)
	}
	// Scan order follows the keyword table, not text order.
	if traits[0].Name != "Creative" {
		t.Errorf("Expected Creative first (table order), got %q", traits[0].Name)
	}
}

func TestLegacyCareersCappedAtFive(t *testing.T) {
	text := "Could be an artist, scientist, engineer, doctor, teacher, athlete or musician."

	careers := defaultExtractor().Careers(Input{Legacy: text})

	if len(careers) != 5 {
		t.Errorf("Expected careers truncated to 5, got %d", len(careers))
	}
	if careers[0].Title != "Artist" {
		t.Errorf("Expected Artist first, got %q", careers[0].Title)
	}
}

func TestEmojiLookupStableAcrossRuns(t *testing.T) {
	// "Musical creativity" substring-matches both the creative and the
	// musical entries; the sorted scan must pick the same one every time.
	analysis := &models.Analysis{
		AIAnalysis: models.AINarrative{Skills: []string{"Musical creativity"}},
	}
	e := defaultExtractor()

	for i := 0; i < 50; i++ {
		traits := e.Traits(Input{Structured: analysis})
		if len(traits) != 1 {
			t.Fatalf("Expected 1 trait, got %d", len(traits))
		}
		if traits[0].Emoji != "🎨" {
			t.Fatalf("Run %d: expected 🎨 (creative sorts first), got %q", i, traits[0].Emoji)
		}
	}
}

func TestEmptyInputsYieldEmptySlices(t *testing.T) {
	e := defaultExtractor()

	if got := e.Traits(Input{}); len(got) != 0 {
		t.Errorf("Expected no traits, got %v", got)
	}
	if got := e.Careers(Input{Legacy: "nothing relevant here"}); len(got) != 0 {
		t.Errorf("Expected no careers, got %v", got)
	}
}

func TestInjectedTablesAreUsed(t *testing.T) {
	tables := Tables{
		CareerEmojis:   map[string]string{"astronaut": "🚀"},
		CareerKeywords: []string{"astronaut"},
		DefaultCareer:  "?",
	}
	e := New(tables)

	careers := e.Careers(Input{Legacy: "wants to be an astronaut"})
	if len(careers) != 1 || careers[0].Emoji != "🚀" {
		t.Errorf("Expected substituted table to drive extraction, got %v", careers)
	}
}

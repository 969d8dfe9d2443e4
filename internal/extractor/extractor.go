package extractor

import (
	"fmt"
	"sort"
	"strings"

	"career-quiz-service/internal/models"
)

const maxCareers = 5

// Input is the tagged variant the extractor dispatches on: a structured
// analysis when one exists, otherwise legacy free text (older records
// stored the analysis as a blob of prose).
type Input struct {
	Structured *models.Analysis
	Legacy     string
}

// Tables holds the immutable lookup data the extractor works from. Tests
// substitute their own; production uses DefaultTables.
type Tables struct {
	TraitEmojis    map[string]string
	CareerEmojis   map[string]string
	TraitKeywords  []string
	CareerKeywords []string
	DefaultTrait   string
	DefaultCareer  string
}

func DefaultTables() Tables {
	return Tables{
		TraitEmojis: map[string]string{
			"creative":      "🎨",
			"curious":       "🔍",
			"analytical":    "🧩",
			"caring":        "💗",
			"energetic":     "⚡",
			"musical":       "🎵",
			"observant":     "👀",
			"leader":        "🧭",
			"communication": "💬",
			"drawing":       "🖌️",
			"problem":       "🧠",
			"teamwork":      "🤝",
			"nature":        "🌿",
			"building":      "🧱",
		},
		CareerEmojis: map[string]string{
			"art":         "🎨",
			"science":     "🔬",
			"sports":      "⚽",
			"music":       "🎵",
			"nature":      "🌿",
			"helping":     "💗",
			"technology":  "💻",
			"writing":     "✍️",
			"leadership":  "🧭",
			"engineering": "⚙️",
			"medicine":    "🩺",
			"design":      "✏️",
			"business":    "💼",
			"education":   "📚",
		},
		TraitKeywords: []string{
			"creative", "curious", "analytical", "caring", "energetic",
			"musical", "observant", "leader", "communication", "drawing",
			"problem", "teamwork", "nature", "building",
		},
		CareerKeywords: []string{
			"artist", "scientist", "engineer", "doctor", "teacher",
			"athlete", "musician", "writer", "designer", "programmer",
			"veterinarian", "entrepreneur",
		},
		DefaultTrait:  "✨",
		DefaultCareer: "🌟",
	}
}

type Extractor struct {
	tables Tables
}

func New(tables Tables) *Extractor {
	return &Extractor{tables: tables}
}

// Traits pulls trait records out of an analysis or legacy text. An empty
// slice means nothing could be extracted; callers supply their own generic
// defaults.
func (e *Extractor) Traits(in Input) []models.TraitRecord {
	if in.Structured != nil {
		return e.structuredTraits(in.Structured)
	}
	return e.legacyTraits(in.Legacy)
}

// Careers pulls career records, truncated to the top five.
func (e *Extractor) Careers(in Input) []models.CareerRecord {
	var records []models.CareerRecord
	if in.Structured != nil {
		records = e.structuredCareers(in.Structured)
	} else {
		records = e.legacyCareers(in.Legacy)
	}
	if len(records) > maxCareers {
		records = records[:maxCareers]
	}
	return records
}

func (e *Extractor) structuredTraits(analysis *models.Analysis) []models.TraitRecord {
	records := make([]models.TraitRecord, 0, len(analysis.AIAnalysis.Skills))
	for _, skill := range analysis.AIAnalysis.Skills {
		if skill == "" {
			continue
		}
		records = append(records, models.TraitRecord{
			Name:        skill,
			Emoji:       e.lookup(e.tables.TraitEmojis, skill, e.tables.DefaultTrait),
			Description: fmt.Sprintf("You showed real strength in %s.", strings.ToLower(skill)),
		})
	}
	return records
}

func (e *Extractor) structuredCareers(analysis *models.Analysis) []models.CareerRecord {
	records := make([]models.CareerRecord, 0, len(analysis.TopCareerAreas))
	for i, area := range analysis.TopCareerAreas {
		if area == "" {
			continue
		}
		records = append(records, models.CareerRecord{
			Title:       area,
			Emoji:       e.lookup(e.tables.CareerEmojis, area, e.tables.DefaultCareer),
			Affinity:    syntheticAffinity(i),
			Description: fmt.Sprintf("Your quiz answers point toward a future in %s.", area),
		})
	}
	return records
}

func (e *Extractor) legacyTraits(text string) []models.TraitRecord {
	if text == "" {
		return []models.TraitRecord{}
	}
	lower := strings.ToLower(text)
	records := []models.TraitRecord{}
	for _, keyword := range e.tables.TraitKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		records = append(records, models.TraitRecord{
			Name:        capitalize(keyword),
			Emoji:       e.lookup(e.tables.TraitEmojis, keyword, e.tables.DefaultTrait),
			Description: fmt.Sprintf("Your answers suggest you are %s.", keyword),
		})
	}
	return records
}

func (e *Extractor) legacyCareers(text string) []models.CareerRecord {
	if text == "" {
		return []models.CareerRecord{}
	}
	lower := strings.ToLower(text)
	records := []models.CareerRecord{}
	for _, keyword := range e.tables.CareerKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		records = append(records, models.CareerRecord{
			Title:       capitalize(keyword),
			Emoji:       e.lookup(e.tables.CareerEmojis, keyword, e.tables.DefaultCareer),
			Affinity:    syntheticAffinity(len(records)),
			Description: fmt.Sprintf("You might enjoy working as a %s.", keyword),
		})
	}
	return records
}

// lookup resolves an emoji: exact key match, then substring match either
// way, then the default glyph. Substring matching walks the keys in
// sorted order so a name matching several entries always resolves to
// the same one.
func (e *Extractor) lookup(table map[string]string, name, fallback string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if emoji, ok := table[key]; ok {
		return emoji
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return table[k]
		}
	}
	return fallback
}

// capitalize upper-cases the first letter of a keyword for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// syntheticAffinity maps a rank position to a percentage in the 70-99
// range, descending so earlier entries read stronger.
func syntheticAffinity(rank int) int {
	affinity := 95 - rank*6
	if affinity < 70 {
		affinity = 70
	}
	return affinity
}

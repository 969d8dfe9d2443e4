package models

import "time"

// Question is a single quiz question. Options are ordered; the index of an
// option is the answer value stored in Quiz.Answers. Scoring maps a career
// area to per-option point values (same length as Options). Questions
// without a scoring matrix contribute nothing to the result.
type Question struct {
	Text    string           `bson:"text" json:"text"`
	Options []string         `bson:"options" json:"options"`
	Scoring map[string][]int `bson:"scoring,omitempty" json:"scoring,omitempty"`
}

type Quiz struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"user_id,omitempty" json:"user_id,omitempty"`
	SessionID   string     `bson:"session_id,omitempty" json:"session_id,omitempty"`
	AgeRange    string     `bson:"age_range" json:"age_range"`
	Questions   []Question `bson:"questions" json:"questions"`
	Answers     []int      `bson:"answers" json:"answers"`
	CareerAreas []string   `bson:"career_areas" json:"career_areas"`
	Submitted   bool       `bson:"submitted" json:"submitted"`
	Completed   bool       `bson:"completed" json:"completed"`
	SubmittedAt *time.Time `bson:"submitted_at,omitempty" json:"submitted_at,omitempty"`
	Analysis    *Analysis  `bson:"analysis,omitempty" json:"analysis,omitempty"`
	// LegacyAnalysis holds the free-text analysis blob older records were
	// written with, before the structured Analysis shape existed.
	LegacyAnalysis string    `bson:"legacy_analysis,omitempty" json:"legacy_analysis,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// HasAnswers reports whether the quiz carries a submitted answer set,
// regardless of what the submitted/completed flags claim.
func (q *Quiz) HasAnswers() bool {
	return len(q.Answers) > 0
}

package models

import "time"

// AINarrative is the qualitative part of an analysis, produced by the text
// generator (or by a canned fallback when the generator is unavailable).
type AINarrative struct {
	Explanation   string   `bson:"explanation" json:"explanation"`
	Skills        []string `bson:"skills" json:"skills"`
	Activities    []string `bson:"activities" json:"activities"`
	Encouragement string   `bson:"encouragement" json:"encouragement"`
}

type Analysis struct {
	TopCareerAreas []string       `bson:"top_career_areas" json:"top_career_areas"`
	CareerScores   map[string]int `bson:"career_scores" json:"career_scores"`
	AIAnalysis     AINarrative    `bson:"ai_analysis" json:"ai_analysis"`
	AgeRange       string         `bson:"age_range" json:"age_range"`
	GeneratedAt    time.Time      `bson:"generated_at" json:"generated_at"`
	// Fallback is true when the analysis was produced without a real quiz,
	// e.g. for a user who requested recommendations before taking one.
	Fallback       bool   `bson:"fallback,omitempty" json:"fallback,omitempty"`
	FallbackReason string `bson:"fallback_reason,omitempty" json:"fallback_reason,omitempty"`
}

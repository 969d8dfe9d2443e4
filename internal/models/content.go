package models

import "time"

type VideoItem struct {
	Title       string `bson:"title" json:"title"`
	URL         string `bson:"url" json:"url"`
	Description string `bson:"description" json:"description"`
	Duration    string `bson:"duration,omitempty" json:"duration,omitempty"`
	Topic       string `bson:"topic,omitempty" json:"topic,omitempty"`
}

type BookItem struct {
	Title       string `bson:"title" json:"title"`
	Author      string `bson:"author,omitempty" json:"author,omitempty"`
	Description string `bson:"description" json:"description"`
	AgeRange    string `bson:"age_range,omitempty" json:"age_range,omitempty"`
	Category    string `bson:"category" json:"category"`
}

type GameItem struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Skill       string `bson:"skill,omitempty" json:"skill,omitempty"`
	Type        string `bson:"type,omitempty" json:"type,omitempty"`
	Category    string `bson:"category" json:"category"`
}

type ResourceItem struct {
	Title         string `bson:"title" json:"title"`
	Type          string `bson:"type,omitempty" json:"type,omitempty"`
	Description   string `bson:"description" json:"description"`
	SkillLevel    string `bson:"skill_level,omitempty" json:"skill_level,omitempty"`
	EstimatedTime string `bson:"estimated_time,omitempty" json:"estimated_time,omitempty"`
	Category      string `bson:"category" json:"category"`
}

// EducationalContentBundle aggregates the four recommendation categories
// built from one analysis. Categories fail independently: an empty videos
// list next to populated books is a normal state, not an error.
type EducationalContentBundle struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	UserID    string         `bson:"user_id,omitempty" json:"user_id,omitempty"`
	SessionID string         `bson:"session_id,omitempty" json:"session_id,omitempty"`
	Analysis  *Analysis      `bson:"analysis,omitempty" json:"analysis,omitempty"`
	Videos    []VideoItem    `bson:"videos" json:"videos"`
	Books     []BookItem     `bson:"books" json:"books"`
	Games     []GameItem     `bson:"games" json:"games"`
	Resources []ResourceItem `bson:"resources" json:"resources"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
}

// TraitRecord and CareerRecord are the user-facing summary entries produced
// by the recommendation extractor.
type TraitRecord struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

type CareerRecord struct {
	Title       string `json:"title"`
	Emoji       string `json:"emoji"`
	Affinity    int    `json:"affinity"`
	Description string `json:"description"`
}

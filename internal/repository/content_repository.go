package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"career-quiz-service/internal/models"
)

type ContentRepository struct {
	Col *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{Col: db.Collection("content_bundles")}
}

func (r *ContentRepository) Create(ctx context.Context, bundle *models.EducationalContentBundle) error {
	if bundle.ID == "" {
		bundle.ID = primitive.NewObjectID().Hex()
	}
	if bundle.CreatedAt.IsZero() {
		bundle.CreatedAt = time.Now()
	}
	_, err := r.Col.InsertOne(ctx, bundle)
	return err
}

// FindByUser returns a user's stored bundles, newest first.
func (r *ContentRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]models.EducationalContentBundle, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bundles []models.EducationalContentBundle
	for cur.Next(ctx) {
		var b models.EducationalContentBundle
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, cur.Err()
}

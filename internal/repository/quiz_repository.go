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

// QuizRepository persists quizzes. Quiz ids are ObjectID hex strings stored
// as string _id so truncated-id substring matching can work on the raw
// value.
type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = primitive.NewObjectID().Hex()
	}
	quiz.CreatedAt = time.Now()
	_, err := r.Col.InsertOne(ctx, quiz)
	return err
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := r.Col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindRecent returns the newest records regardless of owner, for the
// resolver's truncated-id scan.
func (r *QuizRepository) FindRecent(ctx context.Context, limit int64) ([]models.Quiz, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, cur.Err()
}

func (r *QuizRepository) findLatest(ctx context.Context, filter bson.M) (*models.Quiz, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var quiz models.Quiz
	if err := r.Col.FindOne(ctx, filter, opts).Decode(&quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindLatestSubmitted(ctx context.Context, userID string) (*models.Quiz, error) {
	return r.findLatest(ctx, bson.M{"user_id": userID, "submitted": true})
}

func (r *QuizRepository) FindLatestCompleted(ctx context.Context, userID string) (*models.Quiz, error) {
	return r.findLatest(ctx, bson.M{"user_id": userID, "completed": true})
}

func (r *QuizRepository) FindLatestAny(ctx context.Context, userID string) (*models.Quiz, error) {
	return r.findLatest(ctx, bson.M{"user_id": userID})
}

// SetCompletionFlags marks a quiz submitted and completed, stamping the
// submission time. Used by the resolver's flag repair.
func (r *QuizRepository) SetCompletionFlags(ctx context.Context, id string, submittedAt time.Time) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"submitted":    true,
		"completed":    true,
		"submitted_at": submittedAt,
	}})
	return err
}

// SaveSubmission writes the one-time submission mutation: answers, flags,
// timestamp, and the computed analysis.
func (r *QuizRepository) SaveSubmission(ctx context.Context, quiz *models.Quiz) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": quiz.ID}, bson.M{"$set": bson.M{
		"answers":      quiz.Answers,
		"submitted":    quiz.Submitted,
		"completed":    quiz.Completed,
		"submitted_at": quiz.SubmittedAt,
		"analysis":     quiz.Analysis,
	}})
	return err
}

// AttachAnalysis stores an analysis computed after the fact for a quiz that
// was submitted without one.
func (r *QuizRepository) AttachAnalysis(ctx context.Context, id string, analysis *models.Analysis) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"analysis": analysis}})
	return err
}

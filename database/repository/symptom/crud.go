package symptomRepo

import (
	"context"
	"errors"
	"time"

	"dermacare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a symptom log does not exist or is not owned
// by the caller.
var ErrNotFound = errors.New("symptom log not found")

// Create inserts a new symptom log and returns its ID.
func (r *mongoSymptomRepo) Create(ctx context.Context, log models.SymptomLog) (string, error) {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	log.CreatedAt = time.Now()
	log.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, log)
	if err != nil {
		return "", err
	}
	return log.ID, nil
}

// GetByID returns a symptom log by ID, scoped to its owner.
func (r *mongoSymptomRepo) GetByID(ctx context.Context, id, userID string) (*models.SymptomLog, error) {
	var log models.SymptomLog
	err := r.coll.FindOne(ctx, bson.M{"id": id, "userId": userID}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// GetByUser fetches all symptom logs for a user, newest first.
func (r *mongoSymptomRepo) GetByUser(ctx context.Context, userID string) ([]models.SymptomLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.SymptomLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Update replaces a symptom log document, scoped to its owner.
func (r *mongoSymptomRepo) Update(ctx context.Context, log models.SymptomLog) error {
	log.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": log.ID, "userId": log.UserID}, log)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a symptom log by ID, scoped to its owner.
func (r *mongoSymptomRepo) Delete(ctx context.Context, id, userID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package symptomRepo

import (
	"context"

	"dermacare/database"
	"dermacare/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SymptomLogRepository persists eczema symptom log entries.
type SymptomLogRepository interface {
	Create(ctx context.Context, log models.SymptomLog) (string, error)
	GetByID(ctx context.Context, id, userID string) (*models.SymptomLog, error)
	GetByUser(ctx context.Context, userID string) ([]models.SymptomLog, error)
	Update(ctx context.Context, log models.SymptomLog) error
	Delete(ctx context.Context, id, userID string) error
}

type mongoSymptomRepo struct {
	coll *mongo.Collection
}

// NewMongoSymptomRepo returns a SymptomLogRepository backed by MongoDB.
func NewMongoSymptomRepo() SymptomLogRepository {
	return &mongoSymptomRepo{
		coll: database.DB().Collection("symptom_logs"),
	}
}

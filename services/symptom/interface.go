package symptom

import (
	"context"

	"dermacare/models"
)

// SymptomService manages eczema symptom log entries.
type SymptomService interface {
	CreateLog(ctx context.Context, userID string, req models.CreateSymptomLogRequest) (*models.SymptomLog, error)
	GetLogs(ctx context.Context, userID string) ([]models.SymptomLog, error)
	GetLogByID(ctx context.Context, id, userID string) (*models.SymptomLog, error)
	UpdateLog(ctx context.Context, id, userID string, req models.UpdateSymptomLogRequest) (*models.SymptomLog, error)
	DeleteLog(ctx context.Context, id, userID string) error
}

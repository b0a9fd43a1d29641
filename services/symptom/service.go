package symptom

import (
	"context"
	"fmt"
	"strings"

	symptomRepo "dermacare/database/repository/symptom"
	"dermacare/models"
)

// DefaultSymptomService is the production implementation.
type DefaultSymptomService struct {
	Repo symptomRepo.SymptomLogRepository
}

// CreateLog persists a new symptom log entry.
func (s *DefaultSymptomService) CreateLog(ctx context.Context, userID string, req models.CreateSymptomLogRequest) (*models.SymptomLog, error) {
	log := models.SymptomLog{
		UserID:           userID,
		ItchinessLevel:   req.ItchinessLevel,
		AffectedArea:     strings.TrimSpace(req.AffectedArea),
		PossibleTriggers: strings.TrimSpace(req.PossibleTriggers),
		AdditionalNotes:  strings.TrimSpace(req.AdditionalNotes),
	}

	id, err := s.Repo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("create symptom log: %w", err)
	}
	return s.Repo.GetByID(ctx, id, userID)
}

// GetLogs returns all symptom logs for a user, newest first.
func (s *DefaultSymptomService) GetLogs(ctx context.Context, userID string) ([]models.SymptomLog, error) {
	return s.Repo.GetByUser(ctx, userID)
}

// GetLogByID returns one symptom log, owner-scoped.
func (s *DefaultSymptomService) GetLogByID(ctx context.Context, id, userID string) (*models.SymptomLog, error) {
	return s.Repo.GetByID(ctx, id, userID)
}

// UpdateLog applies a partial update to a symptom log, owner-scoped.
func (s *DefaultSymptomService) UpdateLog(ctx context.Context, id, userID string, req models.UpdateSymptomLogRequest) (*models.SymptomLog, error) {
	log, err := s.Repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.ItchinessLevel != nil {
		log.ItchinessLevel = *req.ItchinessLevel
	}
	if req.AffectedArea != nil {
		log.AffectedArea = strings.TrimSpace(*req.AffectedArea)
	}
	if req.PossibleTriggers != nil {
		log.PossibleTriggers = strings.TrimSpace(*req.PossibleTriggers)
	}
	if req.AdditionalNotes != nil {
		log.AdditionalNotes = strings.TrimSpace(*req.AdditionalNotes)
	}

	if err := s.Repo.Update(ctx, *log); err != nil {
		return nil, err
	}
	return log, nil
}

// DeleteLog removes one symptom log, owner-scoped.
func (s *DefaultSymptomService) DeleteLog(ctx context.Context, id, userID string) error {
	return s.Repo.Delete(ctx, id, userID)
}

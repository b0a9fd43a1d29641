package symptom

import (
	"context"
	"testing"

	symptomRepo "dermacare/database/repository/symptom"
	"dermacare/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	logs map[string]models.SymptomLog
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{logs: make(map[string]models.SymptomLog)}
}

func (f *fakeRepo) Create(_ context.Context, log models.SymptomLog) (string, error) {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	f.logs[log.ID] = log
	return log.ID, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id, userID string) (*models.SymptomLog, error) {
	log, ok := f.logs[id]
	if !ok || log.UserID != userID {
		return nil, symptomRepo.ErrNotFound
	}
	return &log, nil
}

func (f *fakeRepo) GetByUser(_ context.Context, userID string) ([]models.SymptomLog, error) {
	var out []models.SymptomLog
	for _, log := range f.logs {
		if log.UserID == userID {
			out = append(out, log)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, log models.SymptomLog) error {
	if _, ok := f.logs[log.ID]; !ok {
		return symptomRepo.ErrNotFound
	}
	f.logs[log.ID] = log
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id, userID string) error {
	log, ok := f.logs[id]
	if !ok || log.UserID != userID {
		return symptomRepo.ErrNotFound
	}
	delete(f.logs, id)
	return nil
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestCreateLogTrimsFields(t *testing.T) {
	s := &DefaultSymptomService{Repo: newFakeRepo()}

	log, err := s.CreateLog(context.Background(), "user-1", models.CreateSymptomLogRequest{
		ItchinessLevel:   7,
		AffectedArea:     "  inner elbow  ",
		PossibleTriggers: " new detergent ",
		AdditionalNotes:  "  worse at night ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, log.ID)
	assert.Equal(t, "user-1", log.UserID)
	assert.Equal(t, 7, log.ItchinessLevel)
	assert.Equal(t, "inner elbow", log.AffectedArea)
	assert.Equal(t, "new detergent", log.PossibleTriggers)
	assert.Equal(t, "worse at night", log.AdditionalNotes)
}

func TestUpdateLogPartial(t *testing.T) {
	s := &DefaultSymptomService{Repo: newFakeRepo()}

	log, err := s.CreateLog(context.Background(), "user-1", models.CreateSymptomLogRequest{
		ItchinessLevel: 7,
		AffectedArea:   "inner elbow",
	})
	require.NoError(t, err)

	updated, err := s.UpdateLog(context.Background(), log.ID, "user-1", models.UpdateSymptomLogRequest{
		ItchinessLevel: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ItchinessLevel)
	// Untouched fields are preserved.
	assert.Equal(t, "inner elbow", updated.AffectedArea)
}

func TestLogOwnership(t *testing.T) {
	s := &DefaultSymptomService{Repo: newFakeRepo()}

	log, err := s.CreateLog(context.Background(), "user-1", models.CreateSymptomLogRequest{
		ItchinessLevel: 5,
		AffectedArea:   "hands",
	})
	require.NoError(t, err)

	_, err = s.GetLogByID(context.Background(), log.ID, "user-2")
	assert.ErrorIs(t, err, symptomRepo.ErrNotFound)

	_, err = s.UpdateLog(context.Background(), log.ID, "user-2", models.UpdateSymptomLogRequest{
		AffectedArea: strPtr("hijacked"),
	})
	assert.ErrorIs(t, err, symptomRepo.ErrNotFound)

	err = s.DeleteLog(context.Background(), log.ID, "user-2")
	assert.ErrorIs(t, err, symptomRepo.ErrNotFound)

	// The owner still sees the unmodified entry.
	got, err := s.GetLogByID(context.Background(), log.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "hands", got.AffectedArea)
}

func TestDeleteLog(t *testing.T) {
	s := &DefaultSymptomService{Repo: newFakeRepo()}

	log, err := s.CreateLog(context.Background(), "user-1", models.CreateSymptomLogRequest{
		ItchinessLevel: 5,
		AffectedArea:   "hands",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteLog(context.Background(), log.ID, "user-1"))

	_, err = s.GetLogByID(context.Background(), log.ID, "user-1")
	assert.ErrorIs(t, err, symptomRepo.ErrNotFound)

	logs, err := s.GetLogs(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

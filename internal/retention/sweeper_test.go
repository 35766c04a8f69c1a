package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daykeep/internal/models"
)

type recordingTodoService struct {
	cutoff time.Time
	calls  int
}

func (r *recordingTodoService) Create(userID, description string) (models.Todo, error) {
	return models.Todo{}, nil
}

func (r *recordingTodoService) List(userID string) ([]models.Todo, error) { return nil, nil }

func (r *recordingTodoService) Update(userID string, todoID int64, description *string, completed *bool) (models.Todo, error) {
	return models.Todo{}, nil
}

func (r *recordingTodoService) Delete(userID string, todoID int64) (models.Todo, error) {
	return models.Todo{}, nil
}

func (r *recordingTodoService) PurgeOlderThan(cutoff time.Time) (int64, error) {
	r.cutoff = cutoff
	r.calls++
	return 3, nil
}

func TestSweep_CutoffIsSevenDays(t *testing.T) {
	t.Parallel()

	svc := &recordingTodoService{}
	s := NewSweeper(svc)

	s.sweep()

	require.Equal(t, 1, svc.calls)
	want := time.Now().AddDate(0, 0, -7)
	assert.WithinDuration(t, want, svc.cutoff, 5*time.Second)
}

func TestSweeper_StartStop(t *testing.T) {
	t.Parallel()

	s := NewSweeper(&recordingTodoService{})
	require.NoError(t, s.Start())
	s.Stop()
}

package retention

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"daykeep/internal/services"
)

// Todos older than this many days are purged, completed or not. The
// deletion is irreversible and unannounced.
const retentionDays = 7

// sweepSchedule is fixed at process start; it is not runtime-configurable.
const sweepSchedule = "0 0 * * *"

// Sweeper deletes stale todos on a nightly schedule. It shares the store
// with request handlers; SQLite's own locking is the only coordination.
type Sweeper struct {
	todos services.TodoServiceProvider
	cron  *cron.Cron
}

// NewSweeper creates a sweeper over the given todo service.
func NewSweeper(todos services.TodoServiceProvider) *Sweeper {
	return &Sweeper{todos: todos, cron: cron.New()}
}

// Start schedules the nightly sweep and begins running it.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(sweepSchedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Info().Str("schedule", sweepSchedule).Msg("Retention sweeper started")
	return nil
}

// Stop halts the schedule. An in-flight sweep is not interrupted.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	log.Info().Msg("Retention sweeper stopped")
}

func (s *Sweeper) sweep() {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	count, err := s.todos.PurgeOlderThan(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Error deleting old todos")
		return
	}
	// Row count only; the rows themselves are gone.
	log.Info().Int64("count", count).Msg("Deleted old todos")
}

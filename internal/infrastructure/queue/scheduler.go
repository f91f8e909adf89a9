package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/ports"
)

const defaultInterval = time.Hour

// Scheduler periodically scans for standard expenses whose next date has
// come due and hands them to the dispatcher.
type Scheduler struct {
	expenses   ports.StandardExpenseRepository
	dispatcher *Dispatcher
	interval   time.Duration
	log        zerolog.Logger
}

// NewScheduler creates a Scheduler ticking at the given interval.
// If interval <= 0, defaultInterval is used.
func NewScheduler(expenses ports.StandardExpenseRepository, dispatcher *Dispatcher, interval time.Duration, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		expenses:   expenses,
		dispatcher: dispatcher,
		interval:   interval,
		log:        log,
	}
}

// Start runs the scan loop until ctx is cancelled. An immediate first scan
// picks up anything that came due while the service was down.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		s.scan(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.scan(ctx)
			}
		}
	}()
}

func (s *Scheduler) scan(ctx context.Context) {
	due, err := s.expenses.ListDue(ctx, time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("due expense scan failed")
		return
	}
	if len(due) == 0 {
		return
	}
	s.log.Info().Int("count", len(due)).Msg("dispatching due standard expenses")
	s.dispatcher.EnqueueBatch(due)
}

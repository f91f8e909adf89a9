package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type stubExpenseRepo struct {
	due     []domain.StandardExpense
	listErr error
}

func (r *stubExpenseRepo) GetAll(context.Context, int) ([]domain.StandardExpense, error) {
	return nil, nil
}

func (r *stubExpenseRepo) GetByID(context.Context, int) (*domain.StandardExpense, error) {
	return nil, domain.ErrStandardExpenseNotFound
}

func (r *stubExpenseRepo) Create(_ context.Context, e *domain.StandardExpense) (*domain.StandardExpense, error) {
	return e, nil
}

func (r *stubExpenseRepo) Update(context.Context, *domain.StandardExpense) error { return nil }

func (r *stubExpenseRepo) Delete(context.Context, int) error { return nil }

func (r *stubExpenseRepo) ListDue(context.Context, time.Time) ([]domain.StandardExpense, error) {
	return r.due, r.listErr
}

func (r *stubExpenseRepo) AdvanceNextDate(context.Context, int, time.Time) error { return nil }

func TestSchedulerDispatchesDueExpensesOnStartup(t *testing.T) {
	repo := &stubExpenseRepo{due: []domain.StandardExpense{
		{ExpenseID: 1, WalletID: 10},
		{ExpenseID: 2, WalletID: 11},
	}}
	posting := newRecordingPostingService(2)
	d := NewDispatcher(2, posting, zerolog.Nop())
	s := NewScheduler(repo, d, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)
	s.Start(ctx)

	posted := posting.wait(t)
	if len(posted) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(posted))
	}
}

func TestSchedulerSurvivesScanFailure(t *testing.T) {
	repo := &stubExpenseRepo{listErr: errors.New("connection reset")}
	d := NewDispatcher(1, newRecordingPostingService(1), zerolog.Nop())
	s := NewScheduler(repo, d, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Must not panic or enqueue anything.
	s.Start(ctx)
	s.scan(ctx)
}

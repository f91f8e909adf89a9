package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type recordingPostingService struct {
	mu     sync.Mutex
	posted []domain.StandardExpense
	done   chan struct{}
	want   int
}

func newRecordingPostingService(want int) *recordingPostingService {
	return &recordingPostingService{done: make(chan struct{}), want: want}
}

func (s *recordingPostingService) Post(_ context.Context, expense domain.StandardExpense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posted = append(s.posted, expense)
	if len(s.posted) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingPostingService) wait(t *testing.T) []domain.StandardExpense {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d postings", s.want)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.StandardExpense(nil), s.posted...)
}

func TestDispatcherShardIndexIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, nil, zerolog.Nop())

	for walletID := 1; walletID <= 100; walletID++ {
		first := d.shardIndex(walletID)
		if first < 0 || first >= 4 {
			t.Fatalf("wallet %d: shard %d out of range", walletID, first)
		}
		if again := d.shardIndex(walletID); again != first {
			t.Fatalf("wallet %d: shard changed between calls, %d then %d", walletID, first, again)
		}
	}
}

func TestDispatcherDeliversAllExpenses(t *testing.T) {
	posting := newRecordingPostingService(6)
	d := NewDispatcher(3, posting, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	var batch []domain.StandardExpense
	for i := 1; i <= 6; i++ {
		batch = append(batch, domain.StandardExpense{ExpenseID: i, WalletID: i % 3})
	}
	d.EnqueueBatch(batch)

	posted := posting.wait(t)
	seen := make(map[int]bool, len(posted))
	for _, e := range posted {
		seen[e.ExpenseID] = true
	}
	for i := 1; i <= 6; i++ {
		if !seen[i] {
			t.Errorf("expense %d never posted", i)
		}
	}
}

func TestDispatcherPreservesPerWalletOrder(t *testing.T) {
	posting := newRecordingPostingService(5)
	d := NewDispatcher(4, posting, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// All five target the same wallet, so one worker handles them in order.
	for i := 1; i <= 5; i++ {
		d.Enqueue(domain.StandardExpense{ExpenseID: i, WalletID: 7})
	}

	posted := posting.wait(t)
	for i, e := range posted {
		if e.ExpenseID != i+1 {
			t.Fatalf("posting %d: got expense %d, want %d", i, e.ExpenseID, i+1)
		}
	}
}

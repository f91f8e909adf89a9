package queue

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/api/metrics"
	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes due standard expenses to a fixed set of workers using
// consistent hashing on the wallet ID, so postings against the same wallet
// never race each other.
type Dispatcher struct {
	workers []chan domain.StandardExpense
	posting ports.PostingService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, posting ports.PostingService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.StandardExpense, numWorkers),
		posting: posting,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.StandardExpense, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an expense to the worker responsible for its wallet.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(expense domain.StandardExpense) {
	idx := d.shardIndex(expense.WalletID)
	d.workers[idx] <- expense
	metrics.PostingQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// EnqueueBatch enqueues multiple expenses preserving per-wallet ordering.
func (d *Dispatcher) EnqueueBatch(expenses []domain.StandardExpense) {
	for _, e := range expenses {
		d.Enqueue(e)
	}
}

// shardIndex maps a wallet ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(walletID int) int {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(walletID))
	h := fnv.New32a()
	_, _ = h.Write(buf[:])
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.StandardExpense) {
	for {
		select {
		case <-ctx.Done():
			return
		case expense, ok := <-ch:
			if !ok {
				return
			}
			metrics.PostingQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.posting.Post(ctx, expense); err != nil {
				metrics.PostingsErrorsTotal.WithLabelValues("post_failed").Inc()
				d.log.Error().Err(err).
					Int("expense_id", expense.ExpenseID).
					Int("worker_id", id).
					Msg("expense posting failed")
				continue
			}
			metrics.PostingsProcessedTotal.WithLabelValues(expense.Frequency).Inc()
		}
	}
}

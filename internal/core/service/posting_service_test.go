package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

type stubExpenseRepo struct {
	advanced map[int]time.Time
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
func (r *stubExpenseRepo) Delete(context.Context, int) error                     { return nil }
func (r *stubExpenseRepo) ListDue(context.Context, time.Time) ([]domain.StandardExpense, error) {
	return nil, nil
}
func (r *stubExpenseRepo) AdvanceNextDate(_ context.Context, expenseID int, nextDate time.Time) error {
	if r.advanced == nil {
		r.advanced = make(map[int]time.Time)
	}
	r.advanced[expenseID] = nextDate
	return nil
}

type stubTransactionRepo struct {
	created   []domain.Transaction
	createErr error
}

func (r *stubTransactionRepo) GetAll(context.Context, int) ([]domain.Transaction, error) {
	return nil, nil
}
func (r *stubTransactionRepo) GetByID(context.Context, int) (*domain.Transaction, error) {
	return nil, domain.ErrTransactionNotFound
}
func (r *stubTransactionRepo) Create(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	tx.TransactionID = len(r.created) + 1
	r.created = append(r.created, *tx)
	return tx, nil
}
func (r *stubTransactionRepo) Update(context.Context, *domain.Transaction) error { return nil }
func (r *stubTransactionRepo) Delete(context.Context, int) error                 { return nil }

type stubWalletRepo struct {
	wallets map[int]*domain.Wallet
}

func (r *stubWalletRepo) GetAll(context.Context, int) ([]domain.Wallet, error) { return nil, nil }
func (r *stubWalletRepo) GetByID(_ context.Context, walletID int) (*domain.Wallet, error) {
	w, ok := r.wallets[walletID]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	return w, nil
}
func (r *stubWalletRepo) Create(_ context.Context, w *domain.Wallet) (*domain.Wallet, error) {
	return w, nil
}
func (r *stubWalletRepo) Update(context.Context, *domain.Wallet) error { return nil }
func (r *stubWalletRepo) Delete(context.Context, int) error            { return nil }

type stubDedup struct {
	posted   map[string]bool
	checkErr error
}

func dedupKey(expenseID int, due time.Time) string {
	return fmt.Sprintf("%d@%s", expenseID, due.Format("2006-01-02"))
}

func (d *stubDedup) IsPosted(_ context.Context, expenseID int, due time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.posted[dedupKey(expenseID, due)], nil
}

func (d *stubDedup) MarkPosted(_ context.Context, expenseID int, due time.Time) error {
	if d.posted == nil {
		d.posted = make(map[string]bool)
	}
	d.posted[dedupKey(expenseID, due)] = true
	return nil
}

func dueExpense() domain.StandardExpense {
	return domain.StandardExpense{
		ExpenseID:   1,
		WalletID:    7,
		CategoryID:  3,
		Description: "gym membership",
		Amount:      29.99,
		Frequency:   domain.FrequencyMonthly,
		NextDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newPostingFixture() (*stubExpenseRepo, *stubTransactionRepo, *stubWalletRepo, *stubDedup, *postingService) {
	expenses := &stubExpenseRepo{}
	transactions := &stubTransactionRepo{}
	wallets := &stubWalletRepo{wallets: map[int]*domain.Wallet{
		7: {WalletID: 7, UserID: 1, CurrencyID: 2},
	}}
	dedup := &stubDedup{}
	svc := NewPostingService(expenses, transactions, wallets, dedup, zerolog.Nop()).(*postingService)
	return expenses, transactions, wallets, dedup, svc
}

func TestPostingService_Post_CreatesCardTransaction(t *testing.T) {
	expenses, transactions, _, _, svc := newPostingFixture()
	expense := dueExpense()

	if err := svc.Post(context.Background(), expense); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}

	if len(transactions.created) != 1 {
		t.Fatalf("expected one transaction, got %d", len(transactions.created))
	}
	tx := transactions.created[0]
	if tx.WalletID != 7 || tx.CategoryID != 3 {
		t.Fatalf("unexpected transaction target: %+v", tx)
	}
	if tx.CurrencyID != 2 {
		t.Fatalf("transaction must carry the wallet's currency, got %d", tx.CurrencyID)
	}
	if tx.TransactionType != domain.TransactionTypeCard {
		t.Fatalf("postings must be card transactions, got %q", tx.TransactionType)
	}
	if !tx.TransactionDate.Equal(expense.NextDate) {
		t.Fatalf("transaction dated %v, want due date %v", tx.TransactionDate, expense.NextDate)
	}
	if tx.Amount != 29.99 {
		t.Fatalf("unexpected amount: %v", tx.Amount)
	}

	next, ok := expenses.advanced[1]
	if !ok {
		t.Fatalf("next date not advanced")
	}
	want := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("monthly expense advanced to %v, want %v", next, want)
	}
}

func TestPostingService_Post_SkipsAlreadyPosted(t *testing.T) {
	_, transactions, _, dedup, svc := newPostingFixture()
	expense := dueExpense()
	_ = dedup.MarkPosted(context.Background(), expense.ExpenseID, expense.NextDate)

	if err := svc.Post(context.Background(), expense); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(transactions.created) != 0 {
		t.Fatalf("duplicate posting created a transaction")
	}
}

func TestPostingService_Post_DedupCheckFailureDoesNotBlock(t *testing.T) {
	_, transactions, _, dedup, svc := newPostingFixture()
	dedup.checkErr = errors.New("redis down")

	if err := svc.Post(context.Background(), dueExpense()); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(transactions.created) != 1 {
		t.Fatalf("posting must proceed when the dedup store is unavailable")
	}
}

func TestPostingService_Post_UnknownWallet(t *testing.T) {
	_, transactions, wallets, _, svc := newPostingFixture()
	delete(wallets.wallets, 7)

	if err := svc.Post(context.Background(), dueExpense()); !errors.Is(err, domain.ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}
	if len(transactions.created) != 0 {
		t.Fatalf("no transaction expected for unknown wallet")
	}
}

func TestPostingService_Post_CreateFailurePropagates(t *testing.T) {
	expenses, transactions, _, _, svc := newPostingFixture()
	transactions.createErr = domain.ErrOperationFailed

	if err := svc.Post(context.Background(), dueExpense()); !errors.Is(err, domain.ErrOperationFailed) {
		t.Fatalf("expected ErrOperationFailed, got %v", err)
	}
	if len(expenses.advanced) != 0 {
		t.Fatalf("schedule must not advance when the write fails")
	}
}

func TestStandardExpense_NextOccurrence(t *testing.T) {
	from := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		frequency string
		want      time.Time
	}{
		{domain.FrequencyDaily, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{domain.FrequencyWeekly, time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)},
		{domain.FrequencyMonthly, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
		{domain.FrequencyYearly, time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		e := domain.StandardExpense{Frequency: tc.frequency}
		if got := e.NextOccurrence(from); !got.Equal(tc.want) {
			t.Fatalf("%s from %v: got %v, want %v", tc.frequency, from, got, tc.want)
		}
	}
}

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

func validTransaction() domain.Transaction {
	return domain.Transaction{
		WalletID:        1,
		CategoryID:      2,
		CurrencyID:      3,
		TransactionDate: time.Now().UTC().AddDate(0, 0, -1),
		TransactionTime: "12:30:00",
		TransactionType: "cash",
		Amount:          9.95,
		Description:     "coffee",
	}
}

func TestTransactionService_Create_CanonicalizesType(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := NewTransactionService(repo, zerolog.Nop())

	created, err := svc.CreateTransaction(context.Background(), validTransaction())
	if err != nil {
		t.Fatalf("CreateTransaction returned error: %v", err)
	}
	if created.TransactionType != domain.TransactionTypeCash {
		t.Fatalf("expected canonical type Cash, got %q", created.TransactionType)
	}
}

func TestTransactionService_Create_CollectsViolations(t *testing.T) {
	svc := NewTransactionService(&stubTransactionRepo{}, zerolog.Nop())

	tx := domain.Transaction{
		TransactionType: "Cheque",
		Amount:          -1,
		Description:     strings.Repeat("x", 256),
		TransactionDate: time.Now().UTC().AddDate(0, 0, 2),
	}
	_, err := svc.CreateTransaction(context.Background(), tx)

	var list domain.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("expected ErrorList, got %v", err)
	}
	for _, want := range []domain.Error{
		domain.ErrTransactionInvalidWallet,
		domain.ErrTransactionInvalidCategory,
		domain.ErrTransactionInvalidCurrency,
		domain.ErrInvalidTransactionType,
		domain.ErrInvalidTransactionAmount,
		domain.ErrTransactionDescTooLong,
		domain.ErrTransactionFutureDate,
	} {
		if !errors.Is(list, want) {
			t.Fatalf("expected %v in %v", want, list)
		}
	}
}

func TestTransactionService_Create_TodayIsNotFuture(t *testing.T) {
	repo := &stubTransactionRepo{}
	svc := NewTransactionService(repo, zerolog.Nop())

	tx := validTransaction()
	tx.TransactionDate = time.Now().UTC()
	if _, err := svc.CreateTransaction(context.Background(), tx); err != nil {
		t.Fatalf("a transaction dated today must pass, got %v", err)
	}
}

func TestTransactionService_Update_RequiresID(t *testing.T) {
	svc := NewTransactionService(&stubTransactionRepo{}, zerolog.Nop())

	if err := svc.UpdateTransaction(context.Background(), validTransaction()); !errors.Is(err, domain.ErrInvalidTransactionID) {
		t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
	}
}

func TestTransactionService_GetAndDelete_ValidateIDs(t *testing.T) {
	svc := NewTransactionService(&stubTransactionRepo{}, zerolog.Nop())

	if _, err := svc.GetTransactions(context.Background(), 0); !errors.Is(err, domain.ErrTransactionInvalidWallet) {
		t.Fatalf("expected ErrTransactionInvalidWallet, got %v", err)
	}
	if _, err := svc.GetTransaction(context.Background(), 0); !errors.Is(err, domain.ErrInvalidTransactionID) {
		t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
	}
	if err := svc.DeleteTransaction(context.Background(), -1); !errors.Is(err, domain.ErrInvalidTransactionID) {
		t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
	}
}

func TestStandardExpenseService_Create_Validation(t *testing.T) {
	svc := NewStandardExpenseService(&stubExpenseRepo{}, zerolog.Nop())

	expense := domain.StandardExpense{
		WalletID:   1,
		CategoryID: 2,
		Reason:     strings.Repeat("x", 31),
		Amount:     10,
		Frequency:  "Fortnightly",
		NextDate:   time.Now().UTC().AddDate(0, 0, -2),
	}
	_, err := svc.CreateStandardExpense(context.Background(), expense)

	var list domain.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("expected ErrorList, got %v", err)
	}
	for _, want := range []domain.Error{
		domain.ErrInvalidFrequencyType,
		domain.ErrStandardExpenseReasonTooLong,
		domain.ErrStandardExpensePastDate,
	} {
		if !errors.Is(list, want) {
			t.Fatalf("expected %v in %v", want, list)
		}
	}
}

func TestStandardExpenseService_Create_CanonicalizesFrequency(t *testing.T) {
	svc := NewStandardExpenseService(&stubExpenseRepo{}, zerolog.Nop())

	expense := domain.StandardExpense{
		WalletID:   1,
		CategoryID: 2,
		Amount:     10,
		Frequency:  "monthly",
		NextDate:   time.Now().UTC().AddDate(0, 0, 1),
	}
	created, err := svc.CreateStandardExpense(context.Background(), expense)
	if err != nil {
		t.Fatalf("CreateStandardExpense returned error: %v", err)
	}
	if created.Frequency != domain.FrequencyMonthly {
		t.Fatalf("expected canonical frequency Monthly, got %q", created.Frequency)
	}
}

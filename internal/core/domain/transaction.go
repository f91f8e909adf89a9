package domain

import "time"

// Transaction types accepted by the validator (case-insensitive on input,
// stored canonically).
const (
	TransactionTypeCash = "Cash"
	TransactionTypeCard = "Card"
)

// Transaction is a single expense or payment recorded against a wallet.
// Date and time of the transaction are kept separately, as entered.
type Transaction struct {
	TransactionID   int       `json:"transaction_id"`
	WalletID        int       `json:"wallet_id"`
	CategoryID      int       `json:"category_id"`
	CurrencyID      int       `json:"currency_id"`
	TransactionDate time.Time `json:"transaction_date"`
	TransactionTime string    `json:"transaction_time"`
	TransactionType string    `json:"transaction_type"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description,omitempty"`
}

var (
	ErrInvalidTransactionID       = validation("Transaction.InvalidTransactionId", "Transaction ID must be greater than zero.")
	ErrTransactionInvalidWallet   = validation("Transaction.InvalidWalletId", "Wallet ID must be greater than zero.")
	ErrTransactionInvalidCategory = validation("Transaction.InvalidCategoryId", "Category ID must be greater than zero.")
	ErrTransactionInvalidCurrency = validation("Transaction.InvalidCurrencyId", "Currency ID must be greater than zero.")
	ErrInvalidTransactionType     = validation("Transaction.InvalidTransactionType", "Transaction type must be Cash or Card.")
	ErrInvalidTransactionAmount   = validation("Transaction.InvalidAmount", "Amount must be greater than zero.")
	ErrTransactionDescTooLong     = validation("Transaction.DescriptionTooLong", "Description cannot exceed 255 characters.")
	ErrTransactionFutureDate      = validation("Transaction.FutureDate", "Transaction date cannot be in the future.")
	ErrTransactionNotFound        = notFound("Transaction.NotFound", "Transaction with the specified ID was not found.")
)

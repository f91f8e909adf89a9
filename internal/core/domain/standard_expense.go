package domain

import "time"

// Recurrence frequencies accepted by the validator.
const (
	FrequencyDaily   = "Daily"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
	FrequencyYearly  = "Yearly"
)

// StandardExpense is a recurring expense posted automatically against a
// wallet each time nextDate comes due.
type StandardExpense struct {
	ExpenseID   int       `json:"expense_id"`
	WalletID    int       `json:"wallet_id"`
	CategoryID  int       `json:"category_id"`
	Reason      string    `json:"reason,omitempty"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Frequency   string    `json:"frequency"`
	NextDate    time.Time `json:"next_date"`
}

// NextOccurrence returns the due date following from, per the expense's
// frequency. Unknown frequencies fall back to monthly.
func (e StandardExpense) NextOccurrence(from time.Time) time.Time {
	switch e.Frequency {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

var (
	ErrInvalidStandardExpenseID       = validation("StandardExpense.InvalidStandardExpenseId", "Standard expense ID must be greater than zero.")
	ErrStandardExpenseInvalidWallet   = validation("StandardExpense.InvalidWalletId", "Wallet ID must be greater than zero.")
	ErrStandardExpenseInvalidCategory = validation("StandardExpense.InvalidCategoryId", "Category ID must be greater than zero.")
	ErrInvalidFrequencyType           = validation("StandardExpense.InvalidFrequencyType", "Frequency must be Daily, Weekly, Monthly, or Yearly.")
	ErrStandardExpenseReasonTooLong   = validation("StandardExpense.ReasonTooLong", "Reason cannot exceed 30 characters.")
	ErrStandardExpenseDescTooLong     = validation("StandardExpense.DescriptionTooLong", "Description cannot exceed 255 characters.")
	ErrInvalidStandardExpenseAmount   = validation("StandardExpense.InvalidAmount", "Amount must be greater than zero.")
	ErrStandardExpensePastDate        = validation("StandardExpense.PastDate", "Next date cannot be in the past.")
	ErrStandardExpenseNotFound        = notFound("StandardExpense.NotFound", "Standard expense with the specified ID was not found.")
)

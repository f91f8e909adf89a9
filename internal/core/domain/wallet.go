package domain

// Wallet groups a user's funds in a single currency.
type Wallet struct {
	WalletID   int     `json:"wallet_id"`
	UserID     int     `json:"user_id"`
	CurrencyID int     `json:"currency_id"`
	Balance    float64 `json:"balance"`
	Purpose    string  `json:"purpose,omitempty"`
}

var (
	ErrInvalidWalletID       = validation("Wallet.InvalidWalletId", "Wallet ID must be greater than zero.")
	ErrWalletInvalidUser     = validation("Wallet.InvalidUserId", "User ID must be greater than zero.")
	ErrWalletInvalidCurrency = validation("Wallet.InvalidCurrencyId", "Currency ID must be greater than zero.")
	ErrWalletPurposeTooLong  = validation("Wallet.PurposeTooLong", "Purpose cannot exceed 100 characters.")
	ErrWalletNotFound        = notFound("Wallet.NotFound", "Wallet with the specified ID was not found.")
	ErrWalletInUse           = conflict("Wallet.Conflict.InUse", "Cannot delete wallet as it has associated transactions.")
)

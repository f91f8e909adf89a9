package domain

// Currency is a reference entity; rates are expressed against the euro.
type Currency struct {
	CurrencyID   int     `json:"currency_id"`
	CurrencyCode string  `json:"currency_code"`
	CurrencyName string  `json:"currency_name"`
	RateToEuro   float64 `json:"rate_to_euro"`
}

var (
	ErrInvalidCurrencyID     = validation("Currency.InvalidCurrencyId", "Currency ID must be greater than zero.")
	ErrCurrencyCodeRequired  = validation("Currency.CodeRequired", "Currency code is required.")
	ErrInvalidCurrencyCode   = validation("Currency.InvalidCode", "Currency code must be exactly 3 letters.")
	ErrCurrencyNameRequired  = validation("Currency.NameRequired", "Currency name is required.")
	ErrCurrencyNameTooLong   = validation("Currency.NameTooLong", "Currency name cannot exceed 50 characters.")
	ErrInvalidCurrencyRate   = validation("Currency.InvalidRate", "Rate to euro must be greater than zero.")
	ErrCurrencyNotFound      = notFound("Currency.NotFound", "Currency with the specified ID was not found.")
	ErrCurrencyInUse         = conflict("Currency.Conflict.InUse", "Cannot delete currency as it is referenced by wallets or transactions.")
	ErrDuplicateCurrencyCode = conflict("Currency.Database.DuplicateCode", "A currency with this code already exists.")
)

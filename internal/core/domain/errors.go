package domain

import "strings"

// ErrorKind classifies an error for the HTTP boundary, which maps each kind
// to a status code (Validation→400, Unauthorized→401, NotFound→404,
// Conflict→409, Failure→500).
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthorized
	KindConflict
	KindNotFound
	KindFailure
)

// Error is a coded domain error. Values are comparable; the catalogue below
// is the single source of truth for codes and descriptions.
type Error struct {
	Code        string
	Description string
	Kind        ErrorKind
}

func (e Error) Error() string {
	return e.Code + ": " + e.Description
}

// Is matches catalogue values by code so errors.Is works across wrapping.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

// ErrorList aggregates multiple violations from a single call. Validators
// collect every violation rather than short-circuiting on the first.
type ErrorList []Error

func (el ErrorList) Error() string {
	msgs := make([]string, len(el))
	for i, e := range el {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// First returns the leading error; callers must only invoke it on a
// non-empty list (validators never return an empty one).
func (el ErrorList) First() Error {
	return el[0]
}

// Unwrap exposes the violations to errors.Is and errors.As.
func (el ErrorList) Unwrap() []error {
	errs := make([]error, len(el))
	for i, e := range el {
		errs[i] = e
	}
	return errs
}

func validation(code, desc string) Error {
	return Error{Code: code, Description: desc, Kind: KindValidation}
}

func conflict(code, desc string) Error {
	return Error{Code: code, Description: desc, Kind: KindConflict}
}

func notFound(code, desc string) Error {
	return Error{Code: code, Description: desc, Kind: KindNotFound}
}

func failure(code, desc string) Error {
	return Error{Code: code, Description: desc, Kind: KindFailure}
}

// Account errors.
var (
	ErrInvalidUserID       = validation("Account.InvalidUserId", "User ID must be greater than zero.")
	ErrUsernameRequired    = validation("Account.UsernameRequired", "Username is required.")
	ErrUsernameTooLong     = validation("Account.UsernameTooLong", "Username cannot exceed 50 characters.")
	ErrEmailRequired       = validation("Account.EmailRequired", "Email is required.")
	ErrEmailTooLong        = validation("Account.EmailTooLong", "Email cannot exceed 150 characters.")
	ErrInvalidEmail        = validation("Account.InvalidEmail", "Invalid email format.")
	ErrPasswordRequired    = validation("Account.PasswordRequired", "Password is required.")
	ErrPasswordTooLong     = validation("Account.PasswordTooLong", "Password cannot exceed 72 bytes.")
	ErrWeakPassword        = validation("Account.WeakPassword", "Password must be at least 8 characters long and contain uppercase, lowercase, number, and special character.")
	ErrRealNameRequired    = validation("Account.RealNameRequired", "Real name is required.")
	ErrRealNameTooLong     = validation("Account.RealNameTooLong", "Real name cannot exceed 100 characters.")
	ErrRealSurnameRequired = validation("Account.RealSurnameRequired", "Real surname is required.")
	ErrRealSurnameTooLong  = validation("Account.RealSurnameTooLong", "Real surname cannot exceed 100 characters.")
	ErrInvalidPhoneNumber  = validation("Account.InvalidPhoneNumber", "Invalid phone number format.")
	ErrPhoneNumberTooLong  = validation("Account.PhoneNumberTooLong", "Phone number cannot exceed 30 characters.")

	ErrInvalidCredentials = validation("Account.InvalidCredentials", "Invalid email or password.")
	ErrAccountInactive    = failure("Account.AccountInactive", "Account is inactive. Please contact support.")
	ErrInvalidRefreshToken = Error{
		Code:        "Account.InvalidRefreshToken",
		Description: "Invalid or expired refresh token.",
		Kind:        KindUnauthorized,
	}

	ErrAccountNotFound   = notFound("Account.NotFound", "Account with the specified ID was not found.")
	ErrDuplicateEmail    = conflict("Account.Database.DuplicateEmail", "An account with this email already exists.")
	ErrDuplicateUsername = conflict("Account.Database.DuplicateUsername", "An account with this username already exists.")
	ErrAccountInUse      = conflict("Account.Conflict.InUse", "Cannot delete account as it has associated data.")
)

// Database errors. Classified at the store boundary and passed through the
// service layer unchanged.
var (
	ErrConnectionFailed     = failure("Database.ConnectionFailed", "Failed to connect to the database.")
	ErrOperationFailed      = failure("Database.OperationFailed", "Database operation failed unexpectedly.")
	ErrDatabaseTimeout      = failure("Database.Timeout", "Database operation timed out.")
	ErrDuplicateTransaction = conflict("Database.DuplicateTransaction", "A duplicate with these details already exists.")
)

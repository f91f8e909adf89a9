package service

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

const (
	maxUsernameLength    = 50
	maxEmailLength       = 150
	maxRealNameLength    = 100
	maxPhoneNumberLength = 30
	minPhoneNumberLength = 10
	minPasswordLength    = 8

	// bcrypt hashes at most 72 bytes of input; anything longer must be
	// rejected here rather than surface as a hashing failure.
	maxPasswordBytes = 72
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// validateRegistration checks every registration field and collects all
// violations, at most one per field.
func validateRegistration(in ports.RegisterInput) domain.ErrorList {
	var errs domain.ErrorList

	switch {
	case strings.TrimSpace(in.Username) == "":
		errs = append(errs, domain.ErrUsernameRequired)
	case len(in.Username) > maxUsernameLength:
		errs = append(errs, domain.ErrUsernameTooLong)
	}

	switch {
	case strings.TrimSpace(in.Email) == "":
		errs = append(errs, domain.ErrEmailRequired)
	case len(in.Email) > maxEmailLength:
		errs = append(errs, domain.ErrEmailTooLong)
	case !isValidEmail(in.Email):
		errs = append(errs, domain.ErrInvalidEmail)
	}

	switch {
	case in.Password == "":
		errs = append(errs, domain.ErrPasswordRequired)
	case len(in.Password) > maxPasswordBytes:
		errs = append(errs, domain.ErrPasswordTooLong)
	case !isStrongPassword(in.Password):
		errs = append(errs, domain.ErrWeakPassword)
	}

	switch {
	case strings.TrimSpace(in.RealName) == "":
		errs = append(errs, domain.ErrRealNameRequired)
	case len(in.RealName) > maxRealNameLength:
		errs = append(errs, domain.ErrRealNameTooLong)
	}

	switch {
	case strings.TrimSpace(in.RealSurname) == "":
		errs = append(errs, domain.ErrRealSurnameRequired)
	case len(in.RealSurname) > maxRealNameLength:
		errs = append(errs, domain.ErrRealSurnameTooLong)
	}

	if strings.TrimSpace(in.PhoneNumber) != "" {
		switch {
		case len(in.PhoneNumber) > maxPhoneNumberLength:
			errs = append(errs, domain.ErrPhoneNumberTooLong)
		case !isValidPhoneNumber(in.PhoneNumber):
			errs = append(errs, domain.ErrInvalidPhoneNumber)
		}
	}

	return errs
}

// validateUserID is the positive-identifier check shared by update-style
// operations.
func validateUserID(userID int) domain.ErrorList {
	if userID <= 0 {
		return domain.ErrorList{domain.ErrInvalidUserID}
	}
	return nil
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isStrongPassword requires length >= 8 plus one uppercase, one lowercase,
// one digit, and one non-alphanumeric rune, all simultaneously.
func isStrongPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

func isValidPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone) && len(phone) >= minPhoneNumberLength
}

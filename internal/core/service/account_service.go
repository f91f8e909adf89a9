package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

// AccountService covers the generic account CRUD surface. Registration and
// credential changes live in AuthService.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func validateAccountForUpdate(a domain.Account) domain.ErrorList {
	errs := validateUserID(a.UserID)
	switch {
	case strings.TrimSpace(a.Username) == "":
		errs = append(errs, domain.ErrUsernameRequired)
	case len(a.Username) > maxUsernameLength:
		errs = append(errs, domain.ErrUsernameTooLong)
	}
	switch {
	case strings.TrimSpace(a.Email) == "":
		errs = append(errs, domain.ErrEmailRequired)
	case len(a.Email) > maxEmailLength:
		errs = append(errs, domain.ErrEmailTooLong)
	case !isValidEmail(a.Email):
		errs = append(errs, domain.ErrInvalidEmail)
	}
	return errs
}

func (s *AccountService) GetAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.repo.List(ctx)
}

func (s *AccountService) GetAccount(ctx context.Context, userID int) (*domain.Account, error) {
	if errs := validateUserID(userID); len(errs) > 0 {
		return nil, errs
	}
	return s.repo.GetByID(ctx, userID)
}

// UpdateAccount changes profile fields only; the stored password hash and
// refresh-token state are preserved.
func (s *AccountService) UpdateAccount(ctx context.Context, account domain.Account) error {
	if errs := validateAccountForUpdate(account); len(errs) > 0 {
		return errs
	}

	existing, err := s.repo.GetByID(ctx, account.UserID)
	if err != nil {
		return err
	}

	existing.Username = account.Username
	existing.Email = strings.ToLower(account.Email)
	existing.RealName = account.RealName
	existing.RealSurname = account.RealSurname
	existing.PhoneNumber = account.PhoneNumber
	existing.IsActive = account.IsActive

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Int("user_id", account.UserID).Msg("failed to update account")
		return err
	}
	return nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, userID int) error {
	if errs := validateUserID(userID); len(errs) > 0 {
		return errs
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		s.logger.Error().Err(err).Int("user_id", userID).Msg("failed to delete account")
		return err
	}
	s.logger.Info().Int("user_id", userID).Msg("account deleted")
	return nil
}

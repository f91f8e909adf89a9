package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

const maxWalletPurposeLength = 100

type WalletService struct {
	repo   ports.WalletRepository
	logger zerolog.Logger
}

func NewWalletService(repo ports.WalletRepository, logger zerolog.Logger) *WalletService {
	return &WalletService{repo: repo, logger: logger}
}

func validateWalletForCreate(w domain.Wallet) domain.ErrorList {
	var errs domain.ErrorList
	if w.UserID <= 0 {
		errs = append(errs, domain.ErrWalletInvalidUser)
	}
	if w.CurrencyID <= 0 {
		errs = append(errs, domain.ErrWalletInvalidCurrency)
	}
	if len(w.Purpose) > maxWalletPurposeLength {
		errs = append(errs, domain.ErrWalletPurposeTooLong)
	}
	return errs
}

func validateWalletForUpdate(w domain.Wallet) domain.ErrorList {
	var errs domain.ErrorList
	if w.WalletID <= 0 {
		errs = append(errs, domain.ErrInvalidWalletID)
	}
	return append(errs, validateWalletForCreate(w)...)
}

func (s *WalletService) GetWallets(ctx context.Context, userID int) ([]domain.Wallet, error) {
	if userID <= 0 {
		return nil, domain.ErrorList{domain.ErrWalletInvalidUser}
	}
	return s.repo.GetAll(ctx, userID)
}

func (s *WalletService) GetWallet(ctx context.Context, walletID int) (*domain.Wallet, error) {
	if walletID <= 0 {
		return nil, domain.ErrorList{domain.ErrInvalidWalletID}
	}
	return s.repo.GetByID(ctx, walletID)
}

func (s *WalletService) CreateWallet(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error) {
	if errs := validateWalletForCreate(wallet); len(errs) > 0 {
		return nil, errs
	}
	created, err := s.repo.Create(ctx, &wallet)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", wallet.UserID).Msg("failed to create wallet")
		return nil, err
	}
	s.logger.Info().Int("wallet_id", created.WalletID).Int("user_id", created.UserID).Msg("wallet created")
	return created, nil
}

func (s *WalletService) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	if errs := validateWalletForUpdate(wallet); len(errs) > 0 {
		return errs
	}
	return s.repo.Update(ctx, &wallet)
}

func (s *WalletService) DeleteWallet(ctx context.Context, walletID int) error {
	if walletID <= 0 {
		return domain.ErrorList{domain.ErrInvalidWalletID}
	}
	return s.repo.Delete(ctx, walletID)
}

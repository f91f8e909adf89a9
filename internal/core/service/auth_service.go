package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

// AuthService orchestrates registration, login, refresh-token rotation, and
// revocation against the account store.
type AuthService struct {
	repo       ports.AccountRepository
	hasher     ports.PasswordHasher
	tokens     ports.TokenGenerator
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(
	repo ports.AccountRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenGenerator,
	accessTTL, refreshTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		repo:       repo,
		hasher:     hasher,
		tokens:     tokens,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Register creates an account and immediately issues a token pair. Field
// validation runs before any store access; the store's uniqueness
// constraint remains the authority when the pre-checks race.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
	s.logger.Info().Str("email", in.Email).Str("username", in.Username).Msg("registration attempt")

	if errs := validateRegistration(in); len(errs) > 0 {
		s.logger.Warn().Str("email", in.Email).Msg("registration validation failed")
		return nil, errs
	}

	email := strings.ToLower(in.Email)

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn().Str("email", email).Msg("registration failed: email already exists")
		return nil, domain.ErrDuplicateEmail
	}

	exists, err = s.repo.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn().Str("username", in.Username).Msg("registration failed: username already exists")
		return nil, domain.ErrDuplicateUsername
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     in.Username,
		Email:        email,
		PasswordHash: hash,
		RealName:     in.RealName,
		RealSurname:  in.RealSurname,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	if strings.TrimSpace(in.PhoneNumber) != "" {
		phone := in.PhoneNumber
		account.PhoneNumber = &phone
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create account")
		return nil, err
	}

	accessToken, err := s.tokens.GenerateAccessToken(created)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	refreshExpiry := now.Add(s.refreshTTL)
	created.RefreshToken = &refreshToken
	created.RefreshTokenExpiry = &refreshExpiry

	// Registration is not rolled back if this persist fails; the error is
	// surfaced and the caller may retry login.
	if err := s.repo.Update(ctx, created); err != nil {
		s.logger.Error().Err(err).Int("user_id", created.UserID).Msg("failed to save refresh token")
		return nil, err
	}

	s.logger.Info().Int("user_id", created.UserID).Msg("account registered")

	return s.result(created, accessToken, refreshToken, now.Add(s.accessTTL), refreshExpiry), nil
}

// Login verifies credentials and issues a fresh token pair. The same
// generic InvalidCredentials error covers unknown emails and wrong
// passwords so callers cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	s.logger.Info().Str("email", email).Msg("login attempt")

	if strings.TrimSpace(email) == "" {
		return nil, domain.ErrorList{domain.ErrEmailRequired}
	}
	if strings.TrimSpace(password) == "" {
		return nil, domain.ErrorList{domain.ErrPasswordRequired}
	}

	account, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.logger.Warn().Str("email", email).Msg("login failed: account not found")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.IsActive {
		s.logger.Warn().Int("user_id", account.UserID).Msg("login failed: account inactive")
		return nil, domain.ErrAccountInactive
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		s.logger.Warn().Int("user_id", account.UserID).Msg("login failed: invalid password")
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(account)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	refreshExpiry := now.Add(s.refreshTTL)
	account.LastLoginAt = &now
	account.RefreshToken = &refreshToken
	account.RefreshTokenExpiry = &refreshExpiry

	// The user is already authenticated and the tokens are valid; a failed
	// bookkeeping update is logged but does not fail the login.
	if err := s.repo.Update(ctx, account); err != nil {
		s.logger.Error().Err(err).Int("user_id", account.UserID).Msg("failed to update login info")
	}

	s.logger.Info().Int("user_id", account.UserID).Msg("account logged in")

	return s.result(account, accessToken, refreshToken, now.Add(s.accessTTL), refreshExpiry), nil
}

// RefreshToken exchanges a live refresh token for a new pair, rotating the
// stored token. Absent, expired, and superseded tokens all fail with the
// same InvalidRefreshToken error.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	s.logger.Info().Msg("refresh token attempt")

	if strings.TrimSpace(refreshToken) == "" {
		return nil, domain.ErrInvalidRefreshToken
	}

	account, err := s.repo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.logger.Warn().Msg("refresh failed: unknown token")
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, err
	}

	// An expiry equal to now is already expired.
	if account.RefreshTokenExpiry == nil || !account.RefreshTokenExpiry.After(time.Now().UTC()) {
		s.logger.Warn().Int("user_id", account.UserID).Msg("refresh failed: token expired")
		return nil, domain.ErrInvalidRefreshToken
	}

	if !account.IsActive {
		s.logger.Warn().Int("user_id", account.UserID).Msg("refresh failed: account inactive")
		return nil, domain.ErrAccountInactive
	}

	accessToken, err := s.tokens.GenerateAccessToken(account)
	if err != nil {
		return nil, err
	}
	newRefreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	refreshExpiry := now.Add(s.refreshTTL)

	// Unlike login, a refresh that cannot be durably recorded must not hand
	// out tokens the store doesn't know about. The rotation is a
	// compare-and-swap on the presented token: losing a concurrent rotation
	// race reads as an invalid token.
	if err := s.repo.RotateRefreshToken(ctx, account.UserID, refreshToken, newRefreshToken, refreshExpiry, now); err != nil {
		s.logger.Error().Err(err).Int("user_id", account.UserID).Msg("failed to rotate refresh token")
		return nil, err
	}

	s.logger.Info().Int("user_id", account.UserID).Msg("refresh token rotated")

	return s.result(account, accessToken, newRefreshToken, now.Add(s.accessTTL), refreshExpiry), nil
}

// RevokeToken clears the account's refresh token. Revoking an account that
// holds no token is a no-op success.
func (s *AuthService) RevokeToken(ctx context.Context, userID int) error {
	s.logger.Info().Int("user_id", userID).Msg("revoking refresh token")

	account, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	account.RefreshToken = nil
	account.RefreshTokenExpiry = nil

	if err := s.repo.Update(ctx, account); err != nil {
		s.logger.Error().Err(err).Int("user_id", userID).Msg("failed to revoke token")
		return err
	}

	s.logger.Info().Int("user_id", userID).Msg("refresh token revoked")
	return nil
}

func (s *AuthService) result(account *domain.Account, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Time) *domain.AuthResult {
	return &domain.AuthResult{
		UserID:             account.UserID,
		Username:           account.Username,
		Email:              account.Email,
		RealName:           account.RealName,
		RealSurname:        account.RealSurname,
		AccessToken:        accessToken,
		RefreshToken:       refreshToken,
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: refreshExpiry,
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	refreshFn  func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	revokeFn   func(ctx context.Context, userID int) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	return s.refreshFn(ctx, refreshToken)
}

func (s *stubAuthService) RevokeToken(ctx context.Context, userID int) error {
	return s.revokeFn(ctx, userID)
}

type stubAccountService struct {
	getFn func(ctx context.Context, userID int) (*domain.Account, error)
}

func (s *stubAccountService) GetAccounts(context.Context) ([]domain.Account, error) { return nil, nil }
func (s *stubAccountService) GetAccount(ctx context.Context, userID int) (*domain.Account, error) {
	return s.getFn(ctx, userID)
}
func (s *stubAccountService) UpdateAccount(context.Context, domain.Account) error { return nil }
func (s *stubAccountService) DeleteAccount(context.Context, int) error            { return nil }

func sampleResult() *domain.AuthResult {
	return &domain.AuthResult{
		UserID:             1,
		Username:           "alice",
		Email:              "alice@example.com",
		RealName:           "Alice",
		RealSurname:        "Doe",
		AccessToken:        "access123",
		RefreshToken:       "refresh123",
		AccessTokenExpiry:  time.Now().UTC().Add(time.Hour),
		RefreshTokenExpiry: time.Now().UTC().Add(7 * 24 * time.Hour),
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
			if in.Username != "alice" || in.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return sampleResult(), nil
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	body := strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"Str0ng!pass","real_name":"Alice","real_surname":"Doe"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "access123" || resp["refresh_token"] != "refresh123" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
	if resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_ServiceErrorPassesThrough(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.AuthResult, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"username":"bob"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Domain errors flow to the central error handler untouched.
	if err := handler.Register(c); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*domain.AuthResult, error) {
			if email != "alice@example.com" || password != "Str0ng!pass" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return sampleResult(), nil
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	body := strings.NewReader(`{"email":"alice@example.com","password":"Str0ng!pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		refreshFn: func(_ context.Context, refreshToken string) (*domain.AuthResult, error) {
			if refreshToken != "refresh123" {
				t.Fatalf("unexpected token: %s", refreshToken)
			}
			result := sampleResult()
			result.RefreshToken = "rotated456"
			return result, nil
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refresh_token":"refresh123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["refresh_token"] != "rotated456" {
		t.Fatalf("expected rotated token in response, got %+v", resp)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := echo.New()
	revoked := 0
	stub := &stubAuthService{
		revokeFn: func(_ context.Context, userID int) error {
			revoked = userID
			return nil
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 42)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if revoked != 42 {
		t.Fatalf("expected revoke for user 42, got %d", revoked)
	}
}

func TestAuthHandler_Logout_MissingClaims(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		revokeFn: func(context.Context, int) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub, &stubAccountService{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Logout(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	accounts := &stubAccountService{
		getFn: func(_ context.Context, userID int) (*domain.Account, error) {
			if userID != 42 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return &domain.Account{UserID: 42, Username: "alice", PasswordHash: "secret-hash"}, nil
		},
	}
	handler := NewAuthHandler(&stubAuthService{}, accounts)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", 42)

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("password hash leaked in response")
	}
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, resp
}

func TestErrorHandler_KindToStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"validation", domain.ErrInvalidCredentials, http.StatusBadRequest, "Account.InvalidCredentials"},
		{"unauthorized", domain.ErrInvalidRefreshToken, http.StatusUnauthorized, "Account.InvalidRefreshToken"},
		{"not found", domain.ErrAccountNotFound, http.StatusNotFound, "Account.NotFound"},
		{"conflict", domain.ErrDuplicateEmail, http.StatusConflict, "Account.Database.DuplicateEmail"},
		{"failure", domain.ErrOperationFailed, http.StatusInternalServerError, "Database.OperationFailed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := render(t, tc.err)
			if status != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, status)
			}
			if len(resp.Errors) != 1 || resp.Errors[0].Code != tc.code {
				t.Fatalf("unexpected envelope: %+v", resp)
			}
		})
	}
}

func TestErrorHandler_ValidationListRendersAllViolations(t *testing.T) {
	err := domain.ErrorList{domain.ErrEmailRequired, domain.ErrPasswordRequired}

	status, resp := render(t, err)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected both violations, got %+v", resp)
	}
	if resp.Errors[0].Code != "Account.EmailRequired" || resp.Errors[1].Code != "Account.PasswordRequired" {
		t.Fatalf("unexpected codes: %+v", resp.Errors)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	status, resp := render(t, echo.NewHTTPError(http.StatusNotFound, "route not found"))
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Description != "route not found" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	status, resp := render(t, errors.New("pq: connection reset by peer"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Code != "General.ServerError" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if resp.Errors[0].Description == "pq: connection reset by peer" {
		t.Fatalf("internal error detail leaked to the client")
	}
}

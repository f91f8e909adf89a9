package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/expensetracker/expense-system/internal/core/domain"
)

// errorItem is a single coded violation inside the error envelope.
type errorItem struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// errorResponse is the canonical error envelope for all API errors. Every
// failure, including multi-field validation, renders as a list of coded
// violations.
type errorResponse struct {
	Errors []errorItem `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to deterministic HTTP status codes.
//   - Renders validation lists with every violation, not just the first.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Errors: []errorItem{{
			Code:        http.StatusText(he.Code),
			Description: fmt.Sprintf("%v", he.Message),
		}}}
	}

	var list domain.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		items := make([]errorItem, len(list))
		for i, e := range list {
			items[i] = errorItem{Code: e.Code, Description: e.Description}
		}
		return statusFor(list.First().Kind), errorResponse{Errors: items}
	}

	var de domain.Error
	if errors.As(err, &de) {
		if de.Kind == domain.KindFailure {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("request failed")
		}
		return statusFor(de.Kind), errorResponse{Errors: []errorItem{{
			Code:        de.Code,
			Description: de.Description,
		}}}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Errors: []errorItem{{
		Code:        "General.ServerError",
		Description: "An unexpected error occurred.",
	}}}
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

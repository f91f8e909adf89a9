package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

// CurrencyHandler handles HTTP requests for the currency reference data.
type CurrencyHandler struct {
	service ports.CurrencyService
}

func NewCurrencyHandler(service ports.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{service: service}
}

type currencyRequest struct {
	CurrencyCode string  `json:"currency_code"`
	CurrencyName string  `json:"currency_name"`
	RateToEuro   float64 `json:"rate_to_euro"`
}

// List returns all currencies.
//
// @Summary      List currencies
// @Tags         currencies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Currency
// @Router       /currencies [get]
func (h *CurrencyHandler) List(c echo.Context) error {
	currencies, err := h.service.GetCurrencies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, currencies)
}

// Get returns one currency by ID.
//
// @Summary      Get a currency
// @Tags         currencies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Currency ID"
// @Success      200  {object}  domain.Currency
// @Failure      404  {object}  map[string]any
// @Router       /currencies/{id} [get]
func (h *CurrencyHandler) Get(c echo.Context) error {
	currencyID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	currency, err := h.service.GetCurrency(c.Request().Context(), currencyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, currency)
}

// Create adds a new currency.
//
// @Summary      Create a currency
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      currencyRequest  true  "Currency details"
// @Success      201   {object}  domain.Currency
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /currencies [post]
func (h *CurrencyHandler) Create(c echo.Context) error {
	var req currencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	currency, err := h.service.CreateCurrency(c.Request().Context(), domain.Currency{
		CurrencyCode: req.CurrencyCode,
		CurrencyName: req.CurrencyName,
		RateToEuro:   req.RateToEuro,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, currency)
}

// Update replaces a currency's fields.
//
// @Summary      Update a currency
// @Tags         currencies
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int              true  "Currency ID"
// @Param        body  body  currencyRequest  true  "Currency details"
// @Success      204   "updated"
// @Failure      404   {object}  map[string]any
// @Router       /currencies/{id} [put]
func (h *CurrencyHandler) Update(c echo.Context) error {
	currencyID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req currencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.UpdateCurrency(c.Request().Context(), domain.Currency{
		CurrencyID:   currencyID,
		CurrencyCode: req.CurrencyCode,
		CurrencyName: req.CurrencyName,
		RateToEuro:   req.RateToEuro,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes an unreferenced currency.
//
// @Summary      Delete a currency
// @Tags         currencies
// @Security     BearerAuth
// @Param        id  path  int  true  "Currency ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /currencies/{id} [delete]
func (h *CurrencyHandler) Delete(c echo.Context) error {
	currencyID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteCurrency(c.Request().Context(), currencyID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

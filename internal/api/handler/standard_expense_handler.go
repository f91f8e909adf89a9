package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

// StandardExpenseHandler handles HTTP requests for recurring expenses.
type StandardExpenseHandler struct {
	service ports.StandardExpenseService
}

func NewStandardExpenseHandler(service ports.StandardExpenseService) *StandardExpenseHandler {
	return &StandardExpenseHandler{service: service}
}

type standardExpenseRequest struct {
	WalletID    int     `json:"wallet_id"`
	CategoryID  int     `json:"category_id"`
	Reason      string  `json:"reason,omitempty"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Frequency   string  `json:"frequency" validate:"required"`
	NextDate    string  `json:"next_date" validate:"required,datetime=2006-01-02"`
}

func (r standardExpenseRequest) toDomain() (domain.StandardExpense, error) {
	nextDate, err := time.Parse(dateLayout, r.NextDate)
	if err != nil {
		return domain.StandardExpense{}, echo.NewHTTPError(http.StatusBadRequest, "next_date must be YYYY-MM-DD")
	}
	return domain.StandardExpense{
		WalletID:    r.WalletID,
		CategoryID:  r.CategoryID,
		Reason:      r.Reason,
		Description: r.Description,
		Amount:      r.Amount,
		Frequency:   r.Frequency,
		NextDate:    nextDate,
	}, nil
}

// ListByWallet returns all recurring expenses configured on a wallet.
//
// @Summary      List standard expenses
// @Tags         standard-expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Wallet ID"
// @Success      200  {array}  domain.StandardExpense
// @Router       /wallets/{id}/standard-expenses [get]
func (h *StandardExpenseHandler) ListByWallet(c echo.Context) error {
	walletID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	expenses, err := h.service.GetStandardExpenses(c.Request().Context(), walletID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenses)
}

// Get returns one recurring expense by ID.
//
// @Summary      Get a standard expense
// @Tags         standard-expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Standard expense ID"
// @Success      200  {object}  domain.StandardExpense
// @Failure      404  {object}  map[string]any
// @Router       /standard-expenses/{id} [get]
func (h *StandardExpenseHandler) Get(c echo.Context) error {
	expenseID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	expense, err := h.service.GetStandardExpense(c.Request().Context(), expenseID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expense)
}

// Create configures a new recurring expense.
//
// @Summary      Create a standard expense
// @Tags         standard-expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      standardExpenseRequest  true  "Standard expense details"
// @Success      201   {object}  domain.StandardExpense
// @Failure      400   {object}  map[string]any
// @Router       /standard-expenses [post]
func (h *StandardExpenseHandler) Create(c echo.Context) error {
	var req standardExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	expense, err := req.toDomain()
	if err != nil {
		return err
	}

	created, err := h.service.CreateStandardExpense(c.Request().Context(), expense)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update replaces a recurring expense's fields.
//
// @Summary      Update a standard expense
// @Tags         standard-expenses
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                     true  "Standard expense ID"
// @Param        body  body  standardExpenseRequest  true  "Standard expense details"
// @Success      204   "updated"
// @Failure      404   {object}  map[string]any
// @Router       /standard-expenses/{id} [put]
func (h *StandardExpenseHandler) Update(c echo.Context) error {
	expenseID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req standardExpenseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	expense, err := req.toDomain()
	if err != nil {
		return err
	}
	expense.ExpenseID = expenseID

	if err := h.service.UpdateStandardExpense(c.Request().Context(), expense); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a recurring expense.
//
// @Summary      Delete a standard expense
// @Tags         standard-expenses
// @Security     BearerAuth
// @Param        id  path  int  true  "Standard expense ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]any
// @Router       /standard-expenses/{id} [delete]
func (h *StandardExpenseHandler) Delete(c echo.Context) error {
	expenseID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteStandardExpense(c.Request().Context(), expenseID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

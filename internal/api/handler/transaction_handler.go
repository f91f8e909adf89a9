package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

const dateLayout = "2006-01-02"

// TransactionHandler handles HTTP requests for wallet transactions.
type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type transactionRequest struct {
	WalletID        int     `json:"wallet_id"`
	CategoryID      int     `json:"category_id"`
	CurrencyID      int     `json:"currency_id"`
	TransactionDate string  `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	TransactionTime string  `json:"transaction_time" validate:"required,datetime=15:04:05"`
	TransactionType string  `json:"transaction_type" validate:"required"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description,omitempty"`
}

func (r transactionRequest) toDomain() (domain.Transaction, error) {
	date, err := time.Parse(dateLayout, r.TransactionDate)
	if err != nil {
		return domain.Transaction{}, echo.NewHTTPError(http.StatusBadRequest, "transaction_date must be YYYY-MM-DD")
	}
	return domain.Transaction{
		WalletID:        r.WalletID,
		CategoryID:      r.CategoryID,
		CurrencyID:      r.CurrencyID,
		TransactionDate: date,
		TransactionTime: r.TransactionTime,
		TransactionType: r.TransactionType,
		Amount:          r.Amount,
		Description:     r.Description,
	}, nil
}

// ListByWallet returns all transactions recorded against a wallet.
//
// @Summary      List wallet transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "Wallet ID"
// @Success      200  {array}  domain.Transaction
// @Router       /wallets/{id}/transactions [get]
func (h *TransactionHandler) ListByWallet(c echo.Context) error {
	walletID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	transactions, err := h.service.GetTransactions(c.Request().Context(), walletID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactions)
}

// Get returns one transaction by ID.
//
// @Summary      Get a transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  domain.Transaction
// @Failure      404  {object}  map[string]any
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) Get(c echo.Context) error {
	transactionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	tx, err := h.service.GetTransaction(c.Request().Context(), transactionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tx)
}

// Create records a new transaction.
//
// @Summary      Create a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      transactionRequest  true  "Transaction details"
// @Success      201   {object}  domain.Transaction
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /transactions [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	tx, err := req.toDomain()
	if err != nil {
		return err
	}

	created, err := h.service.CreateTransaction(c.Request().Context(), tx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update replaces a transaction's fields.
//
// @Summary      Update a transaction
// @Tags         transactions
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Transaction ID"
// @Param        body  body  transactionRequest  true  "Transaction details"
// @Success      204   "updated"
// @Failure      404   {object}  map[string]any
// @Router       /transactions/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	transactionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	tx, err := req.toDomain()
	if err != nil {
		return err
	}
	tx.TransactionID = transactionID

	if err := h.service.UpdateTransaction(c.Request().Context(), tx); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a transaction.
//
// @Summary      Delete a transaction
// @Tags         transactions
// @Security     BearerAuth
// @Param        id  path  int  true  "Transaction ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]any
// @Router       /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	transactionID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteTransaction(c.Request().Context(), transactionID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

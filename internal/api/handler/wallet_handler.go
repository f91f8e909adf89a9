package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

// WalletHandler handles HTTP requests for wallet operations. Wallets are
// always scoped to the authenticated account.
type WalletHandler struct {
	service ports.WalletService
}

func NewWalletHandler(service ports.WalletService) *WalletHandler {
	return &WalletHandler{service: service}
}

type walletRequest struct {
	CurrencyID int     `json:"currency_id"`
	Balance    float64 `json:"balance"`
	Purpose    string  `json:"purpose,omitempty"`
}

// List returns all wallets owned by the caller.
//
// @Summary      List wallets
// @Tags         wallets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Wallet
// @Router       /wallets [get]
func (h *WalletHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	wallets, err := h.service.GetWallets(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wallets)
}

// Get returns one wallet by ID.
//
// @Summary      Get a wallet
// @Tags         wallets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Wallet ID"
// @Success      200  {object}  domain.Wallet
// @Failure      404  {object}  map[string]any
// @Router       /wallets/{id} [get]
func (h *WalletHandler) Get(c echo.Context) error {
	walletID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	wallet, err := h.service.GetWallet(c.Request().Context(), walletID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wallet)
}

// Create opens a new wallet for the caller.
//
// @Summary      Create a wallet
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      walletRequest  true  "Wallet details"
// @Success      201   {object}  domain.Wallet
// @Failure      400   {object}  map[string]any
// @Router       /wallets [post]
func (h *WalletHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req walletRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	wallet, err := h.service.CreateWallet(c.Request().Context(), domain.Wallet{
		UserID:     userID,
		CurrencyID: req.CurrencyID,
		Balance:    req.Balance,
		Purpose:    req.Purpose,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, wallet)
}

// Update replaces a wallet's mutable fields.
//
// @Summary      Update a wallet
// @Tags         wallets
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int            true  "Wallet ID"
// @Param        body  body  walletRequest  true  "Wallet details"
// @Success      204   "updated"
// @Failure      404   {object}  map[string]any
// @Router       /wallets/{id} [put]
func (h *WalletHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	walletID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req walletRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.UpdateWallet(c.Request().Context(), domain.Wallet{
		WalletID:   walletID,
		UserID:     userID,
		CurrencyID: req.CurrencyID,
		Balance:    req.Balance,
		Purpose:    req.Purpose,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes an empty wallet.
//
// @Summary      Delete a wallet
// @Tags         wallets
// @Security     BearerAuth
// @Param        id  path  int  true  "Wallet ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /wallets/{id} [delete]
func (h *WalletHandler) Delete(c echo.Context) error {
	walletID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteWallet(c.Request().Context(), walletID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

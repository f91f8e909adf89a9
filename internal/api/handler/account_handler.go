package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

// AccountHandler handles HTTP requests for account administration.
// Registration and credential changes go through AuthHandler.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type updateAccountRequest struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	RealName    string  `json:"real_name"`
	RealSurname string  `json:"real_surname"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// List returns all accounts.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Account
// @Router       /accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.GetAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Get returns one account by ID.
//
// @Summary      Get an account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]any
// @Router       /accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	account, err := h.service.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Update replaces an account's profile fields.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                   true  "User ID"
// @Param        body  body  updateAccountRequest  true  "Profile fields"
// @Success      204   "updated"
// @Failure      404   {object}  map[string]any
// @Router       /accounts/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.UpdateAccount(c.Request().Context(), domain.Account{
		UserID:      userID,
		Username:    req.Username,
		Email:       req.Email,
		RealName:    req.RealName,
		RealSurname: req.RealSurname,
		PhoneNumber: req.PhoneNumber,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes an account.
//
// @Summary      Delete an account
// @Tags         accounts
// @Security     BearerAuth
// @Param        id  path  int  true  "User ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

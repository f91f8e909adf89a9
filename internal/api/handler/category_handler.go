package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expensetracker/expense-system/internal/core/domain"
	"github.com/expensetracker/expense-system/internal/core/ports"
)

// CategoryHandler handles HTTP requests for the category reference data.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	CategoryName string `json:"category_name"`
	Reason       string `json:"reason,omitempty"`
}

// List returns all categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.GetCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Get returns one category by ID.
//
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]any
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.service.GetCategory(c.Request().Context(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Create adds a new category.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  domain.Category
// @Failure      400   {object}  map[string]any
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	category, err := h.service.CreateCategory(c.Request().Context(), domain.Category{
		CategoryName: req.CategoryName,
		Reason:       req.Reason,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// Update replaces a category's fields.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int              true  "Category ID"
// @Param        body  body  categoryRequest  true  "Category details"
// @Success      204   "updated"
// @Failure      404   {object}  map[string]any
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.UpdateCategory(c.Request().Context(), domain.Category{
		CategoryID:   categoryID,
		CategoryName: req.CategoryName,
		Reason:       req.Reason,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes an unreferenced category.
//
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Param        id  path  int  true  "Category ID"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

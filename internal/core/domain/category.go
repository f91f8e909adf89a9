package domain

// Category labels transactions for reporting.
type Category struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	Reason       string `json:"reason,omitempty"`
}

var (
	ErrInvalidCategoryID      = validation("Category.InvalidCategoryId", "Category ID must be greater than zero.")
	ErrCategoryNameRequired   = validation("Category.NameRequired", "Category name is required.")
	ErrCategoryNameTooLong    = validation("Category.NameTooLong", "Category name cannot exceed 50 characters.")
	ErrCategoryReasonTooLong  = validation("Category.ReasonTooLong", "Reason cannot exceed 255 characters.")
	ErrCategoryNotFound       = notFound("Category.NotFound", "Category with the specified ID was not found.")
	ErrCategoryInUse          = conflict("Category.Conflict.InUse", "Cannot delete category as it has associated transactions.")
)

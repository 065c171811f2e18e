package repository

import (
	"adminboard/internal/model"
	"adminboard/pkg/paginator"

	"github.com/aarondl/null/v8"
)

// Filter contains filtering options for user queries.
type Filter struct {
	// Query is matched case-insensitively against display name and email.
	Query string
	// IsActive filters by status; an invalid (null) value means all users.
	IsActive null.Bool
}

// GetOptions contains options for paginated user listing.
type GetOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

// UpdateOptions contains options for updating a user.
// Only valid (non-null) fields will be updated.
type UpdateOptions struct {
	ID          string
	DisplayName null.String
	Email       null.String
	Status      *model.Status
}

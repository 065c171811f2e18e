package user

import (
	"adminboard/internal/model"
	"adminboard/pkg/paginator"
)

// Filter narrows a user listing. Query matches display name or email,
// case-insensitively. StatusAll means no status filter.
type Filter struct {
	Query  string
	Status model.Status
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetUserOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}

type UserOutput struct {
	User model.User
}

type UpdateStatusInput struct {
	ID     string
	Status model.Status
}

// UpdateStatusOutput carries the updated user and a human-readable
// confirmation message.
type UpdateStatusOutput struct {
	User    model.User
	Message string
}

package repository

import (
	"context"
	"errors"

	"adminboard/internal/model"
	"adminboard/pkg/paginator"
)

// ErrNotFound indicates the requested user does not exist.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, opts GetOptions) ([]model.User, paginator.Paginator, error)
	Detail(ctx context.Context, id string) (model.User, error)
	Update(ctx context.Context, opts UpdateOptions) (model.User, error)
}

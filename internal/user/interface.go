package user

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, ip GetInput) (GetUserOutput, error)
	Detail(ctx context.Context, id string) (UserOutput, error)
	UpdateStatus(ctx context.Context, ip UpdateStatusInput) (UpdateStatusOutput, error)
}

package usecase

import (
	"context"
	"fmt"

	"adminboard/internal/model"
	"adminboard/internal/user"
	"adminboard/internal/user/repository"

	"github.com/aarondl/null/v8"
)

func (uc *usecase) Get(ctx context.Context, ip user.GetInput) (user.GetUserOutput, error) {
	opts := repository.GetOptions{
		Filter: repository.Filter{
			Query:    ip.Filter.Query,
			IsActive: statusFilter(ip.Filter.Status),
		},
		PaginateQuery: ip.PaginateQuery,
	}

	usrs, pag, err := uc.repo.Get(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Get: %v", err)
		return user.GetUserOutput{}, err
	}

	return user.GetUserOutput{
		Users:     usrs,
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, id string) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) UpdateStatus(ctx context.Context, ip user.UpdateStatusInput) (user.UpdateStatusOutput, error) {
	if ip.Status != model.StatusActive && ip.Status != model.StatusInactive {
		return user.UpdateStatusOutput{}, user.ErrInvalidStatus
	}

	status := ip.Status
	usr, err := uc.repo.Update(ctx, repository.UpdateOptions{
		ID:     ip.ID,
		Status: &status,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UpdateStatusOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateStatus: %v", err)
		return user.UpdateStatusOutput{}, err
	}

	verb := "activated"
	if status == model.StatusInactive {
		verb = "deactivated"
	}

	return user.UpdateStatusOutput{
		User:    usr,
		Message: fmt.Sprintf("User %s has been %s", usr.DisplayName, verb),
	}, nil
}

// statusFilter maps the domain status filter onto the repository's
// tri-state flag. StatusAll disables the filter.
func statusFilter(s model.Status) null.Bool {
	switch s {
	case model.StatusActive:
		return null.BoolFrom(true)
	case model.StatusInactive:
		return null.BoolFrom(false)
	default:
		return null.Bool{}
	}
}

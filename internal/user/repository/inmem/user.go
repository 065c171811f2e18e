package inmem

import (
	"context"
	"strings"

	"adminboard/internal/model"
	"adminboard/internal/user/repository"
	"adminboard/pkg/paginator"
)

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		if !matches(u, opts.Filter) {
			continue
		}
		matched = append(matched, u.Clone())
	}

	items, pag := paginator.PaginateSlice(matched, opts.PaginateQuery)
	return items, pag, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}

	return r.users[idx].Clone(), nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[opts.ID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}

	u := r.users[idx]
	if opts.DisplayName.Valid {
		u.DisplayName = opts.DisplayName.String
	}
	if opts.Email.Valid {
		u.Email = opts.Email.String
	}
	if opts.Status != nil {
		u.Status = *opts.Status
	}
	r.users[idx] = u

	return u.Clone(), nil
}

func matches(u model.User, f repository.Filter) bool {
	if f.IsActive.Valid && u.IsActive() != f.IsActive.Bool {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(u.DisplayName), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			return false
		}
	}
	return true
}

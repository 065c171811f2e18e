package inmem

import (
	"sort"
	"sync"

	"adminboard/internal/model"
	"adminboard/internal/user/repository"
	pkgLog "adminboard/pkg/log"
)

// implRepository is a seeded in-memory user store. It backs the mock API;
// there is intentionally no database behind it.
type implRepository struct {
	l pkgLog.Logger

	mu    sync.RWMutex
	users []model.User
	byID  map[string]int
}

// New returns an in-memory repository populated with the given users.
// Listing order is fixed (created-at, then id) so pages are stable
// across requests.
func New(l pkgLog.Logger, users []model.User) repository.Repository {
	r := &implRepository{
		l:     l,
		users: make([]model.User, len(users)),
		byID:  make(map[string]int, len(users)),
	}

	for i, u := range users {
		r.users[i] = u.Clone()
	}
	sort.SliceStable(r.users, func(i, j int) bool {
		if !r.users[i].CreatedAt.Equal(r.users[j].CreatedAt) {
			return r.users[i].CreatedAt.Before(r.users[j].CreatedAt)
		}
		return r.users[i].ID < r.users[j].ID
	})
	for i, u := range r.users {
		r.byID[u.ID] = i
	}

	return r
}

package model

import "time"

// Group is a named collection a user can belong to.
// Groups are referenced by users, never owned by them.
type Group struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User represents a user entity in the domain layer.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Groups      []Group   `json:"groups"`
}

// IsActive reports whether the user is currently active.
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// Clone returns a deep copy of the user. Group memberships are copied
// so a mutated clone never aliases the original slice.
func (u User) Clone() User {
	c := u
	if u.Groups != nil {
		c.Groups = make([]Group, len(u.Groups))
		copy(c.Groups, u.Groups)
	}
	return c
}

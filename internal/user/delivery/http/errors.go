package http

import (
	"net/http"

	"adminboard/internal/user"
	"adminboard/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case user.ErrUserNotFound:
		return errors.NewNotFoundHTTPError("User not found")
	case user.ErrInvalidStatus:
		return errors.NewHTTPError(http.StatusBadRequest, "Invalid status", http.StatusBadRequest)
	default:
		return err
	}
}

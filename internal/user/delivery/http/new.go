package http

import (
	"adminboard/internal/user"
	pkgLog "adminboard/pkg/log"
)

type Handler struct {
	uc     user.UseCase
	logger pkgLog.Logger
}

func New(uc user.UseCase, logger pkgLog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		logger: logger,
	}
}

package usecase

import (
	"adminboard/internal/user"
	"adminboard/internal/user/repository"
	pkgLog "adminboard/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}

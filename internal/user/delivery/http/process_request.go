package http

import (
	"adminboard/internal/model"
	"adminboard/internal/user"
	pkgErrors "adminboard/pkg/errors"
	"adminboard/pkg/paginator"

	"github.com/gin-gonic/gin"
)

// processGetRequest binds and validates the list query parameters and
// maps them to the UseCase input. Missing parameters mean defaults
// (page 1, status all, empty query).
func (h *Handler) processGetRequest(c *gin.Context) (user.GetInput, error) {
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return user.GetInput{}, pkgErrors.NewValidationError(400, "query", "malformed query parameters")
	}

	status, err := model.ToStatus(req.Status)
	if err != nil {
		return user.GetInput{}, pkgErrors.NewValidationError(400, "status", "must be one of: all, active, inactive")
	}

	pq := paginator.PaginateQuery{Page: req.Page, PageSize: req.PageSize}
	pq.Adjust()

	return user.GetInput{
		Filter: user.Filter{
			Query:  req.Query,
			Status: status,
		},
		PaginateQuery: pq,
	}, nil
}

// processUpdateStatusRequest binds and validates the status update body.
// Only the two storable statuses are accepted.
func (h *Handler) processUpdateStatusRequest(c *gin.Context) (user.UpdateStatusInput, error) {
	id := c.Param("id")
	if id == "" {
		return user.UpdateStatusInput{}, pkgErrors.NewValidationError(400, "id", "user id is required")
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return user.UpdateStatusInput{}, pkgErrors.NewValidationError(400, "status", "status is required")
	}

	status, err := model.ToStatus(req.Status)
	if err != nil || (status != model.StatusActive && status != model.StatusInactive) {
		return user.UpdateStatusInput{}, pkgErrors.NewValidationError(400, "status", "must be one of: active, inactive")
	}

	return user.UpdateStatusInput{
		ID:     id,
		Status: status,
	}, nil
}

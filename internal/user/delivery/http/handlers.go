package http

import (
	"adminboard/pkg/response"

	"github.com/gin-gonic/gin"
)

// Get handles the paginated, filterable user listing.
// @Summary List users
// @Description Returns a page of users filtered by free-text query and status
// @Tags Users
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param pageSize query int false "Items per page"
// @Param query query string false "Free-text search on display name and email"
// @Param status query string false "Status filter: all, active or inactive"
// @Success 200 {object} response.Resp "Page of users plus pagination metadata"
// @Failure 400 {object} response.Resp "Invalid query parameters"
// @Router /api/v1/users [get]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	ip, err := h.processGetRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Get(ctx, ip)
	if err != nil {
		h.logger.Errorf(ctx, "internal.user.delivery.http.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newGetUserResp(out))
}

// Detail returns a single user by id.
// @Summary Get user
// @Description Returns a single user by identifier
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Resp "User"
// @Failure 404 {object} response.Resp "User not found"
// @Router /api/v1/users/{id} [get]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	out, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserItem(out.User))
}

// UpdateStatus activates or deactivates a user.
// @Summary Update user status
// @Description Sets a user's status to active or inactive and returns a confirmation message
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body updateStatusReq true "Target status"
// @Success 200 {object} response.Resp "Confirmation message and updated user"
// @Failure 400 {object} response.Resp "Invalid status"
// @Failure 404 {object} response.Resp "User not found"
// @Router /api/v1/users/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	ip, err := h.processUpdateStatusRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.UpdateStatus(ctx, ip)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUpdateStatusResp(out))
}

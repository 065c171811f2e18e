package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the user routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", h.Get)
		users.GET("/:id", h.Detail)
		users.PATCH("/:id/status", h.UpdateStatus)
	}
}

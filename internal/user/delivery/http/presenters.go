package http

import (
	"time"

	"adminboard/internal/model"
	"adminboard/internal/user"
	"adminboard/pkg/paginator"
)

// --- Request DTOs ---

type getReq struct {
	Page     int    `form:"page"`
	PageSize int64  `form:"pageSize"`
	Query    string `form:"query"`
	Status   string `form:"status"`
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// --- Response DTOs ---

type groupItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type userItem struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"display_name"`
	Email       string      `json:"email"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	Groups      []groupItem `json:"groups"`
}

type getUserResp struct {
	Items     []userItem                  `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type updateStatusResp struct {
	Message string   `json:"message"`
	User    userItem `json:"user"`
}

func newUserItem(u model.User) userItem {
	groups := make([]groupItem, len(u.Groups))
	for i, g := range u.Groups {
		groups[i] = groupItem{ID: g.ID, Name: g.Name}
	}
	return userItem{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Status:      u.Status.String(),
		CreatedAt:   u.CreatedAt,
		Groups:      groups,
	}
}

func newGetUserResp(o user.GetUserOutput) getUserResp {
	items := make([]userItem, len(o.Users))
	for i, u := range o.Users {
		items[i] = newUserItem(u)
	}
	return getUserResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}

func newUpdateStatusResp(o user.UpdateStatusOutput) updateStatusResp {
	return updateStatusResp{
		Message: o.Message,
		User:    newUserItem(o.User),
	}
}

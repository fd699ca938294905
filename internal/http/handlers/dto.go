package handlers

import (
	"github.com/shelfwatch/inventory-screen/internal/models"
	"github.com/shelfwatch/inventory-screen/internal/session"
)

type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

func (r ProductRequest) draft() models.ProductDraft {
	return models.ProductDraft{
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
	}
}

type ProductView struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
}

func toProductView(p models.Product) ProductView {
	return ProductView{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		Status:      string(p.Status()),
	}
}

// ScreenResponse is the full renderable state of the screen.
type ScreenResponse struct {
	Products    []ProductView `json:"products"`
	TotalCount  int           `json:"total_count"`
	TotalPages  int           `json:"total_pages"`
	Page        int           `json:"page"`
	PageSize    int           `json:"page_size"`
	Search      string        `json:"search"`
	Status      string        `json:"status"`
	SelectedIds []int         `json:"selected_ids"`
	AllSelected bool          `json:"all_selected"`
	Loading     bool          `json:"loading"`
	Banner      string        `json:"banner,omitempty"`
}

func toScreenResponse(v session.View) ScreenResponse {
	products := make([]ProductView, len(v.Products))
	for i, p := range v.Products {
		products[i] = toProductView(p)
	}
	return ScreenResponse{
		Products:    products,
		TotalCount:  v.TotalCount,
		TotalPages:  v.TotalPages,
		Page:        v.Query.Page,
		PageSize:    v.Query.PageSize,
		Search:      v.Query.Search,
		Status:      string(v.Query.Status),
		SelectedIds: v.SelectedIDs,
		AllSelected: v.AllSelected,
		Loading:     v.Loading,
		Banner:      v.Banner,
	}
}

type QueryRequest struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

type PageRequest struct {
	Page int `json:"page"`
}

type PageSizeRequest struct {
	PageSize int `json:"page_size"`
}

type SelectionRequest struct {
	Id       int  `json:"id"`
	Selected bool `json:"selected"`
}

type SelectAllRequest struct {
	Selected bool `json:"selected"`
}

// MutationResult wraps a successful single create/update. The toast is
// transient by construction: it only exists in this response.
type MutationResult struct {
	Product ProductView `json:"product"`
	Toast   string      `json:"toast"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ActivityResponse struct {
	Entries []models.ActivityEntry `json:"entries"`
}

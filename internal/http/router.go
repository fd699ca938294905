package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shelfwatch/inventory-screen/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	r.Post("/login", handlers.LoginHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Get("/screen", handlers.GetScreenHandler)
		r.Post("/screen/refresh", handlers.RefreshHandler)
		r.Put("/screen/query", handlers.SetQueryHandler)
		r.Put("/screen/page", handlers.SetPageHandler)
		r.Put("/screen/page-size", handlers.SetPageSizeHandler)
		r.Put("/screen/selection", handlers.SelectHandler)
		r.Put("/screen/selection/all", handlers.SelectAllHandler)
		r.Get("/screen/activity", handlers.GetActivityHandler)

		r.Post("/screen/products", handlers.CreateProductHandler)
		r.Put("/screen/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/screen/products/{id}", handlers.DeleteProductHandler)

		r.Post("/screen/bulk/delete", handlers.BulkDeleteHandler)
		r.Post("/screen/bulk/out-of-stock", handlers.BulkOutOfStockHandler)

		r.Post("/screen/import", handlers.ImportProductsHandler)
	})

	return r
}

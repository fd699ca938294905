package handlers

import (
	"log"
	"net/http"
)

// BulkDeleteHandler godoc
// @Summary Delete every selected product
// @Description One confirmation covers the whole batch. Deletes are issued
// @Description concurrently and accounted per id; the selection is cleared
// @Description and the list reloaded even when some deletes fail.
// @Tags bulk
// @Produce json
// @Security BearerAuth
// @Param confirm query bool true "Must be true"
// @Success 200 {object} session.BulkResult
// @Failure 409 {string} string "Confirmation missing"
// @Router /screen/bulk/delete [post]
func BulkDeleteHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, "bulk deletion requires confirm=true", http.StatusConflict)
		return
	}

	result := screen.BulkDelete(r.Context())
	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// BulkOutOfStockHandler godoc
// @Summary Set quantity to zero for every selected product
// @Tags bulk
// @Produce json
// @Security BearerAuth
// @Success 200 {object} session.BulkResult
// @Router /screen/bulk/out-of-stock [post]
func BulkOutOfStockHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result := screen.BulkMarkOutOfStock(r.Context())
	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

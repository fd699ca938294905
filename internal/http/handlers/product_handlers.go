package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shelfwatch/inventory-screen/internal/catalog"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Proxies the create to the upstream catalog. On failure the
// @Description draft is not consumed: nothing is logged and the list is not
// @Description reloaded, so the client can retry the same form.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} MutationResult
// @Failure 400 {object} []ProductValidationError
// @Failure 502 {string} string "Upstream error"
// @Router /screen/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := screen.CreateProduct(r.Context(), req.draft())
	if err != nil {
		http.Error(w, "could not create product", http.StatusBadGateway)
		return
	}

	result := MutationResult{Product: toProductView(created), Toast: "Product added"}
	if err := writeJSON(w, http.StatusCreated, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} MutationResult
// @Failure 400 {object} []ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 502 {string} string "Upstream error"
// @Router /screen/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	updated, err := screen.UpdateProduct(r.Context(), id, req.draft())
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusBadGateway)
		return
	}

	result := MutationResult{Product: toProductView(updated), Toast: "Product updated"}
	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Destructive, so the interactive confirmation is made explicit:
// @Description the request must carry confirm=true.
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param confirm query bool true "Must be true"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Confirmation missing"
// @Failure 502 {string} string "Upstream error"
// @Router /screen/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, "deletion requires confirm=true", http.StatusConflict)
		return
	}

	if err := screen.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"log"
	"net/http"

	"github.com/shelfwatch/inventory-screen/internal/view"
)

// GetScreenHandler godoc
// @Summary Current derived screen state
// @Tags screen
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScreenResponse
// @Router /screen [get]
func GetScreenHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := writeJSON(w, http.StatusOK, toScreenResponse(screen.View())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// RefreshHandler godoc
// @Summary Reload the product list from the upstream catalog
// @Tags screen
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScreenResponse
// @Failure 502 {object} ScreenResponse "Upstream fetch failed; banner is set"
// @Router /screen/refresh [post]
func RefreshHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	status := http.StatusOK
	if err := screen.Reload(r.Context()); err != nil {
		status = http.StatusBadGateway
	}
	if err := writeJSON(w, status, toScreenResponse(screen.View())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// SetQueryHandler godoc
// @Summary Set search term and status filter
// @Description Changing either resets the page to 1.
// @Tags screen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param query body QueryRequest true "search and status"
// @Success 200 {object} ScreenResponse
// @Failure 400 {string} string "Invalid filter"
// @Router /screen/query [put]
func SetQueryHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req QueryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		req.Status = string(view.FilterAll)
	}
	if err := screen.SetQuery(req.Search, view.StatusFilter(req.Status)); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := writeJSON(w, http.StatusOK, toScreenResponse(screen.View())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// SetPageHandler godoc
// @Summary Jump to a page
// @Tags screen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page body PageRequest true "page number, 1-based"
// @Success 200 {object} ScreenResponse
// @Failure 400 {string} string "Invalid page"
// @Router /screen/page [put]
func SetPageHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req PageRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := screen.SetPage(req.Page); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := writeJSON(w, http.StatusOK, toScreenResponse(screen.View())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// SetPageSizeHandler godoc
// @Summary Change the page size
// @Tags screen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pageSize body PageSizeRequest true "one of 10,20,40,80,100"
// @Success 200 {object} ScreenResponse
// @Failure 400 {string} string "Invalid page size"
// @Router /screen/page-size [put]
func SetPageSizeHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req PageSizeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := screen.SetPageSize(req.PageSize); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := writeJSON(w, http.StatusOK, toScreenResponse(screen.View())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// SelectHandler godoc
// @Summary Check or uncheck a single row
// @Tags screen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body SelectionRequest true "product id and checked state"
// @Success 200 {object} ScreenResponse
// @Router /screen/selection [put]
func SelectHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SelectionRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	screen.Select(req.Id, req.Selected)
	if err := writeJSON(w, http.StatusOK, toScreenResponse(screen.View())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// SelectAllHandler godoc
// @Summary Apply the header checkbox
// @Description Checking selects exactly the visible rows; unchecking clears the whole selection.
// @Tags screen
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body SelectAllRequest true "checked state"
// @Success 200 {object} ScreenResponse
// @Router /screen/selection/all [put]
func SelectAllHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SelectAllRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	screen.SelectAll(req.Selected)
	if err := writeJSON(w, http.StatusOK, toScreenResponse(screen.View())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetActivityHandler godoc
// @Summary Activity log, newest first
// @Tags screen
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ActivityResponse
// @Router /screen/activity [get]
func GetActivityHandler(w http.ResponseWriter, r *http.Request) {
	screen, err := screenFor(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := writeJSON(w, http.StatusOK, ActivityResponse{Entries: screen.Activity()}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

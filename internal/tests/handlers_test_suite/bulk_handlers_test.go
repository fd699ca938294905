package handlers_test_suite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	handler "github.com/shelfwatch/inventory-screen/internal/http/handlers"
	"github.com/shelfwatch/inventory-screen/internal/models"
	"github.com/shelfwatch/inventory-screen/internal/session"
)

func selectAll(t *testing.T) {
	t.Helper()
	if w := doRequest(t, http.MethodPut, "/screen/selection/all", handler.SelectAllRequest{Selected: true}); w.Code != http.StatusOK {
		t.Fatalf("select all failed with %d", w.Code)
	}
}

func TestBulkDeleteRequiresConfirmation(t *testing.T) {
	t.Cleanup(resetState)
	seedAndRefresh(t, models.Product{ID: 1, Name: "Widget", Quantity: 3})
	selectAll(t)

	w := doRequest(t, http.MethodPost, "/screen/bulk/delete", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 without confirmation, got %d", w.Code)
	}
}

func TestBulkDeleteSelected(t *testing.T) {
	t.Cleanup(resetState)
	seedAndRefresh(t,
		models.Product{ID: 1, Name: "Widget", Quantity: 3},
		models.Product{ID: 2, Name: "Gadget", Quantity: 15},
		models.Product{ID: 3, Name: "Bolt", Quantity: 5},
	)
	selectAll(t)

	w := doRequest(t, http.MethodPost, "/screen/bulk/delete?confirm=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result session.BulkResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding bulk result: %v", err)
	}
	if result.Requested != 3 || len(result.Succeeded) != 3 || len(result.Failed) != 0 {
		t.Fatalf("expected 3 clean deletions, got %+v", result)
	}

	screen := getScreen(t)
	if screen.TotalCount != 0 {
		t.Fatalf("expected an empty list, got %d", screen.TotalCount)
	}
	if len(screen.SelectedIds) != 0 {
		t.Fatalf("expected the selection cleared, got %v", screen.SelectedIds)
	}
}

func TestBulkDeleteReportsPartialFailure(t *testing.T) {
	t.Cleanup(resetState)
	seedAndRefresh(t,
		models.Product{ID: 1, Name: "Widget", Quantity: 3},
		models.Product{ID: 2, Name: "Gadget", Quantity: 15},
	)
	selectAll(t)

	// Product 2 vanishes between selection and the bulk action.
	memory.Delete(context.Background(), 2)

	w := doRequest(t, http.MethodPost, "/screen/bulk/delete?confirm=true", nil)
	var result session.BulkResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding bulk result: %v", err)
	}
	if fmt.Sprint(result.Succeeded) != "[1]" || len(result.Failed) != 1 || result.Failed[0].ID != 2 {
		t.Fatalf("expected id 1 to succeed and id 2 to fail, got %+v", result)
	}

	screen := getScreen(t)
	if screen.Banner == "" {
		t.Fatal("expected a banner reporting the partial failure")
	}
}

func TestBulkMarkOutOfStock(t *testing.T) {
	t.Cleanup(resetState)
	seedAndRefresh(t,
		models.Product{ID: 1, Name: "Widget", Quantity: 3},
		models.Product{ID: 2, Name: "Gadget", Quantity: 15},
	)
	selectAll(t)

	w := doRequest(t, http.MethodPost, "/screen/bulk/out-of-stock", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	screen := getScreen(t)
	for _, p := range screen.Products {
		if p.Quantity != 0 || p.Status != "out_of_stock" {
			t.Fatalf("expected every product out of stock, got %+v", p)
		}
	}

	aw := doRequest(t, http.MethodGet, "/screen/activity", nil)
	var activity handler.ActivityResponse
	if err := json.NewDecoder(aw.Body).Decode(&activity); err != nil {
		t.Fatalf("decoding activity: %v", err)
	}
	if len(activity.Entries) != 2 {
		t.Fatalf("expected one entry per updated product, got %d", len(activity.Entries))
	}
	for _, e := range activity.Entries {
		if e.Action != models.ActionMarkedOutOfStock {
			t.Fatalf("expected 'marked_out_of_stock' entries, got %s", e.Action)
		}
	}
}

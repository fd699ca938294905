package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shelfwatch/inventory-screen/internal/catalog"
	"github.com/shelfwatch/inventory-screen/internal/models"
)

func newBackend(t *testing.T, handler http.HandlerFunc) (*catalog.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return catalog.NewClient(srv.URL, 5*time.Second), srv
}

func TestFetchBareArray(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `[{"id":1,"name":"Widget","description":"","quantity":0}]`)
	})

	products, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Widget" {
		t.Fatalf("unexpected products: %v", products)
	}
}

func TestFetchEnvelopeShape(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"products":[{"id":1,"name":"Widget","quantity":3},{"id":2,"name":"Gadget","quantity":15}]}`)
	})

	products, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}

func TestFetchUnknownShapeYieldsEmptyList(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"items":[{"id":1}],"count":1}`)
	})

	products, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected empty list for an unknown shape, got %v", products)
	}
}

func TestFetchQuarantinesMalformedRecords(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[
			{"id":1,"name":"Widget","quantity":3},
			{"id":0,"name":"NoID","quantity":1},
			{"id":2,"name":"Negative","quantity":-4},
			{"id":"junk","name":3,"quantity":"x"},
			{"id":5,"name":"Bolt","quantity":7}
		]`)
	})

	products, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 || products[0].ID != 1 || products[1].ID != 5 {
		t.Fatalf("expected the two valid records, got %v", products)
	}
}

func TestFetchServerErrorFails(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestCreateSendsDraftWithExtras(t *testing.T) {
	var body map[string]any
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/products" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":9,"name":"Bolt","quantity":5}`)
	})

	draft := models.ProductDraft{Name: "Bolt", Quantity: 5, Extra: map[string]string{"sku": "B-100"}}
	created, err := client.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 9 {
		t.Fatalf("expected created id 9, got %d", created.ID)
	}
	if body["sku"] != "B-100" {
		t.Fatalf("expected passthrough column in the request body, got %v", body)
	}
}

func TestSetQuantitySendsPatch(t *testing.T) {
	var method string
	var body map[string]int
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		json.NewDecoder(r.Body).Decode(&body)
		io.WriteString(w, `{"id":3,"name":"Bolt","quantity":0}`)
	})

	updated, err := client.SetQuantity(context.Background(), 3, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if method != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", method)
	}
	if q, ok := body["quantity"]; !ok || q != 0 {
		t.Fatalf("expected body {quantity: 0}, got %v", body)
	}
	if updated.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %d", updated.Quantity)
	}
}

func TestDeleteNotFound(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	err := client.Delete(context.Background(), 42)
	if !errors.Is(err, catalog.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteNoContent(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/products/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

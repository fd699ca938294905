// Package catalog is the HTTP client for the upstream product API. The
// screen never owns product data; every read and mutation goes through here.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shelfwatch/inventory-screen/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch loads the full product collection. The backend answers with either a
// bare array or an object carrying a "products" array; any other shape yields
// an empty list. Records that fail validation are dropped, not fatal.
func (c *Client) Fetch(ctx context.Context) ([]models.Product, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}

	products, quarantined := decodeProducts(body)
	if quarantined > 0 {
		log.Printf("catalog: quarantined %d malformed product record(s)", quarantined)
	}
	return products, nil
}

// Create registers a new product and returns the backend's view of it.
func (c *Client) Create(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/products", draft)
	if err != nil {
		return models.Product{}, err
	}
	return decodeProduct(body)
}

func (c *Client) Update(ctx context.Context, id int, draft models.ProductDraft) (models.Product, error) {
	body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), draft)
	if err != nil {
		return models.Product{}, err
	}
	return decodeProduct(body)
}

// SetQuantity issues a partial update touching only the quantity field.
func (c *Client) SetQuantity(ctx context.Context, id, quantity int) (models.Product, error) {
	payload := map[string]int{"quantity": quantity}
	body, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/products/%d", id), payload)
	if err != nil {
		return models.Product{}, err
	}
	return decodeProduct(body)
}

func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	return body, nil
}

// decodeProducts tolerates the two known response shapes and quarantines
// individual records that are malformed (bad JSON, missing id, negative
// quantity) instead of failing the whole load.
func decodeProducts(data []byte) ([]models.Product, int) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var envelope struct {
			Products []json.RawMessage `json:"products"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil || envelope.Products == nil {
			return []models.Product{}, 0
		}
		raw = envelope.Products
	}

	products := []models.Product{}
	quarantined := 0
	for _, record := range raw {
		var p models.Product
		if err := json.Unmarshal(record, &p); err != nil || p.ID <= 0 || p.Quantity < 0 {
			quarantined++
			continue
		}
		products = append(products, p)
	}
	return products, quarantined
}

func decodeProduct(data []byte) (models.Product, error) {
	var p models.Product
	if len(data) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return models.Product{}, fmt.Errorf("decoding upstream product: %w", err)
	}
	return p, nil
}

package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/shelfwatch/inventory-screen/internal/models"
)

var ErrDuplicatedName = errors.New("product name duplicated")

// Memory is an in-memory Catalog implementation used by the test suites in
// place of a live backend.
type Memory struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int

	// FetchErr, when set, makes every Fetch fail with it.
	FetchErr error
}

func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (m *Memory) Fetch(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *Memory) Create(_ context.Context, draft models.ProductDraft) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products {
		if p.Name == draft.Name {
			return models.Product{}, ErrDuplicatedName
		}
	}
	p := models.Product{
		ID:          m.nextID,
		Name:        draft.Name,
		Description: draft.Description,
		Quantity:    draft.Quantity,
	}
	m.nextID++
	m.products = append(m.products, p)
	return p, nil
}

func (m *Memory) Update(_ context.Context, id int, draft models.ProductDraft) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			p.Name = draft.Name
			p.Description = draft.Description
			p.Quantity = draft.Quantity
			m.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (m *Memory) SetQuantity(_ context.Context, id, quantity int) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			p.Quantity = quantity
			m.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (m *Memory) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Seed replaces the whole collection, keeping nextID ahead of the seeded ids.
func (m *Memory) Seed(products []models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = make([]models.Product, len(products))
	copy(m.products, products)
	for _, p := range products {
		if p.ID >= m.nextID {
			m.nextID = p.ID + 1
		}
	}
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = nil
	m.nextID = 1
}

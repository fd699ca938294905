package catalog

import (
	"context"

	"github.com/shelfwatch/inventory-screen/internal/models"
)

// Catalog defines the operations the screen needs from the product backend.
type Catalog interface {
	Fetch(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, draft models.ProductDraft) (models.Product, error)
	Update(ctx context.Context, id int, draft models.ProductDraft) (models.Product, error)
	SetQuantity(ctx context.Context, id, quantity int) (models.Product, error)
	Delete(ctx context.Context, id int) error
}

var _ Catalog = (*Client)(nil)
var _ Catalog = (*Memory)(nil)

package models

// Product represents a product entity as served by the upstream catalog API.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// StockStatus is derived from quantity, never stored.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "out_of_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusInStock    StockStatus = "in_stock"
)

const lowStockCeiling = 10

// StatusOf classifies a quantity into exactly one stock status.
func StatusOf(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= lowStockCeiling:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

func (p Product) Status() StockStatus {
	return StatusOf(p.Quantity)
}

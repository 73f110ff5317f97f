package cart

import (
	"github.com/lortega/storefront-backend/internal/products"
	"github.com/shopspring/decimal"
)

// CartItemDTO is one enriched cart line: the product plus its quantity.
type CartItemDTO struct {
	Product   products.ProductDTO `json:"product"`
	Quantity  int                 `json:"quantity"`
	LineTotal decimal.Decimal     `json:"line_total"`
}

// CartDTO is the assembled cart view. It is built fresh on every read and
// never persisted.
type CartDTO struct {
	Items []CartItemDTO   `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// UpdateItemRequest carries the absolute quantity for a cart line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

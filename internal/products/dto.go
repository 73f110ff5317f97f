package products

import (
	"time"

	"github.com/lortega/storefront-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductDTO is the transport shape for a catalog listing.
type ProductDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UpsertProductRequest carries the writable product fields.
type UpsertProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	CategoryID  int64           `json:"category_id" validate:"required,gte=1"`
	Description string          `json:"description" validate:"max=2000"`
	Color       string          `json:"color" validate:"max=50"`
	ImageURL    string          `json:"image_url" validate:"max=500"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Featured    bool            `json:"featured"`
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}

	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		Color:       p.Color,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromModels(list []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

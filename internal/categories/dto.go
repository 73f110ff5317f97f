package categories

import (
	"time"

	"github.com/lortega/storefront-backend/pkg/db/models"
)

// CategoryDTO is the transport shape for a catalog category.
type CategoryDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpsertCategoryRequest carries the writable category fields.
type UpsertCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

func FromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}

	return &CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromModels(list []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

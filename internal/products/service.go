package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/lortega/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lortega/storefront-backend/pkg/errors"
	"github.com/lortega/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

// ListPageDTO bundles a catalog page with its next cursor.
type ListPageDTO struct {
	Items      []ProductDTO `json:"items"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// Service defines the behavior needed by the product controller.
type Service interface {
	Get(ctx context.Context, id int64) (*ProductDTO, error)
	List(ctx context.Context, params pagination.Params) (*ListPageDTO, error)
	Create(ctx context.Context, req UpsertProductRequest) (*ProductDTO, error)
	Update(ctx context.Context, id int64, req UpsertProductRequest) (*ProductDTO, error)
	Delete(ctx context.Context, id int64) error
}

type productRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	ListPage(ctx context.Context, params pagination.Params) ([]models.Product, string, error)
	Create(ctx context.Context, req UpsertProductRequest) (*models.Product, error)
	Update(ctx context.Context, id int64, req UpsertProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo productRepository
}

// ServiceParams bundles the dependencies required to build a product service.
type ServiceParams struct {
	Repo productRepository
}

// NewService constructs a product service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	return FromModel(product), nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*ListPageDTO, error) {
	rows, next, err := s.repo.ListPage(ctx, params)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidCursor) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return &ListPageDTO{Items: FromModels(rows), NextCursor: next}, nil
}

func (s *service) Create(ctx context.Context, req UpsertProductRequest) (*ProductDTO, error) {
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	product, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}
	return FromModel(product), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpsertProductRequest) (*ProductDTO, error) {
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	product, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}
	return FromModel(product), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	return nil
}

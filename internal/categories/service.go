package categories

import (
	"context"
	"errors"
	"fmt"

	"github.com/lortega/storefront-backend/internal/products"
	"github.com/lortega/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lortega/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the category controller.
type Service interface {
	List(ctx context.Context) ([]CategoryDTO, error)
	Get(ctx context.Context, id int64) (*CategoryDTO, error)
	ListProducts(ctx context.Context, id int64) ([]products.ProductDTO, error)
	Create(ctx context.Context, req UpsertCategoryRequest) (*CategoryDTO, error)
	Update(ctx context.Context, id int64, req UpsertCategoryRequest) (*CategoryDTO, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, req UpsertCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id int64, req UpsertCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type productLister interface {
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
}

type service struct {
	repo         categoryRepository
	productsRepo productLister
}

// ServiceParams bundles the dependencies required to build a category service.
type ServiceParams struct {
	Repo         categoryRepository
	ProductsRepo productLister
}

// NewService constructs a category service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("category repository is required")
	}
	if params.ProductsRepo == nil {
		return nil, fmt.Errorf("products repository is required")
	}
	return &service{
		repo:         params.Repo,
		productsRepo: params.ProductsRepo,
	}, nil
}

func (s *service) List(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	return FromModels(rows), nil
}

func (s *service) Get(ctx context.Context, id int64) (*CategoryDTO, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load category")
	}
	return FromModel(category), nil
}

func (s *service) ListProducts(ctx context.Context, id int64) ([]products.ProductDTO, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.productsRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list category products")
	}
	return products.FromModels(rows), nil
}

func (s *service) Create(ctx context.Context, req UpsertCategoryRequest) (*CategoryDTO, error) {
	category, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	return FromModel(category), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpsertCategoryRequest) (*CategoryDTO, error) {
	category, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update category")
	}
	return FromModel(category), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete category")
	}
	return nil
}

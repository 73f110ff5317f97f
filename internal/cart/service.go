package cart

import (
	"context"
	"fmt"

	"github.com/lortega/storefront-backend/internal/events"
	"github.com/lortega/storefront-backend/internal/products"
	"github.com/lortega/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lortega/storefront-backend/pkg/errors"
	"github.com/lortega/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// Service defines the behavior needed by the cart controller.
type Service interface {
	GetCart(ctx context.Context, userID int64) (*CartDTO, error)
	AddProduct(ctx context.Context, userID, productID int64) error
	UpdateItem(ctx context.Context, userID, productID int64, quantity int) error
	IncrementItem(ctx context.Context, userID, productID int64) error
	DecrementItem(ctx context.Context, userID, productID int64) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type cartRepository interface {
	ListLines(ctx context.Context, userID int64) ([]models.CartLine, error)
	AddOrIncrement(ctx context.Context, userID, productID int64) error
	SetQuantity(ctx context.Context, userID, productID int64, quantity int) error
	Increment(ctx context.Context, userID, productID int64) error
	Decrement(ctx context.Context, userID, productID int64) error
	RemoveLine(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}

type productFinder interface {
	FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error)
}

type service struct {
	repo      cartRepository
	products  productFinder
	publisher events.Publisher
	logg      *logger.Logger
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	Repo     cartRepository
	Products productFinder
	// Publisher is optional; a nil publisher disables cart events.
	Publisher events.Publisher
	Logger    *logger.Logger
}

// NewService constructs a cart service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product finder is required")
	}
	return &service{
		repo:      params.Repo,
		products:  params.Products,
		publisher: params.Publisher,
		logg:      params.Logger,
	}, nil
}

// GetCart assembles the enriched cart view. Lines whose product no longer
// exists are dropped from the view without failing the read.
func (s *service) GetCart(ctx context.Context, userID int64) (*CartDTO, error) {
	lines, err := s.repo.ListLines(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart lines")
	}

	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	catalog, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart products")
	}

	cart := &CartDTO{
		Items: make([]CartItemDTO, 0, len(lines)),
		Total: decimal.Zero,
	}
	for _, line := range lines {
		product, ok := catalog[line.ProductID]
		if !ok {
			continue
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		cart.Items = append(cart.Items, CartItemDTO{
			Product:   *products.FromModel(&product),
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		cart.Total = cart.Total.Add(lineTotal)
	}
	return cart, nil
}

func (s *service) AddProduct(ctx context.Context, userID, productID int64) error {
	if err := s.repo.AddOrIncrement(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add cart product")
	}
	s.publish(ctx, events.CartEvent{Name: events.CartProductAdded, UserID: userID, ProductID: productID})
	return nil
}

func (s *service) UpdateItem(ctx context.Context, userID, productID int64, quantity int) error {
	if err := s.repo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "set cart quantity")
	}
	s.publish(ctx, events.CartEvent{Name: events.CartItemUpdated, UserID: userID, ProductID: productID, Quantity: quantity})
	return nil
}

func (s *service) IncrementItem(ctx context.Context, userID, productID int64) error {
	if err := s.repo.Increment(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "increment cart item")
	}
	s.publish(ctx, events.CartEvent{Name: events.CartItemUpdated, UserID: userID, ProductID: productID})
	return nil
}

func (s *service) DecrementItem(ctx context.Context, userID, productID int64) error {
	if err := s.repo.Decrement(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decrement cart item")
	}
	s.publish(ctx, events.CartEvent{Name: events.CartItemUpdated, UserID: userID, ProductID: productID})
	return nil
}

func (s *service) RemoveItem(ctx context.Context, userID, productID int64) error {
	if err := s.repo.RemoveLine(ctx, userID, productID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	s.publish(ctx, events.CartEvent{Name: events.CartItemRemoved, UserID: userID, ProductID: productID})
	return nil
}

func (s *service) ClearCart(ctx context.Context, userID int64) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	s.publish(ctx, events.CartEvent{Name: events.CartCleared, UserID: userID})
	return nil
}

// publish emits a cart event on a best-effort basis. A publish failure is
// logged and never fails the mutation that already committed.
func (s *service) publish(ctx context.Context, event events.CartEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishCartEvent(ctx, event); err != nil && s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"event":   event.Name,
			"user_id": event.UserID,
		})
		s.logg.Warn(logCtx, "cart.event.publish_failed")
	}
}

package cart

import (
	"context"
	"testing"

	"github.com/lortega/storefront-backend/internal/events"
	"github.com/lortega/storefront-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCartRepo struct {
	lines   []models.CartLine
	calls   []string
	lastQty int
}

func (s *stubCartRepo) ListLines(ctx context.Context, userID int64) ([]models.CartLine, error) {
	out := []models.CartLine{}
	for _, line := range s.lines {
		if line.UserID == userID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (s *stubCartRepo) AddOrIncrement(ctx context.Context, userID, productID int64) error {
	s.calls = append(s.calls, "add")
	return nil
}

func (s *stubCartRepo) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	s.calls = append(s.calls, "set")
	s.lastQty = quantity
	return nil
}

func (s *stubCartRepo) Increment(ctx context.Context, userID, productID int64) error {
	s.calls = append(s.calls, "increment")
	return nil
}

func (s *stubCartRepo) Decrement(ctx context.Context, userID, productID int64) error {
	s.calls = append(s.calls, "decrement")
	return nil
}

func (s *stubCartRepo) RemoveLine(ctx context.Context, userID, productID int64) error {
	s.calls = append(s.calls, "remove")
	return nil
}

func (s *stubCartRepo) Clear(ctx context.Context, userID int64) error {
	s.calls = append(s.calls, "clear")
	return nil
}

type stubProductFinder struct {
	products map[int64]models.Product
}

func (s *stubProductFinder) FindByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error) {
	out := map[int64]models.Product{}
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type recordingPublisher struct {
	published []events.CartEvent
}

func (r *recordingPublisher) PublishCartEvent(ctx context.Context, event events.CartEvent) error {
	r.published = append(r.published, event)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func buildCartService(t *testing.T, repo *stubCartRepo, finder *stubProductFinder, pub events.Publisher) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:      repo,
		Products:  finder,
		Publisher: pub,
	})
	require.NoError(t, err)
	return svc
}

func TestGetCartEnrichesLinesAndTotals(t *testing.T) {
	repo := &stubCartRepo{lines: []models.CartLine{
		{UserID: 1, ProductID: 10, Quantity: 2},
		{UserID: 1, ProductID: 11, Quantity: 1},
		{UserID: 2, ProductID: 10, Quantity: 9},
	}}
	finder := &stubProductFinder{products: map[int64]models.Product{
		10: {ID: 10, Name: "Mouse", Price: price("24.99")},
		11: {ID: 11, Name: "Keyboard", Price: price("49.50")},
	}}
	svc := buildCartService(t, repo, finder, nil)

	cart, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	assert.Equal(t, "Mouse", cart.Items[0].Product.Name)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.Items[0].LineTotal.Equal(price("49.98")))
	assert.True(t, cart.Total.Equal(price("99.48")))
}

func TestGetCartDropsLinesWithMissingProducts(t *testing.T) {
	repo := &stubCartRepo{lines: []models.CartLine{
		{UserID: 1, ProductID: 10, Quantity: 1},
		{UserID: 1, ProductID: 404, Quantity: 3},
	}}
	finder := &stubProductFinder{products: map[int64]models.Product{
		10: {ID: 10, Name: "Mouse", Price: price("24.99")},
	}}
	svc := buildCartService(t, repo, finder, nil)

	cart, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(10), cart.Items[0].Product.ID)
	assert.True(t, cart.Total.Equal(price("24.99")))
}

func TestGetCartEmpty(t *testing.T) {
	svc := buildCartService(t, &stubCartRepo{}, &stubProductFinder{}, nil)

	cart, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
}

func TestMutationsDelegateAndPublish(t *testing.T) {
	repo := &stubCartRepo{}
	pub := &recordingPublisher{}
	svc := buildCartService(t, repo, &stubProductFinder{}, pub)
	ctx := context.Background()

	require.NoError(t, svc.AddProduct(ctx, 1, 10))
	require.NoError(t, svc.UpdateItem(ctx, 1, 10, 5))
	require.NoError(t, svc.IncrementItem(ctx, 1, 10))
	require.NoError(t, svc.DecrementItem(ctx, 1, 10))
	require.NoError(t, svc.RemoveItem(ctx, 1, 10))
	require.NoError(t, svc.ClearCart(ctx, 1))

	assert.Equal(t, []string{"add", "set", "increment", "decrement", "remove", "clear"}, repo.calls)
	assert.Equal(t, 5, repo.lastQty)

	require.Len(t, pub.published, 6)
	assert.Equal(t, events.CartProductAdded, pub.published[0].Name)
	assert.Equal(t, events.CartItemUpdated, pub.published[1].Name)
	assert.Equal(t, 5, pub.published[1].Quantity)
	assert.Equal(t, events.CartItemRemoved, pub.published[4].Name)
	assert.Equal(t, events.CartCleared, pub.published[5].Name)
}

func TestMutationsWorkWithoutPublisher(t *testing.T) {
	repo := &stubCartRepo{}
	svc := buildCartService(t, repo, &stubProductFinder{}, nil)

	require.NoError(t, svc.AddProduct(context.Background(), 1, 10))
	assert.Equal(t, []string{"add"}, repo.calls)
}

package cart

import (
	"context"

	"github.com/lortega/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates cart line persistence. Every mutation is a single
// statement (or one short transaction), so concurrent calls for the same
// (user, product) pair serialize on the row locks of the backing store.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListLines returns the user's cart lines ordered by insertion time.
// An empty cart yields an empty slice, not an error.
func (r *Repository) ListLines(ctx context.Context, userID int64) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("product_id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// AddOrIncrement inserts the line with quantity 1, or bumps the existing
// quantity by one. The upsert runs as a single statement, so two concurrent
// adds for the same pair both land.
func (r *Repository) AddOrIncrement(ctx context.Context, userID, productID int64) error {
	if userID <= 0 || productID <= 0 {
		return gorm.ErrInvalidValue
	}

	return r.db.WithContext(ctx).
		Exec(`INSERT INTO cart_lines (user_id, product_id, quantity, created_at, updated_at)
VALUES (?, ?, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_lines.quantity + 1, updated_at = CURRENT_TIMESTAMP`,
			userID, productID).
		Error
}

// SetQuantity overwrites the quantity of an existing line. When the line is
// absent this is a no-op; it never creates a row. A quantity of zero or less
// deletes the line instead of persisting it.
func (r *Repository) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return r.RemoveLine(ctx, userID, productID)
	}

	return r.db.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).
		Error
}

// Increment bumps an existing line's quantity by one; no-op when absent.
func (r *Repository) Increment(ctx context.Context, userID, productID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", gorm.Expr("quantity + 1")).
		Error
}

// Decrement lowers an existing line's quantity by one, deleting the row when
// it would drop below one. The guarded update and the fallback delete share a
// transaction; the row lock taken by the update keeps concurrent decrements
// from racing past the floor.
func (r *Repository) Decrement(ctx context.Context, userID, productID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&models.CartLine{}).
			Where("user_id = ? AND product_id = ? AND quantity > 1", userID, productID).
			Update("quantity", gorm.Expr("quantity - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
		return tx.
			Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.CartLine{}).
			Error
	})
}

// RemoveLine deletes the line if present; no-op otherwise.
func (r *Repository) RemoveLine(ctx context.Context, userID, productID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartLine{}).
		Error
}

// Clear deletes every line belonging to the user.
func (r *Repository) Clear(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartLine{}).
		Error
}

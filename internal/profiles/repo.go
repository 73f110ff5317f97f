package profiles

import (
	"context"

	"github.com/lortega/storefront-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes profile persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profiles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateEmpty inserts a blank profile row for a freshly registered user.
func (r *Repository) CreateEmpty(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Create(&models.Profile{UserID: userID}).Error
}

// GetByUserID loads the profile attached to the user.
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update overwrites the editable profile fields and returns the stored row.
func (r *Repository) Update(ctx context.Context, userID int64, req UpdateProfileRequest) (*models.Profile, error) {
	updates := map[string]any{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
		"email":      req.Email,
		"address":    req.Address,
		"city":       req.City,
		"state":      req.State,
		"zip":        req.Zip,
	}

	result := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByUserID(ctx, userID)
}

package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/lortega/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lortega/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the profile controller.
type Service interface {
	Get(ctx context.Context, userID int64) (*ProfileDTO, error)
	Update(ctx context.Context, userID int64, req UpdateProfileRequest) (*ProfileDTO, error)
}

type profileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
	Update(ctx context.Context, userID int64, req UpdateProfileRequest) (*models.Profile, error)
}

type service struct {
	repo profileRepository
}

// ServiceParams bundles the dependencies required to build a profile service.
type ServiceParams struct {
	Repo profileRepository
}

// NewService constructs a profile service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) Get(ctx context.Context, userID int64) (*ProfileDTO, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}
	return FromModel(profile), nil
}

func (s *service) Update(ctx context.Context, userID int64, req UpdateProfileRequest) (*ProfileDTO, error) {
	profile, err := s.repo.Update(ctx, userID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update profile")
	}
	return FromModel(profile), nil
}

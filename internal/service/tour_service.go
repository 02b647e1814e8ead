package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tourbase/internal/cache"
	apperrors "tourbase/internal/errors"
	"tourbase/internal/model"
	"tourbase/internal/repository"
)

const tourCacheTTL = 5 * time.Minute

// TourUpdate carries the fields of a partial tour update. Nil fields are
// left unchanged.
type TourUpdate struct {
	Title        *string
	Location     *string
	Price        *decimal.Decimal
	DurationDays *int
	Description  *string
}

// TourService performs ownership-scoped CRUD on tours. Every operation,
// including update and delete, is scoped to the owner: a tour belonging
// to another user is reported as not found.
type TourService interface {
	ListTours(ctx context.Context, ownerID uuid.UUID) ([]model.Tour, error)
	CreateTour(ctx context.Context, ownerID uuid.UUID, tour *model.Tour) (*model.Tour, error)
	GetTour(ctx context.Context, ownerID, id uuid.UUID) (*model.Tour, error)
	UpdateTour(ctx context.Context, ownerID, id uuid.UUID, update TourUpdate) (*model.Tour, error)
	DeleteTour(ctx context.Context, ownerID, id uuid.UUID) error
}

type tourService struct {
	repo  repository.TourRepository
	cache *cache.Client
}

// NewTourService builds a TourService with repository and cache.
func NewTourService(repo repository.TourRepository, cache *cache.Client) TourService {
	return &tourService{repo: repo, cache: cache}
}

func (s *tourService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("tour:%s", id)
}

// ListTours returns the owner's tours, newest first.
func (s *tourService) ListTours(ctx context.Context, ownerID uuid.UUID) ([]model.Tour, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// CreateTour persists a new tour with the owner forcibly set server-side.
func (s *tourService) CreateTour(ctx context.Context, ownerID uuid.UUID, tour *model.Tour) (*model.Tour, error) {
	tour.UserID = ownerID
	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}
	return tour, nil
}

// GetTour returns the tour if it exists and belongs to the owner. The
// cache is keyed by id, so the owner check is re-applied after a hit.
func (s *tourService) GetTour(ctx context.Context, ownerID, id uuid.UUID) (*model.Tour, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Tour
		if err := json.Unmarshal(data, &cached); err == nil {
			if cached.UserID != ownerID {
				return nil, apperrors.ErrTourNotFound
			}
			return &cached, nil
		}
	}

	tour, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, fmt.Errorf("find tour: %w", err)
	}

	if payload, err := json.Marshal(tour); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, tourCacheTTL)
	}
	return tour, nil
}

// UpdateTour applies the non-nil fields of update to the owner's tour.
func (s *tourService) UpdateTour(ctx context.Context, ownerID, id uuid.UUID, update TourUpdate) (*model.Tour, error) {
	tour, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTourNotFound
		}
		return nil, fmt.Errorf("find tour: %w", err)
	}

	if update.Title != nil {
		tour.Title = *update.Title
	}
	if update.Location != nil {
		tour.Location = *update.Location
	}
	if update.Price != nil {
		tour.Price = *update.Price
	}
	if update.DurationDays != nil {
		tour.DurationDays = *update.DurationDays
	}
	if update.Description != nil {
		tour.Description = *update.Description
	}

	if err := s.repo.Update(ctx, tour); err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return tour, nil
}

// DeleteTour removes the owner's tour.
func (s *tourService) DeleteTour(ctx context.Context, ownerID, id uuid.UUID) error {
	affected, err := s.repo.DeleteByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTourNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

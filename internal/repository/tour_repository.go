package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourbase/internal/model"
)

// TourRepository defines tour persistence operations. Reads and deletes
// are owner-scoped at the query level, so records belonging to other
// users are indistinguishable from missing ones.
type TourRepository interface {
	Create(ctx context.Context, tour *model.Tour) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Tour, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Tour, error)
	Update(ctx context.Context, tour *model.Tour) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error)
}

type tourRepository struct {
	db *gorm.DB
}

// NewTourRepository builds a GORM-backed repository.
func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Tour, error) {
	var tour model.Tour
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&tour).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Tour, error) {
	var tours []model.Tour
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("created_at DESC").Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *tourRepository) Update(ctx context.Context, tour *model.Tour) error {
	return r.db.WithContext(ctx).Save(tour).Error
}

func (r *tourRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Tour{})
	return res.RowsAffected, res.Error
}

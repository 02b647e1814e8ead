package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tourbase/internal/errors"
	"tourbase/internal/model"
)

// MockTourRepository is a mock implementation of repository.TourRepository.
type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) Create(ctx context.Context, tour *model.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Tour, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tour), args.Error(1)
}

func (m *MockTourRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Tour, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tour), args.Error(1)
}

func (m *MockTourRepository) Update(ctx context.Context, tour *model.Tour) error {
	args := m.Called(ctx, tour)
	return args.Error(0)
}

func (m *MockTourRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func TestTourService_CreateTour_ForcesOwner(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()

	mockRepo := new(MockTourRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Tour")).Return(nil)

	svc := NewTourService(mockRepo, nil)

	// A payload-supplied owner must be overridden server-side.
	tour := &model.Tour{UserID: intruder, Title: "Siwa Oasis Loop", Location: "Siwa"}
	created, err := svc.CreateTour(context.Background(), owner, tour)

	assert.NoError(t, err)
	assert.Equal(t, owner, created.UserID)
	mockRepo.AssertExpectations(t)
}

func TestTourService_GetTour(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	tourID := uuid.New()
	stored := &model.Tour{ID: tourID, UserID: owner, Title: "Nile Felucca Sunset"}

	tests := []struct {
		name          string
		caller        uuid.UUID
		setupMock     func(*MockTourRepository)
		expectedError error
	}{
		{
			name:   "owner reads own tour",
			caller: owner,
			setupMock: func(m *MockTourRepository) {
				m.On("FindByIDAndOwner", mock.Anything, tourID, owner).Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:   "another user's tour is reported missing",
			caller: other,
			setupMock: func(m *MockTourRepository) {
				m.On("FindByIDAndOwner", mock.Anything, tourID, other).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrTourNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTourRepository)
			tt.setupMock(mockRepo)
			svc := NewTourService(mockRepo, nil)

			tour, err := svc.GetTour(context.Background(), tt.caller, tourID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tour)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored.Title, tour.Title)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTourService_UpdateTour(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	tourID := uuid.New()
	newTitle := "White Desert Camp"
	newPrice := decimal.NewFromFloat(199.99)

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		stored := &model.Tour{ID: tourID, UserID: owner, Title: "Old Title", Location: "Farafra"}

		mockRepo := new(MockTourRepository)
		mockRepo.On("FindByIDAndOwner", mock.Anything, tourID, owner).Return(stored, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Tour")).Return(nil)

		svc := NewTourService(mockRepo, nil)
		updated, err := svc.UpdateTour(context.Background(), owner, tourID, TourUpdate{Title: &newTitle, Price: &newPrice})

		assert.NoError(t, err)
		assert.Equal(t, newTitle, updated.Title)
		assert.True(t, newPrice.Equal(updated.Price))
		assert.Equal(t, "Farafra", updated.Location)
		mockRepo.AssertExpectations(t)
	})

	t.Run("update by non-owner fails with not found", func(t *testing.T) {
		mockRepo := new(MockTourRepository)
		mockRepo.On("FindByIDAndOwner", mock.Anything, tourID, other).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTourService(mockRepo, nil)
		updated, err := svc.UpdateTour(context.Background(), other, tourID, TourUpdate{Title: &newTitle})

		assert.ErrorIs(t, err, apperrors.ErrTourNotFound)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestTourService_DeleteTour(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	tourID := uuid.New()

	t.Run("owner deletes own tour", func(t *testing.T) {
		mockRepo := new(MockTourRepository)
		mockRepo.On("DeleteByIDAndOwner", mock.Anything, tourID, owner).Return(int64(1), nil)

		svc := NewTourService(mockRepo, nil)
		assert.NoError(t, svc.DeleteTour(context.Background(), owner, tourID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("delete by non-owner fails with not found", func(t *testing.T) {
		mockRepo := new(MockTourRepository)
		mockRepo.On("DeleteByIDAndOwner", mock.Anything, tourID, other).Return(int64(0), nil)

		svc := NewTourService(mockRepo, nil)
		assert.ErrorIs(t, svc.DeleteTour(context.Background(), other, tourID), apperrors.ErrTourNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestTourService_ListTours(t *testing.T) {
	owner := uuid.New()
	tours := []model.Tour{
		{ID: uuid.New(), UserID: owner, Title: "Newest"},
		{ID: uuid.New(), UserID: owner, Title: "Oldest"},
	}

	mockRepo := new(MockTourRepository)
	mockRepo.On("ListByOwner", mock.Anything, owner).Return(tours, nil)

	svc := NewTourService(mockRepo, nil)
	got, err := svc.ListTours(context.Background(), owner)

	assert.NoError(t, err)
	assert.Equal(t, tours, got)
	mockRepo.AssertExpectations(t)
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"tourbase/internal/auth"
	apperrors "tourbase/internal/errors"
	"tourbase/internal/model"
	"tourbase/internal/service"
)

type stubUserResolver struct {
	user *model.User
}

func (s *stubUserResolver) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.user, nil
}

// stubTourService returns canned results; the malformed-id cases must
// never reach it.
type stubTourService struct {
	tour   *model.Tour
	err    error
	called bool
}

func (s *stubTourService) ListTours(ctx context.Context, ownerID uuid.UUID) ([]model.Tour, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return []model.Tour{*s.tour}, nil
}

func (s *stubTourService) CreateTour(ctx context.Context, ownerID uuid.UUID, tour *model.Tour) (*model.Tour, error) {
	s.called = true
	return s.tour, s.err
}

func (s *stubTourService) GetTour(ctx context.Context, ownerID, id uuid.UUID) (*model.Tour, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return s.tour, nil
}

func (s *stubTourService) UpdateTour(ctx context.Context, ownerID, id uuid.UUID, update service.TourUpdate) (*model.Tour, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return s.tour, nil
}

func (s *stubTourService) DeleteTour(ctx context.Context, ownerID, id uuid.UUID) error {
	s.called = true
	return s.err
}

// tourServer wires the tour routes behind the real guard chain, the way
// the router does.
func tourServer(t *testing.T, svc service.TourService) (*echo.Echo, string) {
	t.Helper()

	user := &model.User{ID: uuid.New(), Email: "amina@example.com"}
	token, err := auth.NewJWTService("test-secret").GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	e := echo.New()
	h := NewTourHandler(svc)
	tours := e.Group("/tours", auth.VerifyToken("test-secret"), auth.RequireUser(&stubUserResolver{user: user}))
	tours.GET("", h.ListTours)
	tours.GET("/:id", h.GetTour)
	tours.PUT("/:id", h.UpdateTour)
	tours.DELETE("/:id", h.DeleteTour)
	return e, token
}

func doRequest(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTourHandler_MalformedID(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		expectedCode int
		expectedBody string
	}{
		// GET reports a malformed id as not found, so existence is not
		// leaked through a distinct error code.
		{name: "get", method: http.MethodGet, expectedCode: http.StatusNotFound, expectedBody: "TOUR_NOT_FOUND"},
		{name: "put", method: http.MethodPut, expectedCode: http.StatusBadRequest, expectedBody: "invalid tour id"},
		{name: "delete", method: http.MethodDelete, expectedCode: http.StatusBadRequest, expectedBody: "invalid tour id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubTourService{}
			e, token := tourServer(t, svc)

			rec := doRequest(e, tt.method, "/tours/not-a-uuid", token)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.False(t, svc.called, "service must not be reached with a malformed id")
		})
	}
}

func TestTourHandler_GetTour(t *testing.T) {
	tourID := uuid.New()

	t.Run("existing tour is returned", func(t *testing.T) {
		svc := &stubTourService{tour: &model.Tour{ID: tourID, Title: "Nile Felucca Sunset"}}
		e, token := tourServer(t, svc)

		rec := doRequest(e, http.MethodGet, "/tours/"+tourID.String(), token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Nile Felucca Sunset")
	})

	t.Run("missing tour maps to 404", func(t *testing.T) {
		svc := &stubTourService{err: apperrors.ErrTourNotFound}
		e, token := tourServer(t, svc)

		rec := doRequest(e, http.MethodGet, "/tours/"+tourID.String(), token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOUR_NOT_FOUND")
	})
}

func TestTourHandler_DeleteTour(t *testing.T) {
	tourID := uuid.New()

	t.Run("delete returns no content", func(t *testing.T) {
		svc := &stubTourService{}
		e, token := tourServer(t, svc)

		rec := doRequest(e, http.MethodDelete, "/tours/"+tourID.String(), token)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("missing tour maps to 404", func(t *testing.T) {
		svc := &stubTourService{err: apperrors.ErrTourNotFound}
		e, token := tourServer(t, svc)

		rec := doRequest(e, http.MethodDelete, "/tours/"+tourID.String(), token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOUR_NOT_FOUND")
	})
}

package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tourbase/internal/auth"
	apperrors "tourbase/internal/errors"
	"tourbase/internal/model"
	"tourbase/internal/service"
)

// TourHandler handles tour CRUD endpoints. All routes sit behind the auth
// middleware, so an identity is always available in the context.
type TourHandler struct {
	tourService service.TourService
}

// NewTourHandler creates a new tour handler.
func NewTourHandler(tourService service.TourService) *TourHandler {
	return &TourHandler{tourService: tourService}
}

// CreateTourRequest represents a tour creation request.
type CreateTourRequest struct {
	Title        string          `json:"title" validate:"required"`
	Location     string          `json:"location" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days" validate:"omitempty,min=1"`
	Description  string          `json:"description"`
}

// UpdateTourRequest represents a partial tour update. Absent fields are
// left unchanged.
type UpdateTourRequest struct {
	Title        *string          `json:"title"`
	Location     *string          `json:"location"`
	Price        *decimal.Decimal `json:"price"`
	DurationDays *int             `json:"duration_days" validate:"omitempty,min=1"`
	Description  *string          `json:"description"`
}

func currentUser(c echo.Context) (*model.User, error) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
	}
	return user, nil
}

// ListTours godoc
// @Summary List the caller's tours, newest first
// @Tags tours
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Tour
// @Failure 401 {object} errors.ErrorResponse
// @Router /tours [get]
func (h *TourHandler) ListTours(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	tours, err := h.tourService.ListTours(c.Request().Context(), user.ID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tours)
}

// CreateTour godoc
// @Summary Create a tour owned by the caller
// @Tags tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTourRequest true "Tour fields"
// @Success 201 {object} model.Tour
// @Failure 400 {object} errors.ErrorResponse
// @Router /tours [post]
func (h *TourHandler) CreateTour(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req CreateTourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tour := &model.Tour{
		Title:        req.Title,
		Location:     req.Location,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Description:  req.Description,
	}
	if tour.DurationDays == 0 {
		tour.DurationDays = 1
	}

	created, err := h.tourService.CreateTour(c.Request().Context(), user.ID, tour)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// GetTour godoc
// @Summary Get one of the caller's tours
// @Tags tours
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Success 200 {object} model.Tour
// @Failure 404 {object} errors.ErrorResponse
// @Router /tours/{id} [get]
func (h *TourHandler) GetTour(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	// A malformed id is reported as not found so existence is not leaked
	// through a distinct error code.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrTourNotFound)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	tour, err := h.tourService.GetTour(c.Request().Context(), user.ID, id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tour)
}

// UpdateTour godoc
// @Summary Update one of the caller's tours
// @Tags tours
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Param request body UpdateTourRequest true "Fields to change"
// @Success 200 {object} model.Tour
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tours/{id} [put]
func (h *TourHandler) UpdateTour(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	var req UpdateTourRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.TourUpdate{
		Title:        req.Title,
		Location:     req.Location,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Description:  req.Description,
	}

	tour, err := h.tourService.UpdateTour(c.Request().Context(), user.ID, id, update)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tour)
}

// DeleteTour godoc
// @Summary Delete one of the caller's tours
// @Tags tours
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /tours/{id} [delete]
func (h *TourHandler) DeleteTour(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tour id")
	}

	if err := h.tourService.DeleteTour(c.Request().Context(), user.ID, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tourbase/internal/auth"
)

// UserHandler handles endpoints about the authenticated user.
type UserHandler struct{}

// NewUserHandler creates a handler layer.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
	}
	return c.JSON(http.StatusOK, user)
}

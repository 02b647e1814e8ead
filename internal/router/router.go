package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tourbase/internal/auth"
	"tourbase/internal/config"
	"tourbase/internal/handler"
	"tourbase/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userService service.UserService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	tourHandler *handler.TourHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// The guard chain: echo-jwt verifies signature and expiry, RequireUser
	// resolves the subject to a live identity.
	verifyToken := auth.VerifyToken(cfg.JWTSecret)
	requireUser := auth.RequireUser(userService)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/signup", authHandler.Signup)
	api.POST("/users/login", authHandler.Login)

	// Protected routes
	api.GET("/users/me", userHandler.Me, verifyToken, requireUser)

	tours := e.Group("/tours", verifyToken, requireUser)
	tours.GET("", tourHandler.ListTours)
	tours.POST("", tourHandler.CreateTour)
	tours.GET("/:id", tourHandler.GetTour)
	tours.PUT("/:id", tourHandler.UpdateTour)
	tours.DELETE("/:id", tourHandler.DeleteTour)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

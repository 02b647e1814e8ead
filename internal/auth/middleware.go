package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tourbase/internal/model"
)

// identityContextKey is the echo context key holding the resolved user.
const identityContextKey = "currentUser"

// UserResolver resolves a token subject to a live user identity.
type UserResolver interface {
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// VerifyToken returns middleware that extracts the bearer token from the
// Authorization header and verifies its signature and expiry.
func VerifyToken(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		},
	})
}

// RequireUser returns middleware that resolves the verified token's subject
// to a live user and attaches it to the request context. Runs after
// VerifyToken. A token whose subject was deleted since issuance is rejected.
func RequireUser(resolver UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := resolver.GetUser(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}

			c.Set(identityContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the identity attached by RequireUser.
func UserFromContext(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(identityContextKey).(*model.User)
	return user, ok
}

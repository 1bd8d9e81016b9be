package middleware

import (
	"strings"

	"bookshelf/internal/delivery/api/response"
	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, deliverycontext.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
		})

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID. It must be used AFTER the Authenticate middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}

	return identity.UserID, true
}

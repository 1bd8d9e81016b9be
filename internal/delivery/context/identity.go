package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated caller in echo.Context.
const KeyIdentity ContextKey = "identity"

// Identity is the caller asserted by a verified session token.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// SetIdentity stores the authenticated caller in echo.Context.
func SetIdentity(c echo.Context, identity Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the authenticated caller from echo.Context.
func GetIdentity(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(Identity)
	if !ok || identity.UserID == uuid.Nil {
		return Identity{}, false
	}

	return identity, true
}

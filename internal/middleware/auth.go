package middleware

import (
	"strings"

	"github.com/Q-Tify/inno-trackify/internal/constants"
	apierrors "github.com/Q-Tify/inno-trackify/internal/errors"
	"github.com/Q-Tify/inno-trackify/internal/models"
	"github.com/Q-Tify/inno-trackify/internal/repository"
	"github.com/Q-Tify/inno-trackify/internal/services"
	"github.com/gin-gonic/gin"
)

// RequireAuth verifies the bearer token and resolves the current user.
// Any failure (missing header, malformed header, invalid or expired token,
// token subject without a matching user row) aborts with 401 and a
// WWW-Authenticate: Bearer challenge.
func RequireAuth(tokens *services.TokenService, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apierrors.UnauthorizedBearer(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apierrors.UnauthorizedBearer(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		username, err := tokens.Verify(parts[1])
		if err != nil {
			apierrors.UnauthorizedBearer(c, "Invalid authentication credentials")
			c.Abort()
			return
		}

		user, err := users.FindByUsername(username)
		if err != nil {
			apierrors.UnauthorizedBearer(c, "Invalid authentication credentials")
			c.Abort()
			return
		}

		// Store the resolved user in context for easy access in handlers
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, false
	}
	return user, true
}

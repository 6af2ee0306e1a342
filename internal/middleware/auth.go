package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clauselens/contract-review-api/internal/constants"
	apierrors "github.com/clauselens/contract-review-api/internal/errors"
)

// TokenVerifier resolves a bearer token to a user ID. Implemented by
// services.AuthService.
type TokenVerifier interface {
	VerifyToken(token string) (uint64, error)
}

// RequireAuth extracts and verifies the bearer token, binding the resolved
// user ID into the request context. Unauthenticated requests never reach
// the handler.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "Missing token")
			c.Abort()
			return
		}

		userID, err := verifier.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}

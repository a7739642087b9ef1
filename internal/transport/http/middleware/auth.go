package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/careerhub/job-board/internal/domain"
	"github.com/gin-gonic/gin"
)

// PrincipalKey is where Auth stores the resolved *domain.User in the gin
// context.
const PrincipalKey = "principal"

const (
	msgUnauthenticated = "Authentication required"
	msgForbidden       = "Invalid or expired token"
)

type tokenVerifier interface {
	Verify(raw string) (string, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Auth is the gatekeeper in front of protected routes. A missing credential
// is 401; a credential that fails verification, or whose subject no longer
// resolves to a user, is 403. On success the user is attached to the context
// and the chain continues. The middleware performs no writes.
func Auth(tokens tokenVerifier, users userFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgUnauthenticated})
			return
		}

		subject, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			// Invalid and expired collapse to the same status on the wire.
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgForbidden})
			return
		}

		user, err := users.FindByID(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				// Token outlived the account.
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgForbidden})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.Set(PrincipalKey, user)
		c.Next()
	}
}

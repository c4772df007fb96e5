package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gatehouse/gatehouse/core"
	"github.com/gatehouse/gatehouse/service"
)

// identityKey is the gin context key the authenticated identity is
// stored under.
const identityKey = "identity"

// IdentityFromContext returns the identity attached by AuthMiddleware
func IdentityFromContext(c *gin.Context) (core.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return core.Identity{}, false
	}
	identity, ok := v.(core.Identity)
	return identity, ok
}

// AuthMiddleware gates every protected route. It extracts the bearer
// token, validates it and re-resolves the user, attaching the resulting
// identity to the request context. All authentication failures collapse
// to the same 401 body; the distinct reason is only logged. Directory
// faults are infrastructure errors, not authentication decisions, and
// surface as 500.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			logger.Debug("request rejected: missing or malformed authorization header",
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token not valid"})
			return
		}

		token := strings.TrimPrefix(auth, "Bearer ")

		identity, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, core.ErrDirectoryUnavailable) {
				logger.Error("directory lookup failed during authentication", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
				return
			}

			logger.Info("request rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("reason", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token not valid"})
			return
		}

		c.Set(identityKey, identity)

		c.Next()
	}
}

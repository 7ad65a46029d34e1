package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/server/internal/apierr"
	"github.com/taskhub/server/internal/logger"
	"github.com/taskhub/server/internal/model"
)

// TokenParser validates bearer tokens and returns their identity claims.
type TokenParser interface {
	Parse(token string) (model.TokenClaims, error)
}

// Authenticate validates bearer tokens and injects the decoded identity
// into the request context. Verification is stateless: signature and
// expiry only, no store lookup, no refresh.
type Authenticate struct {
	tokenManager   TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, contextManager: contextManager, logger: logger}
}

// Handle returns the gin middleware. A missing or malformed Authorization
// header is a client error distinct from a token that fails verification.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			m.logger.Debug("Authenticate middleware: missing bearer token",
				"path", c.Request.URL.Path)
			abortWithError(c, apierr.NewErrMissingToken())
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.tokenManager.Parse(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", c.Request.URL.Path,
				"error", err.Error())
			abortWithError(c, apierr.NewErrInvalidToken())
			return
		}

		ctx := m.contextManager.SetClaimsToContext(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abortWithError(c *gin.Context, apiErr *apierr.APIError) {
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"message": apiErr.Message})
}

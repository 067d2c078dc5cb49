package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devlink/backend/internal/domain/shared"
	"github.com/devlink/backend/internal/infrastructure/auth"
	"github.com/devlink/backend/internal/infrastructure/logger"
	"github.com/devlink/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth context keys
const (
	IdentityKey   = "auth_identity"
	UserIDKey     = "user_id"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// RequireAuth authenticates the request from its bearer token. It runs
// after request validation and before any authorization or lookup, so an
// unauthenticated caller learns nothing about resource existence. A missing
// token is reported distinctly from a rejected one; both are 401.
func RequireAuth(tokens *auth.TokenService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthenticated(c, dto.ErrCodeTokenMissing, "Authorization token is required")
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthenticated(c, dto.ErrCodeTokenInvalid, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthenticated(c, dto.ErrCodeTokenMissing, "Authorization token is required")
			return
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			if log != nil {
				log.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", c.Request.URL.Path),
				)
			}
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				abortUnauthenticated(c, dto.ErrCodeTokenExpired, "Token has expired")
			default:
				abortUnauthenticated(c, dto.ErrCodeTokenInvalid, "Token is not valid")
			}
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, identity.SubjectID.String())

		ctx := c.Request.Context()
		ctx, _ = logger.WithUserID(ctx, logger.FromContext(ctx), identity.SubjectID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, code, message string) {
	requestID := getRequestIDFromContext(c)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// IdentityFromContext retrieves the authenticated identity stored by
// RequireAuth
func IdentityFromContext(c *gin.Context) (shared.Identity, bool) {
	if value, exists := c.Get(IdentityKey); exists {
		if identity, ok := value.(shared.Identity); ok {
			return identity, true
		}
	}
	return shared.Identity{}, false
}

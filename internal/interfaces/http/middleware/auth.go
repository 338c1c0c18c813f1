package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/user/usecases"
	"deskd/internal/infrastructure/auth"
	"deskd/internal/shared/constants"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	blacklist  usecases.TokenBlacklist
	logger     logger.Interface
}

// NewAuthMiddleware builds the JWT guard. blacklist may be nil when redis
// is disabled; revocation checks are then skipped.
func NewAuthMiddleware(jwtService *auth.JWTService, blacklist usecases.TokenBlacklist, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		// Refresh tokens only work against /auth/refresh.
		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if m.blacklist != nil {
			revoked, err := m.blacklist.IsRevoked(c.Request.Context(), token)
			if err != nil {
				m.logger.Errorw("failed to check token blacklist", "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "failed to validate token")
				c.Abort()
				return
			}
			if revoked {
				utils.ErrorResponse(c, http.StatusUnauthorized, "token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))
		c.Set(constants.ContextKeyToken, token)
		if claims.ExpiresAt != nil {
			c.Set(constants.ContextKeyTokenExpiry, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err == nil && claims.TokenType == auth.TokenTypeAccess {
			c.Set(constants.ContextKeyUserID, claims.UserID)
			c.Set(constants.ContextKeyUserRole, string(claims.Role))
		}

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

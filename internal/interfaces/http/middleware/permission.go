package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskd/internal/infrastructure/permission"
	"deskd/internal/shared/constants"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks the caller's role against the policy store.
// Policies are keyed by role name, so the role claim from the token is
// the casbin subject.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role.(string), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

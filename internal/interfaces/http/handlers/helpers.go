package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"deskd/internal/shared/constants"
	"deskd/internal/shared/errors"
)

func currentUserID(c *gin.Context) uint {
	if v, exists := c.Get(constants.ContextKeyUserID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func currentUserRole(c *gin.Context) string {
	if v, exists := c.Get(constants.ContextKeyUserRole); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}

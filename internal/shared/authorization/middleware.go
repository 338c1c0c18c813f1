package authorization

import (
	"github.com/gin-gonic/gin"

	"deskd/internal/shared/constants"
)

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !role.IsStaff() {
			c.JSON(403, gin.H{
				"error": "staff access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

type OwnedResource interface {
	GetOwnerID() uint
}

func CanAccessResource(userID uint, userRole UserRole, resource OwnedResource) bool {
	if userRole.IsStaff() {
		return true
	}
	return userID == resource.GetOwnerID()
}

func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsStaff() {
		return true
	}
	return userID == resourceOwnerID
}

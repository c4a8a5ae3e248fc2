package middleware

import (
	"thesis-portal/internal/auth"
	"thesis-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// ContextRoleKey — под этим ключом лежит роль, определённая ResolveRole.
const ContextRoleKey = "Role"

func ResolveRole(resolver auth.RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextRoleKey, resolver.Resolve(c))
		c.Next()
	}
}

// CurrentRole — роль текущего запроса, аноним если ResolveRole не отработал.
func CurrentRole(c *gin.Context) models.Role {
	if v, ok := c.Get(ContextRoleKey); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return models.RoleAnonymous
}

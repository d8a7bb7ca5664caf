package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
	"github.com/tahmid-dev/formbuilder-go/pkg/utils"
)

// Auth holds the authorization predicates applied after JWTAuth.
type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

// RequireStaff admits any role other than plain user.
func (a *Auth) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			response.Unauthorized(c, "Authorization required")
			c.Abort()
			return
		}
		if !user.IsStaff(claims.Role) {
			response.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole admits only the listed roles. super_admin always passes.
func (a *Auth) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			response.Unauthorized(c, "Authorization required")
			c.Abort()
			return
		}
		if claims.Role == user.RoleSuperAdmin {
			c.Next()
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "Insufficient role")
		c.Abort()
	}
}

// RequireCapability admits roles granting the named capability.
func (a *Auth) RequireCapability(capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			response.Unauthorized(c, "Authorization required")
			c.Abort()
			return
		}
		if !user.HasCapability(claims.Role, capability) {
			response.Forbidden(c, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

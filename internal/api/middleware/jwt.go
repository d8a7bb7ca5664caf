package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/user"
	"github.com/tahmid-dev/formbuilder-go/internal/repository"
	"github.com/tahmid-dev/formbuilder-go/pkg/response"
	"github.com/tahmid-dev/formbuilder-go/pkg/types"
)

// GenerateToken issues a signed token for a user.
var GenerateToken = func(u *user.User, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and extracts claims.
func ParseToken(tokenStr, secret string) (*types.Claims, error) {
	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// JWTAuth validates the bearer token and re-fetches the user so that a
// deactivated account is rejected on its next request even with a
// still-valid token.
func JWTAuth(repos *repository.Repos, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization required")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		claims, err := ParseToken(parts[1], secret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		u, err := repos.User.GetUserByID(claims.UserID)
		if err != nil || !u.IsActive {
			response.Unauthorized(c, "Account is inactive or no longer exists")
			c.Abort()
			return
		}

		// Role changes take effect immediately, not at token refresh.
		claims.Role = u.Role
		c.Set("claims", claims)
		c.Set("current_user", &u)
		c.Next()
	}
}

// CurrentUser returns the user loaded by JWTAuth.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get("current_user")
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}

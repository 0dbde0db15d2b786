package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Chopaholic/MotorAdverts/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenChecker reports whether a bearer token has been revoked (signed out).
type TokenChecker interface {
	IsDenied(ctx context.Context, token string) (bool, error)
}

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return authMiddleware(jwtService, nil)
}

// AuthMiddlewareWithDenylist additionally rejects tokens revoked via sign-out.
func AuthMiddlewareWithDenylist(jwtService *jwt.Service, denylist TokenChecker) gin.HandlerFunc {
	return authMiddleware(jwtService, denylist)
}

func authMiddleware(jwtService *jwt.Service, denylist TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if denylist != nil {
			denied, err := denylist.IsDenied(c.Request.Context(), parts[1])
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify token"})
				c.Abort()
				return
			}
			if denied {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("token", parts[1])

		c.Next()
	}
}

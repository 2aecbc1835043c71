package middleware

import (
	"net/http"
	"strings"
	"time"

	"skillswap_backend/internal/auth"
	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/models"
	"skillswap_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
)

var nowFunc = time.Now

// claimsCache memoizes parsed token claims. Signature verification is the
// expensive part of every authenticated request; the cache is bounded and
// expiry is still re-checked on each hit.
var claimsCache, _ = lru.New(2048)

func parseTokenCached(tokenStr string) (*auth.Claims, error) {
	if v, ok := claimsCache.Get(tokenStr); ok {
		claims := v.(*auth.Claims)
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(nowFunc()) {
			claimsCache.Remove(tokenStr)
			return nil, auth.ErrTokenExpired
		}
		return claims, nil
	}

	claims, err := auth.ParseToken(tokenStr)
	if err != nil {
		return nil, err
	}
	claimsCache.Add(tokenStr, claims)
	return claims, nil
}

// AuthMiddleware validates the Bearer token and stores identity in the
// request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := parseTokenCached(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if err := auth.ValidateRole(claims.Role); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RoleMiddleware restricts a route group to a single role.
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: no role"})
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: invalid role type"})
			return
		}

		if models.UserRole(roleStr) != requiredRole {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user's ID from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}

// GetUserRole extracts the authenticated user's role from the context.
func GetUserRole(c *gin.Context) models.UserRole {
	roleVal, exists := c.Get("role")
	if !exists {
		return ""
	}

	role, ok := roleVal.(string)
	if !ok {
		return ""
	}

	return models.UserRole(role)
}

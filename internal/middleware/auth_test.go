package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"skillswap_backend/internal/auth"
	"skillswap_backend/internal/config"
	"skillswap_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })

	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c),
			"role":    string(GetUserRole(c)),
		})
	})
	return r
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	r := setupAuthTest(t)

	token, err := auth.GenerateToken("user-42", "user")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedToken(t *testing.T) {
	r := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })

	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	r := gin.New()
	r.Use(AuthMiddleware(), RoleMiddleware(models.UserRoleAdmin))
	r.GET("/admin-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	userToken, err := auth.GenerateToken("user-1", "user")
	require.NoError(t, err)
	adminToken, err := auth.GenerateToken("admin-1", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

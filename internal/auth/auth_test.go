package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tenant-calendar-backend/internal/database/models"
	"tenant-calendar-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret: "test-signing-key",
		Issuer:    "tenant-calendar-backend",
		TokenTTL:  time.Hour,
	}
}

func testService(t *testing.T) *AuthService {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non positive ttl", func(t *testing.T) {
		config := testConfig()
		config.TokenTTL = 0

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token TTL")
	})
}

func TestLoadAuthConfigFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_TOKEN_TTL", "")

	path := filepath.Join(t.TempDir(), "auth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt_secret: file-secret\nissuer: calendar-test\ntoken_ttl: 2h\n"), 0o600))

	config, err := LoadAuthConfig(path, AuthConfig{})
	require.NoError(t, err)
	assert.Equal(t, "file-secret", config.JWTSecret)
	assert.Equal(t, "calendar-test", config.Issuer)
	assert.Equal(t, 2*time.Hour, config.TokenTTL)
}

func TestLoadAuthConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_TOKEN_TTL", "30m")

	config, err := LoadAuthConfig("", AuthConfig{JWTSecret: "fallback"})
	require.NoError(t, err)
	assert.Equal(t, "env-secret", config.JWTSecret)
	assert.Equal(t, "tenant-calendar-backend", config.Issuer)
	assert.Equal(t, 30*time.Minute, config.TokenTTL)
}

func TestJWTOperations(t *testing.T) {
	service := testService(t)
	tenantID := uuid.New()
	identity := Identity{UserID: uuid.New(), Role: models.RoleAdmin, TenantID: &tenantID}

	token, err := service.GenerateJWT(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID.String(), claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	require.NotNil(t, claims.TenantID)
	assert.Equal(t, tenantID.String(), *claims.TenantID)

	parsed, err := service.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, parsed.UserID)
	assert.Equal(t, tenantID, *parsed.TenantID)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTWithoutTenant(t *testing.T) {
	service := testService(t)

	token, err := service.GenerateJWT(Identity{UserID: uuid.New(), Role: models.RoleSuperAdmin})
	require.NoError(t, err)

	identity, err := service.Authenticate(token)
	require.NoError(t, err)
	assert.Nil(t, identity.TenantID)
	assert.True(t, identity.IsSuperAdmin())
}

func TestJWTExpiration(t *testing.T) {
	service := testService(t)
	issued := time.Now().Add(-2 * time.Hour)
	service.now = func() time.Time { return issued }

	token, err := service.GenerateJWT(Identity{UserID: uuid.New(), Role: models.RoleUser})
	require.NoError(t, err)

	service.now = time.Now
	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTRejectsOtherSecretAndMethod(t *testing.T) {
	service := testService(t)

	other, err := NewAuthService(&AuthConfig{JWTSecret: "other", Issuer: "tenant-calendar-backend", TokenTTL: time.Hour})
	require.NoError(t, err)
	token, err := other.GenerateJWT(Identity{UserID: uuid.New(), Role: models.RoleUser})
	require.NoError(t, err)
	_, err = service.ValidateJWT(token)
	assert.Error(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: uuid.NewString(), Role: "USER"})
	none, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = service.ValidateJWT(none)
	assert.Error(t, err)
}

func TestClaimsIdentity(t *testing.T) {
	t.Run("invalid role", func(t *testing.T) {
		_, err := (&AuthClaims{UserID: uuid.NewString(), Role: "OWNER"}).Identity()
		assert.Error(t, err)
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := (&AuthClaims{UserID: "42", Role: "USER"}).Identity()
		assert.Error(t, err)
	})

	t.Run("empty tenant", func(t *testing.T) {
		empty := ""
		identity, err := (&AuthClaims{UserID: uuid.NewString(), Role: "USER", TenantID: &empty}).Identity()
		require.NoError(t, err)
		assert.Nil(t, identity.TenantID)
	})
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		role       models.Role
		capability Capability
		allowed    bool
	}{
		{models.RoleUser, CapCalendarRead, true},
		{models.RoleUser, CapOrgEventWrite, true},
		{models.RoleUser, CapSubscriptionManage, false},
		{models.RoleUser, CapCatalogManage, false},
		{models.RoleUser, CapOrgEventBulk, false},
		{models.RoleAdmin, CapSubscriptionManage, true},
		{models.RoleAdmin, CapOrgEventBulk, true},
		{models.RoleAdmin, CapCatalogManage, false},
		{models.RoleAdmin, CapTenantManage, false},
		{models.RoleSuperAdmin, CapCatalogManage, true},
		{models.RoleSuperAdmin, CapTenantManage, true},
		{models.RoleSuperAdmin, CapOrgEventBulk, true},
		{models.Role("GUEST"), CapCalendarRead, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+" "+string(tt.capability), func(t *testing.T) {
			assert.Equal(t, tt.allowed, Can(tt.role, tt.capability))
		})
	}
}

func newMiddlewareRouter(t *testing.T, service *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	api := router.Group("/api/v1", middleware.RequireAuth())
	api.GET("/whoami", func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"user_id":    identity.UserID.String(),
			"ctx_user":   c.Request.Context().Value(logger.UserIDKey),
			"ctx_tenant": c.Request.Context().Value(logger.TenantIDKey),
		})
	})
	api.POST("/catalogs", middleware.RequireCapability(CapCatalogManage), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	api.GET("/tenants/:tenantId/subscriptions", middleware.RequireTenantAccess("tenantId"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func request(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	service := testService(t)
	router := newMiddlewareRouter(t, service)

	tenantID := uuid.New()
	userToken, err := service.GenerateJWT(Identity{UserID: uuid.New(), Role: models.RoleUser, TenantID: &tenantID})
	require.NoError(t, err)
	superToken, err := service.GenerateJWT(Identity{UserID: uuid.New(), Role: models.RoleSuperAdmin})
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		w := request(router, http.MethodGet, "/api/v1/whoami", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
		req.Header.Set("Authorization", userToken)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("identity reaches the request context", func(t *testing.T) {
		w := request(router, http.MethodGet, "/api/v1/whoami", userToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), tenantID.String())
	})

	t.Run("capability denied", func(t *testing.T) {
		w := request(router, http.MethodPost, "/api/v1/catalogs", userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("capability granted", func(t *testing.T) {
		w := request(router, http.MethodPost, "/api/v1/catalogs", superToken)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("own tenant", func(t *testing.T) {
		w := request(router, http.MethodGet, "/api/v1/tenants/"+tenantID.String()+"/subscriptions", userToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other tenant", func(t *testing.T) {
		w := request(router, http.MethodGet, "/api/v1/tenants/"+uuid.NewString()+"/subscriptions", userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("super admin crosses tenants", func(t *testing.T) {
		w := request(router, http.MethodGet, "/api/v1/tenants/"+uuid.NewString()+"/subscriptions", superToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid tenant id", func(t *testing.T) {
		w := request(router, http.MethodGet, "/api/v1/tenants/not-a-uuid/subscriptions", userToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

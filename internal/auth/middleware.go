package auth

import (
	"net/http"
	"strings"

	apperrors "tenant-calendar-backend/internal/errors"
	"tenant-calendar-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "identity"

// AuthMiddleware provides JWT authentication and authorization middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token and stores the caller's identity
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		identity, err := m.service.Authenticate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireCapability rejects callers whose role lacks capability
func (m *AuthMiddleware) RequireCapability(capability Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		if !Can(identity.Role, capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrInsufficientRole.Error()})
			return
		}

		c.Next()
	}
}

// RequireTenantAccess rejects callers acting on another tenant than their own.
// Super admins may access any tenant.
func (m *AuthMiddleware) RequireTenantAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		tenantID, err := uuid.Parse(c.Param(param))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
			return
		}

		if !identity.CanAccessTenant(tenantID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrCrossTenantAccess.Error()})
			return
		}

		c.Next()
	}
}

// SetIdentity stores identity on the gin context and on the request context
// so that loggers pick up the user and tenant.
func SetIdentity(c *gin.Context, identity *Identity) {
	c.Set(identityKey, identity)

	ctx := logger.ContextWith(c.Request.Context(), logger.UserIDKey, identity.UserID.String())
	if identity.TenantID != nil {
		ctx = logger.ContextWith(ctx, logger.TenantIDKey, identity.TenantID.String())
	}
	c.Request = c.Request.WithContext(ctx)
}

// GetIdentity is a helper function to extract the caller's identity from context
func GetIdentity(c *gin.Context) (*Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*Identity)
	return identity, ok
}

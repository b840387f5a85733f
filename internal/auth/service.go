package auth

import (
	"fmt"
	"time"

	"tenant-calendar-backend/internal/database/models"
	apperrors "tenant-calendar-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the authenticated caller. TenantID is nil for users that do
// not belong to an organization.
type Identity struct {
	UserID   uuid.UUID
	Role     models.Role
	TenantID *uuid.UUID
}

// IsSuperAdmin reports whether the caller can act across tenants
func (i *Identity) IsSuperAdmin() bool {
	return i.Role == models.RoleSuperAdmin
}

// CanAccessTenant reports whether the caller may touch tenantID's data
func (i *Identity) CanAccessTenant(tenantID uuid.UUID) bool {
	if i.IsSuperAdmin() {
		return true
	}
	return i.TenantID != nil && *i.TenantID == tenantID
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string  `json:"user_id" example:"7f0c1c8e-3f0e-4c55-a1c2-8f6f4d7b2a10"`
	Role                 string  `json:"role" example:"ADMIN"`
	TenantID             *string `json:"tenant_id" example:"2b1d5a8c-9e34-4c1f-8d3e-1a2b3c4d5e6f"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Identity converts the claims into an Identity
func (c *AuthClaims) Identity() (*Identity, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}

	role := models.Role(c.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role claim %q", c.Role)
	}

	identity := &Identity{UserID: userID, Role: role}
	if c.TenantID != nil && *c.TenantID != "" {
		tenantID, err := uuid.Parse(*c.TenantID)
		if err != nil {
			return nil, fmt.Errorf("invalid tenant_id claim: %w", err)
		}
		identity.TenantID = &tenantID
	}
	return identity, nil
}

// AuthService issues and validates bearer tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{config: config, now: time.Now}, nil
}

// GenerateJWT signs a token for identity
func (s *AuthService) GenerateJWT(identity Identity) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: identity.UserID.String(),
		Role:   string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   identity.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if identity.TenantID != nil {
		tenantID := identity.TenantID.String()
		claims.TenantID = &tenantID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("invalid token: %v", err))
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// Authenticate validates a token and returns the caller's identity
func (s *AuthService) Authenticate(tokenString string) (*Identity, error) {
	claims, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, err
	}

	identity, err := claims.Identity()
	if err != nil {
		return nil, apperrors.NewAuthenticationError(err.Error())
	}
	return identity, nil
}

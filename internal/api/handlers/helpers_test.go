package handlers

import (
	"tenant-calendar-backend/internal/auth"
	"tenant-calendar-backend/internal/database/models"

	"github.com/google/uuid"
)

func memberOf(tenantID uuid.UUID, role models.Role) *auth.Identity {
	return &auth.Identity{UserID: uuid.New(), Role: role, TenantID: &tenantID}
}

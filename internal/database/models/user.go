package models

import (
	"strings"

	"github.com/google/uuid"
)

// User is a person who signs in to the platform. Users without a tenant can
// only act as platform administrators.
type User struct {
	BaseModel
	TenantID  *uuid.UUID `json:"tenantId,omitempty" gorm:"type:uuid;index"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName string     `json:"firstName" gorm:"not null;size:100" validate:"required,max=100"`
	LastName  string     `json:"lastName" gorm:"not null;size:100" validate:"required,max=100"`
	Role      Role       `json:"role" gorm:"type:varchar(20);not null;default:'USER'"`
	IsActive  bool       `json:"isActive" gorm:"not null;default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// DisplayName returns "First Last", falling back to the email address
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

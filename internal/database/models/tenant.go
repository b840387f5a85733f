package models

// Tenant represents an organization using the platform; the unit of data isolation
type Tenant struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Slug     string `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Industry string `json:"industry" gorm:"size:100"`
	Country  string `json:"country" gorm:"size:100"`
	IsActive bool   `json:"isActive" gorm:"not null;default:true"`

	// Relationships
	Users              []User                `json:"users,omitempty" gorm:"foreignKey:TenantID"`
	OrganizationEvents []OrganizationEvent   `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Subscriptions      []CatalogSubscription `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	EventSubscriptions []EventSubscription   `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

package models

// Catalog is a named, global collection of reusable events
type Catalog struct {
	BaseModel
	Name        string      `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string      `json:"description" gorm:"type:text"`
	Type        CatalogType `json:"type" gorm:"type:varchar(40);not null;index" validate:"required"`
	IsActive    bool        `json:"isActive" gorm:"not null;default:true"`

	// Relationships
	Events []CatalogEvent `json:"events,omitempty" gorm:"foreignKey:CatalogID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Catalog
func (Catalog) TableName() string {
	return "catalogs"
}

package models

// CatalogType defines the kinds of global catalogs
type CatalogType string

const (
	CatalogTypeWorldSpecialDays CatalogType = "WORLD_SPECIAL_DAYS"
	CatalogTypeNationalHolidays CatalogType = "NATIONAL_HOLIDAYS"
	CatalogTypeRegionalHolidays CatalogType = "REGIONAL_HOLIDAYS"
)

// Role defines the role a user holds in the platform
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// CatalogTypes lists every catalog type in display order
var CatalogTypes = []CatalogType{
	CatalogTypeWorldSpecialDays,
	CatalogTypeNationalHolidays,
	CatalogTypeRegionalHolidays,
}

// IsValid checks if the CatalogType is valid
func (t CatalogType) IsValid() bool {
	switch t {
	case CatalogTypeWorldSpecialDays, CatalogTypeNationalHolidays, CatalogTypeRegionalHolidays:
		return true
	}
	return false
}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

package auth

import "tenant-calendar-backend/internal/database/models"

// Capability names an action guarded at the HTTP boundary
type Capability string

const (
	CapCalendarRead       Capability = "calendar:read"
	CapSubscriptionRead   Capability = "subscription:read"
	CapSubscriptionManage Capability = "subscription:manage"
	CapOrgEventRead       Capability = "orgevent:read"
	CapOrgEventWrite      Capability = "orgevent:write"
	CapOrgEventBulk       Capability = "orgevent:bulk"
	CapCatalogRead        Capability = "catalog:read"
	CapCatalogManage      Capability = "catalog:manage"
	CapTenantRead         Capability = "tenant:read"
	CapTenantUpdate       Capability = "tenant:update"
	CapTenantManage       Capability = "tenant:manage"
)

var memberCapabilities = []Capability{
	CapCalendarRead,
	CapSubscriptionRead,
	CapOrgEventRead,
	CapOrgEventWrite,
	CapCatalogRead,
	CapTenantRead,
	CapTenantUpdate,
}

// capabilities is the only place roles are consulted
var capabilities = map[models.Role]map[Capability]struct{}{
	models.RoleUser: capabilitySet(memberCapabilities...),
	models.RoleAdmin: capabilitySet(append(memberCapabilities,
		CapSubscriptionManage,
		CapOrgEventBulk,
	)...),
	models.RoleSuperAdmin: capabilitySet(append(memberCapabilities,
		CapSubscriptionManage,
		CapOrgEventBulk,
		CapCatalogManage,
		CapTenantManage,
	)...),
}

func capabilitySet(caps ...Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Can reports whether role grants capability
func Can(role models.Role, capability Capability) bool {
	_, ok := capabilities[role][capability]
	return ok
}

package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		role string
		cap  Capability
		want bool
	}{
		{"admin manages users", "ADMIN", CapManageUsers, true},
		{"admin reaches categories", "ADMIN", CapCategories, true},
		{"developer manages users", "DEVELOPER", CapManageUsers, true},
		{"editor reaches products", "EDITOR", CapProducts, true},
		{"editor reaches banners", "EDITOR", CapBanners, true},
		{"editor reaches dashboard", "EDITOR", CapDashboard, true},
		{"editor reaches upload", "EDITOR", CapUpload, true},
		{"editor blocked from categories", "EDITOR", CapCategories, false},
		{"editor blocked from users", "EDITOR", CapManageUsers, false},
		{"editor blocked from settings", "EDITOR", CapSettings, false},
		{"unknown role holds nothing", "VIEWER", CapDashboard, false},
		{"empty role holds nothing", "", CapProducts, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.cap))
		})
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("ADMIN"))
	assert.True(t, Known("DEVELOPER"))
	assert.True(t, Known("EDITOR"))
	assert.False(t, Known("SUPERUSER"))
	assert.False(t, Known(""))
}

func TestCapabilityForPath(t *testing.T) {
	const prefix = "/api/admin"

	tests := []struct {
		path string
		want Capability
	}{
		{"/api/admin", CapDashboard},
		{"/api/admin/", CapDashboard},
		{"/api/admin/dashboard", CapDashboard},
		{"/api/admin/products", CapProducts},
		{"/api/admin/products/0b9c9f2e", CapProducts},
		{"/api/admin/categories/abc/def", CapCategories},
		{"/api/admin/site-settings", CapSettings},
		{"/api/admin/users/123", CapManageUsers},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, CapabilityForPath(tt.path, prefix))
		})
	}
}

func TestCapabilityForPathUnknownSegmentClosedToEditor(t *testing.T) {
	cap := CapabilityForPath("/api/admin/reports", "/api/admin")
	assert.False(t, Allowed("EDITOR", cap))
	assert.True(t, Allowed("ADMIN", cap))
	assert.True(t, Allowed("DEVELOPER", cap))
}

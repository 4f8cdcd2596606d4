package authz

import "strings"

// Capability names one area of the back office a role may manage. The
// same table backs both the route-level gate and in-handler checks, so a
// role's access is defined in exactly one place.
type Capability string

const (
	CapDashboard    Capability = "dashboard"
	CapProducts     Capability = "products"
	CapCategories   Capability = "categories"
	CapBrands       Capability = "brands"
	CapBanners      Capability = "banners"
	CapFAQs         Capability = "faqs"
	CapAbout        Capability = "about"
	CapContact      Capability = "contact"
	CapMarketplaces Capability = "marketplaces"
	CapSettings     Capability = "site-settings"
	CapMessages     Capability = "messages"
	CapActivity     Capability = "activity"
	CapUpload       Capability = "upload"
	CapManageUsers  Capability = "users"
)

type policy struct {
	unrestricted bool
	caps         []Capability
}

// EDITOR is limited to products, banners and the dashboard, plus the
// upload endpoint their forms depend on. ADMIN and DEVELOPER hold every
// capability, present and future.
var rolePolicies = map[string]policy{
	"ADMIN":     {unrestricted: true},
	"DEVELOPER": {unrestricted: true},
	"EDITOR":    {caps: []Capability{CapDashboard, CapProducts, CapBanners, CapUpload}},
}

// Allowed reports whether the given role holds the capability. Unknown
// roles hold nothing.
func Allowed(role string, cap Capability) bool {
	p, ok := rolePolicies[role]
	if !ok {
		return false
	}
	if p.unrestricted {
		return true
	}
	for _, granted := range p.caps {
		if granted == cap {
			return true
		}
	}
	return false
}

// Known reports whether the role exists in the policy table at all.
func Known(role string) bool {
	_, ok := rolePolicies[role]
	return ok
}

// CapabilityForPath maps an admin request path to the capability required
// to reach it, based on the first segment after the admin prefix. An
// unrecognized segment maps to itself, which only unrestricted roles
// hold, so new admin screens are closed to EDITOR by default.
func CapabilityForPath(path, adminPrefix string) Capability {
	rest := strings.TrimPrefix(path, adminPrefix)
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" {
		return CapDashboard
	}

	segment := rest
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		segment = rest[:idx]
	}

	return Capability(segment)
}

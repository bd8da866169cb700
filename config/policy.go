package config

// ListingScopeKind controls whether GET /tools returns every tool or only
// the acting user's.
type ListingScopeKind string

const (
	ListingGlobal      ListingScopeKind = "global"
	ListingOwnerScoped ListingScopeKind = "owner"
)

// DenialKind controls what a cross-owner access to a single tool returns:
// not_found hides the tool's existence, forbidden reveals it.
type DenialKind string

const (
	DenyNotFound  DenialKind = "not_found"
	DenyForbidden DenialKind = "forbidden"
)

var ListingScope ListingScopeKind
var CrossOwnerDenial DenialKind

func init() {
	ListingScope = ListingScopeKind(getEnv("TOOL_LISTING_SCOPE", string(ListingGlobal)))
	if ListingScope != ListingOwnerScoped {
		ListingScope = ListingGlobal
	}

	CrossOwnerDenial = DenialKind(getEnv("TOOL_CROSS_OWNER_DENIAL", string(DenyNotFound)))
	if CrossOwnerDenial != DenyForbidden {
		CrossOwnerDenial = DenyNotFound
	}
}

package model

// OwnerKind describes what kind of account owns a repository.
//
// The zero value is OwnerUnknown so that an unresolved owner never
// masquerades as a user or an organization.
type OwnerKind int

const (
	// OwnerUnknown is used when the directory service could not classify the
	// identity (not found, failed lookup, rate limit exhausted).
	OwnerUnknown OwnerKind = iota

	// OwnerUser is an individual account.
	OwnerUser

	// OwnerOrganization is a group/organization account.
	OwnerOrganization
)

// String returns the value written into the "Owner Type" column.
func (k OwnerKind) String() string {
	switch k {
	case OwnerUser:
		return "User"
	case OwnerOrganization:
		return "Organization"
	default:
		return "Unknown"
	}
}

// ParseOwnerKind is the inverse of String. Unrecognized input yields OwnerUnknown.
func ParseOwnerKind(s string) OwnerKind {
	switch s {
	case "User":
		return OwnerUser
	case "Organization":
		return OwnerOrganization
	default:
		return OwnerUnknown
	}
}

// UnknownCountry is the sentinel country used when no inference rule matches.
const UnknownCountry = "Unknown"

// Owner is the resolved metadata for one owner identity.
type Owner struct {
	// Identity is the account name taken from the repository URL.
	Identity string `json:"identity"`

	// Kind is the owner classification.
	Kind OwnerKind `json:"kind"`

	// Location is the free-text location from the account profile.
	// Nil when the profile has no location or the lookup failed.
	Location *string `json:"location,omitempty"`
}

// UnknownOwner returns the record stored for identities that could not be resolved.
func UnknownOwner(identity string) Owner {
	return Owner{Identity: identity, Kind: OwnerUnknown}
}

// LocationString returns the location or the empty string.
func (o Owner) LocationString() string {
	if o.Location == nil {
		return ""
	}
	return *o.Location
}

package model

// Role values stored in profiles.role.  Only "admin" unlocks the
// important toggle and the admin dashboard regions; every other value
// is an ordinary member.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Profile is the public-facing record for a user, keyed by the same
// UUID as the account it belongs to.  This service reads profiles but
// never writes them; they are maintained by an onboarding process.
//
// Fields:
//  ID   – primary key, equal to the owning user's ID.
//  Name – display name used in the dashboard greeting, may be empty.
//  Role – "admin" or an ordinary member role.
//  Team – team label, informational only.
type Profile struct {
	ID   string `json:"id"`   // profiles.id
	Name string `json:"name"` // profiles.name
	Role string `json:"role"` // profiles.role
	Team string `json:"team"` // profiles.team
}

// IsAdmin reports whether the profile carries the admin role.
func (p Profile) IsAdmin() bool { return p.Role == RoleAdmin }

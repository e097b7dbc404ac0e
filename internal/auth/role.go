package auth

// Role is the closed set of identities the portal knows about. It is
// compared by value and is independent of the configured display names.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// LandingPath is where a freshly logged-in role is redirected.
func (r Role) LandingPath() string {
	if r == RoleAdmin {
		return "/dashboard"
	}
	return "/submit"
}

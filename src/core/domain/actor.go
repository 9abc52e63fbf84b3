package domain

import "slices"

// Actor is the authenticated caller of a guarded operation.
type Actor struct {
	// UserID is the caller's public id.
	UserID    string
	Roles     []string
	IPAddress string
	UserAgent string
}

// HasAnyRole reports whether the actor holds at least one of roles.
func (a Actor) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if slices.Contains(a.Roles, r) {
			return true
		}
	}
	return false
}

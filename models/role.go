package models

import "fmt"

// Role is the closed set of access-control roles a user can hold.
//
// Roles are stored as plain strings in the database but are always converted
// through [ParseRole] before any authorization decision, so an unknown or
// mistyped role value is rejected at the boundary instead of silently
// granting or denying access.
type Role string

const (
	// RoleUser is the default role assigned to every account at creation.
	RoleUser Role = "user"

	// RoleAdmin grants access to the privileged listing and deletion
	// operations. It does not grant the right to edit other users' notes.
	RoleAdmin Role = "admin"

	// RoleModerator is reserved. It parses and persists like any other role
	// but currently grants nothing beyond RoleUser.
	RoleModerator Role = "moderator"
)

// ParseRole converts a raw string (typically read from the users table) into
// a Role. Unknown values are rejected so that a corrupted or hand-edited role
// column never reaches the authorization policy.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleModerator:
		return RoleModerator, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// String returns the database representation of the role.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

package rbac

import "strings"

// Canonical role names. Keep these stable; they are part of the auth contract
// with the client. Route declarations and persisted roles may arrive in any
// case; normalize at the boundary instead of comparing raw strings.
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

var canonical = []string{RoleAdmin, RoleManager, RoleEmployee}

// Normalize maps any case variant of a known role to its canonical form.
// Unknown role names pass through trimmed, so a future role added in the
// database does not get silently mangled.
func Normalize(role string) string {
	role = strings.TrimSpace(role)
	for _, c := range canonical {
		if strings.EqualFold(role, c) {
			return c
		}
	}
	return role
}

// Matches reports whether two role names refer to the same role.
func Matches(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

package role

import "time"

// Role is a named authorization level (Admin, Manager, Employee, ...).
// The name domain is open: new roles may be created through the API, but the
// canonical three are seeded at install time and referenced by route metadata.
type Role struct {
	RoleID      int64     `json:"roleId" db:"role_id"`
	RoleName    string    `json:"roleName" db:"role_name"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

package user

import "time"

// User is a login account. It may be linked to an employee record; purely
// administrative accounts are not.
// PasswordHash is bcrypt and never serialized.
type User struct {
	UserID       int64     `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	EmployeeID   *int64    `json:"employeeId,omitempty" db:"employee_id"`
	EmployeeName string    `json:"employeeName,omitempty" db:"employee_name"`
	RoleID       int64     `json:"roleId" db:"role_id"`
	RoleName     string    `json:"roleName,omitempty" db:"role_name"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

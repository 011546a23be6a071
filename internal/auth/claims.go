package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the only supported JWT claims shape for this service.
// The custom fields mirror the login response so the browser/CLI client can
// rebuild its principal record from the token alone.
// EmployeeID is optional: administrative accounts need not map to an
// employee record.
type Claims struct {
	jwt.RegisteredClaims

	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"roleName"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
}

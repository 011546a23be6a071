package employee

import "time"

// Employee is the HR record. Wire format uses the camelCase field names the
// browser client expects; HireDate is a plain YYYY-MM-DD string.
type Employee struct {
	EmployeeID  int64     `json:"employeeId" db:"employee_id"`
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty" db:"phone_number"`
	Department  string    `json:"department,omitempty" db:"department"`
	Position    string    `json:"position,omitempty" db:"position"`
	HireDate    string    `json:"hireDate,omitempty" db:"hire_date"`
	Salary      float64   `json:"salary,omitempty" db:"salary"`
	RoleID      int64     `json:"roleId" db:"role_id"`
	RoleName    string    `json:"roleName,omitempty" db:"role_name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

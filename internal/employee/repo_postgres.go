package employee

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresRepo persists employees. Reads join roles to resolve role_name.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const employeeSelect = `
SELECT e.employee_id, e.first_name, e.last_name, e.email,
       COALESCE(e.phone_number, ''), COALESCE(e.department, ''), COALESCE(e.position, ''),
       COALESCE(TO_CHAR(e.hire_date, 'YYYY-MM-DD'), ''), COALESCE(e.salary, 0),
       e.role_id, r.role_name, e.created_at, e.updated_at
FROM employees e
JOIN roles r ON r.role_id = e.role_id
`

func scanEmployee(row interface{ Scan(...any) error }) (Employee, error) {
	var v Employee
	err := row.Scan(
		&v.EmployeeID, &v.FirstName, &v.LastName, &v.Email,
		&v.PhoneNumber, &v.Department, &v.Position,
		&v.HireDate, &v.Salary,
		&v.RoleID, &v.RoleName, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Employee{}, ErrNotFound
		}
		return Employee{}, err
	}
	return v, nil
}

func (r *PostgresRepo) queryMany(ctx context.Context, q string, args ...any) ([]Employee, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		v, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context) ([]Employee, error) {
	return r.queryMany(ctx, employeeSelect+` ORDER BY e.employee_id`)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Employee, error) {
	return scanEmployee(r.db.QueryRowContext(ctx, employeeSelect+` WHERE e.employee_id = $1`, id))
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (Employee, error) {
	return scanEmployee(r.db.QueryRowContext(ctx, employeeSelect+` WHERE LOWER(e.email) = LOWER($1)`, email))
}

func (r *PostgresRepo) SearchByName(ctx context.Context, name string) ([]Employee, error) {
	const q = ` WHERE (e.first_name || ' ' || e.last_name) ILIKE '%' || $1 || '%' ORDER BY e.employee_id`
	return r.queryMany(ctx, employeeSelect+q, name)
}

func (r *PostgresRepo) ListByDepartment(ctx context.Context, department string) ([]Employee, error) {
	return r.queryMany(ctx, employeeSelect+` WHERE LOWER(e.department) = LOWER($1) ORDER BY e.employee_id`, department)
}

func (r *PostgresRepo) ListByRole(ctx context.Context, roleID int64) ([]Employee, error) {
	return r.queryMany(ctx, employeeSelect+` WHERE e.role_id = $1 ORDER BY e.employee_id`, roleID)
}

func (r *PostgresRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM employees WHERE LOWER(email) = LOWER($1)`, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepo) Create(ctx context.Context, v Employee) (Employee, error) {
	const q = `
INSERT INTO employees (first_name, last_name, email, phone_number, department, position, hire_date, salary, role_id, created_at, updated_at)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, '')::date, $8, $9, NOW(), NOW())
RETURNING employee_id
`
	var id int64
	if err := r.db.QueryRowContext(ctx, q,
		v.FirstName, v.LastName, v.Email, v.PhoneNumber, v.Department, v.Position, v.HireDate, v.Salary, v.RoleID,
	).Scan(&id); err != nil {
		return Employee{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepo) Update(ctx context.Context, v Employee) (Employee, error) {
	const q = `
UPDATE employees
SET first_name = $2, last_name = $3, email = $4, phone_number = NULLIF($5, ''),
    department = NULLIF($6, ''), position = NULLIF($7, ''), hire_date = NULLIF($8, '')::date,
    salary = $9, role_id = $10, updated_at = NOW()
WHERE employee_id = $1
`
	res, err := r.db.ExecContext(ctx, q,
		v.EmployeeID, v.FirstName, v.LastName, v.Email, v.PhoneNumber, v.Department, v.Position, v.HireDate, v.Salary, v.RoleID,
	)
	if err != nil {
		return Employee{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Employee{}, err
	}
	if n == 0 {
		return Employee{}, ErrNotFound
	}
	return r.GetByID(ctx, v.EmployeeID)
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

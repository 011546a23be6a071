package user

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresRepo persists user accounts. Reads join roles and employees to
// resolve display names.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const userSelect = `
SELECT u.user_id, u.username, u.email, u.password_hash, u.employee_id,
       COALESCE(e.first_name || ' ' || e.last_name, ''),
       u.role_id, r.role_name, u.is_active, u.created_at, u.updated_at
FROM users u
JOIN roles r ON r.role_id = u.role_id
LEFT JOIN employees e ON e.employee_id = u.employee_id
`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var v User
	var empID sql.NullInt64
	err := row.Scan(
		&v.UserID, &v.Username, &v.Email, &v.PasswordHash, &empID,
		&v.EmployeeName,
		&v.RoleID, &v.RoleName, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if empID.Valid {
		v.EmployeeID = &empID.Int64
	}
	return v, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, userSelect+` ORDER BY u.user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		v, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (User, error) {
	return scanUser(r.db.QueryRowContext(ctx, userSelect+` WHERE u.user_id = $1`, id))
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	return scanUser(r.db.QueryRowContext(ctx, userSelect+` WHERE LOWER(u.username) = LOWER($1)`, username))
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const q = ` WHERE LOWER(u.email) = LOWER($1) OR LOWER(e.email) = LOWER($1) LIMIT 1`
	return scanUser(r.db.QueryRowContext(ctx, userSelect+q, email))
}

func (r *PostgresRepo) GetByEmployee(ctx context.Context, employeeID int64) (User, error) {
	return scanUser(r.db.QueryRowContext(ctx, userSelect+` WHERE u.employee_id = $1`, employeeID))
}

func (r *PostgresRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE LOWER(username) = LOWER($1)`, username).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepo) Create(ctx context.Context, v User) (User, error) {
	const q = `
INSERT INTO users (username, email, password_hash, employee_id, role_id, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
RETURNING user_id
`
	var id int64
	if err := r.db.QueryRowContext(ctx, q,
		v.Username, v.Email, v.PasswordHash, v.EmployeeID, v.RoleID, v.IsActive,
	).Scan(&id); err != nil {
		return User{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepo) Update(ctx context.Context, v User) (User, error) {
	const q = `
UPDATE users
SET username = $2, email = $3, employee_id = $4, role_id = $5, updated_at = NOW()
WHERE user_id = $1
`
	res, err := r.db.ExecContext(ctx, q, v.UserID, v.Username, v.Email, v.EmployeeID, v.RoleID)
	if err != nil {
		return User{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return User{}, err
	}
	if n == 0 {
		return User{}, ErrNotFound
	}
	return r.GetByID(ctx, v.UserID)
}

func (r *PostgresRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return r.exec(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE user_id = $1`, id, hash)
}

func (r *PostgresRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return r.exec(ctx, `UPDATE users SET is_active = $2, updated_at = NOW() WHERE user_id = $1`, id, active)
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
}

func (r *PostgresRepo) exec(ctx context.Context, q string, args ...any) error {
	res, err := r.db.ExecContext(ctx, q, args...)
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

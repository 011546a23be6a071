package role

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresRepo persists roles in the roles table.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const roleColumns = `role_id, role_name, COALESCE(description, ''), created_at, updated_at`

func scanRole(row interface{ Scan(...any) error }) (Role, error) {
	var v Role
	err := row.Scan(&v.RoleID, &v.RoleName, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Role{}, ErrNotFound
		}
		return Role{}, err
	}
	return v, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY role_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Role
	for rows.Next() {
		v, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Role, error) {
	return scanRole(r.db.QueryRowContext(ctx, `SELECT `+roleColumns+` FROM roles WHERE role_id = $1`, id))
}

func (r *PostgresRepo) GetByName(ctx context.Context, name string) (Role, error) {
	return scanRole(r.db.QueryRowContext(ctx, `SELECT `+roleColumns+` FROM roles WHERE LOWER(role_name) = LOWER($1)`, name))
}

func (r *PostgresRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM roles WHERE LOWER(role_name) = LOWER($1)`, name).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresRepo) Create(ctx context.Context, v Role) (Role, error) {
	const q = `
INSERT INTO roles (role_name, description, created_at, updated_at)
VALUES ($1, NULLIF($2, ''), NOW(), NOW())
RETURNING ` + roleColumns
	return scanRole(r.db.QueryRowContext(ctx, q, v.RoleName, v.Description))
}

func (r *PostgresRepo) Update(ctx context.Context, v Role) (Role, error) {
	const q = `
UPDATE roles
SET role_name = $2, description = NULLIF($3, ''), updated_at = NOW()
WHERE role_id = $1
RETURNING ` + roleColumns
	return scanRole(r.db.QueryRowContext(ctx, q, v.RoleID, v.RoleName, v.Description))
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE role_id = $1`, id)
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

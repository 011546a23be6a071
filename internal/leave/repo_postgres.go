package leave

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresRepo persists leave requests. Reads join employees twice: once for
// the requester, once for the approver.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const leaveSelect = `
SELECT lr.leave_request_id, lr.employee_id,
       COALESCE(e.first_name || ' ' || e.last_name, ''),
       lr.leave_type, TO_CHAR(lr.start_date, 'YYYY-MM-DD'), TO_CHAR(lr.end_date, 'YYYY-MM-DD'),
       COALESCE(lr.reason, ''), lr.status,
       lr.approved_by, COALESCE(a.first_name || ' ' || a.last_name, ''), lr.approved_at,
       COALESCE(lr.rejection_reason, ''), lr.created_at, lr.updated_at
FROM leave_requests lr
JOIN employees e ON e.employee_id = lr.employee_id
LEFT JOIN employees a ON a.employee_id = lr.approved_by
`

func scanLeave(row interface{ Scan(...any) error }) (LeaveRequest, error) {
	var v LeaveRequest
	var approvedBy sql.NullInt64
	var approvedAt sql.NullTime
	err := row.Scan(
		&v.LeaveRequestID, &v.EmployeeID,
		&v.EmployeeName,
		&v.LeaveType, &v.StartDate, &v.EndDate,
		&v.Reason, &v.Status,
		&approvedBy, &v.ApproverName, &approvedAt,
		&v.RejectionReason, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LeaveRequest{}, ErrNotFound
		}
		return LeaveRequest{}, err
	}
	if approvedBy.Valid {
		v.ApprovedBy = &approvedBy.Int64
	}
	if approvedAt.Valid {
		t := approvedAt.Time
		v.ApprovedAt = &t
	}
	return v, nil
}

func (r *PostgresRepo) queryMany(ctx context.Context, q string, args ...any) ([]LeaveRequest, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LeaveRequest
	for rows.Next() {
		v, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context) ([]LeaveRequest, error) {
	return r.queryMany(ctx, leaveSelect+` ORDER BY lr.leave_request_id`)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (LeaveRequest, error) {
	return scanLeave(r.db.QueryRowContext(ctx, leaveSelect+` WHERE lr.leave_request_id = $1`, id))
}

func (r *PostgresRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveRequest, error) {
	return r.queryMany(ctx, leaveSelect+` WHERE lr.employee_id = $1 ORDER BY lr.leave_request_id`, employeeID)
}

func (r *PostgresRepo) ListByStatus(ctx context.Context, status Status) ([]LeaveRequest, error) {
	return r.queryMany(ctx, leaveSelect+` WHERE lr.status = $1 ORDER BY lr.leave_request_id`, string(status))
}

func (r *PostgresRepo) Create(ctx context.Context, v LeaveRequest) (LeaveRequest, error) {
	const q = `
INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, reason, status, created_at, updated_at)
VALUES ($1, $2, $3::date, $4::date, NULLIF($5, ''), $6, NOW(), NOW())
RETURNING leave_request_id
`
	var id int64
	if err := r.db.QueryRowContext(ctx, q,
		v.EmployeeID, string(v.LeaveType), v.StartDate, v.EndDate, v.Reason, string(v.Status),
	).Scan(&id); err != nil {
		return LeaveRequest{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresRepo) Update(ctx context.Context, v LeaveRequest) (LeaveRequest, error) {
	const q = `
UPDATE leave_requests
SET leave_type = $2, start_date = $3::date, end_date = $4::date, reason = NULLIF($5, ''),
    status = $6, approved_by = $7, approved_at = $8, rejection_reason = NULLIF($9, ''),
    updated_at = NOW()
WHERE leave_request_id = $1
`
	res, err := r.db.ExecContext(ctx, q,
		v.LeaveRequestID, string(v.LeaveType), v.StartDate, v.EndDate, v.Reason,
		string(v.Status), v.ApprovedBy, v.ApprovedAt, v.RejectionReason,
	)
	if err != nil {
		return LeaveRequest{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return LeaveRequest{}, err
	}
	if n == 0 {
		return LeaveRequest{}, ErrNotFound
	}
	return r.GetByID(ctx, v.LeaveRequestID)
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leave_requests WHERE leave_request_id = $1`, id)
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

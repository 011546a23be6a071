package audit

import (
	"context"
	"database/sql"
)

// PostgresRepo appends audit events. The audit_events table is INSERT-only;
// no update or delete statements exist on purpose.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Append(ctx context.Context, e Event) error {
	const q = `
INSERT INTO audit_events (id, type, actor_user_id, actor_role, ip_address, target_id, message, created_at)
VALUES ($1, $2, NULLIF($3, 0), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, 0), NULLIF($7, ''), $8)
`
	_, err := r.db.ExecContext(ctx, q,
		e.ID, string(e.Type), e.ActorUserID, e.ActorRole, e.IPAddress, e.TargetID, e.Message, e.CreatedAt,
	)
	return err
}

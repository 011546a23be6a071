package httpapi

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"ems-platform/internal/audit"
	"ems-platform/internal/auth"
	"ems-platform/internal/employee"
	"ems-platform/internal/leave"
	"ems-platform/internal/passreset"
	"ems-platform/internal/reporting"
	"ems-platform/internal/role"
	"ems-platform/internal/user"
	"ems-platform/pkg/logger"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.
type Handlers struct {
	Tokens    *auth.Manager
	Users     *user.Service
	Employees *employee.Service
	Leaves    *leave.Service
	Roles     *role.Service
	Reset     *passreset.Service
	Reports   *reporting.Service
	Audit     *audit.Service

	// AllowLogin rate-limits authentication attempts per username. A nil
	// limiter disables throttling (tests, single-user tools).
	AllowLogin func(ctx context.Context, username string) (bool, error)

	// ClearLoginAttempts resets the counter after a successful login.
	ClearLoginAttempts func(ctx context.Context, username string)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

var errInvalidID = errors.New("invalid id")

// logAudit records best-effort; audit failures must never fail the request.
func (h Handlers) logAudit(c *gin.Context, err error) {
	if err != nil {
		logger.FromGin(c).Warn("audit append failed", "error", err)
	}
}

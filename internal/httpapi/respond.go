package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ems-platform/internal/employee"
	"ems-platform/internal/leave"
	"ems-platform/internal/passreset"
	"ems-platform/internal/role"
	"ems-platform/internal/user"
)

// writeError maps service sentinel errors onto HTTP statuses. Anything
// unmapped is a 500 with a generic message so internals do not leak.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, role.ErrNotFound),
		errors.Is(err, employee.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, leave.ErrNotFound),
		errors.Is(err, passreset.ErrTokenNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, role.ErrDuplicateName),
		errors.Is(err, employee.ErrDuplicateEmail),
		errors.Is(err, user.ErrDuplicateUsername),
		errors.Is(err, leave.ErrInvalidTransition):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, role.ErrInvalidArgument),
		errors.Is(err, employee.ErrInvalidArgument),
		errors.Is(err, user.ErrInvalidArgument),
		errors.Is(err, leave.ErrInvalidArgument),
		errors.Is(err, passreset.ErrInvalidArgument),
		errors.Is(err, employee.ErrRoleNotFound),
		errors.Is(err, user.ErrRoleNotFound),
		errors.Is(err, user.ErrEmployeeNotFound),
		errors.Is(err, leave.ErrEmployeeNotFound),
		errors.Is(err, user.ErrWrongPassword):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, leave.ErrNotOwner):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})

	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := parseID(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

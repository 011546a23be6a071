package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ems-platform/internal/auth"
	"ems-platform/internal/rbac"
	"ems-platform/internal/user"
)

func (h Handlers) ListUsers(c *gin.Context) {
	out, err := h.Users.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) GetUserByUsername(c *gin.Context) {
	out, err := h.Users.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) GetUserByEmployee(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeId")
	if !ok {
		return
	}
	out, err := h.Users.GetByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) CreateUser(c *gin.Context) {
	var req user.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := h.Users.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h Handlers) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := h.Users.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword lets a user rotate their own password (current password
// required) or an admin overwrite someone else's (current not required).
func (h Handlers) ChangePassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ident, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	ctx := c.Request.Context()
	switch {
	case ident.UserID == id:
		err = h.Users.ChangePassword(ctx, id, req.CurrentPassword, req.NewPassword)
	case rbac.Matches(ident.Role, rbac.RoleAdmin):
		err = h.Users.ResetPassword(ctx, id, req.NewPassword)
	default:
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "may only change own password"})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h Handlers) ActivateUser(c *gin.Context) {
	h.setUserActive(c, true)
}

func (h Handlers) DeactivateUser(c *gin.Context) {
	h.setUserActive(c, false)
}

func (h Handlers) setUserActive(c *gin.Context, active bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ident, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	// Locking yourself out is always a mistake.
	if !active && ident.UserID == id {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "cannot deactivate own account"})
		return
	}

	ctx := c.Request.Context()
	if active {
		err = h.Users.Activate(ctx, id)
	} else {
		err = h.Users.Deactivate(ctx, id)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	h.logAudit(c, h.Audit.LogUserStatusChanged(ctx, ident.UserID, ident.Role, c.ClientIP(), id, active))
	c.JSON(http.StatusOK, gin.H{"message": "user status updated"})
}

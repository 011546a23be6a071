package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ems-platform/internal/auth"
	"ems-platform/internal/leave"
	"ems-platform/internal/rbac"
)

func (h Handlers) ListLeaveRequests(c *gin.Context) {
	out, err := h.Leaves.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) GetLeaveRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.Leaves.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) ListLeaveRequestsByEmployee(c *gin.Context) {
	employeeID, ok := pathID(c, "employeeId")
	if !ok {
		return
	}
	out, err := h.Leaves.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) ListLeaveRequestsByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "status required"})
		return
	}
	out, err := h.Leaves.ListByStatus(c.Request.Context(), leave.Status(status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) ListPendingLeaveRequests(c *gin.Context) {
	out, err := h.Leaves.ListPending(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) CreateLeaveRequest(c *gin.Context) {
	var req leave.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	// Employees may only file for themselves; managers and admins may file
	// on behalf of anyone.
	id, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	if !rbac.Matches(id.Role, rbac.RoleAdmin) && !rbac.Matches(id.Role, rbac.RoleManager) {
		if id.EmployeeID == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account has no employee record"})
			return
		}
		req.EmployeeID = *id.EmployeeID
	}

	out, err := h.Leaves.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h Handlers) UpdateLeaveRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req leave.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := h.Leaves.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) DeleteLeaveRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Leaves.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h Handlers) ApproveLeaveRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ident, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	out, err := h.Leaves.Approve(c.Request.Context(), id, h.approverID(ident), h.approverName(c, ident))
	if err != nil {
		writeError(c, err)
		return
	}
	h.logAudit(c, h.Audit.LogLeaveDecision(c.Request.Context(), ident.UserID, ident.Role, c.ClientIP(), id, "approved"))
	c.JSON(http.StatusOK, out)
}

type rejectLeaveRequest struct {
	Reason string `json:"reason"`
}

func (h Handlers) RejectLeaveRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ident, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req rejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Reason == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "reason required"})
		return
	}

	out, err := h.Leaves.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	h.logAudit(c, h.Audit.LogLeaveDecision(c.Request.Context(), ident.UserID, ident.Role, c.ClientIP(), id, "rejected"))
	c.JSON(http.StatusOK, out)
}

func (h Handlers) CancelLeaveRequest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	ident, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	// Admins and managers may cancel any pending request; employees only
	// their own.
	var byEmployeeID int64
	if !rbac.Matches(ident.Role, rbac.RoleAdmin) && !rbac.Matches(ident.Role, rbac.RoleManager) {
		if ident.EmployeeID == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account has no employee record"})
			return
		}
		byEmployeeID = *ident.EmployeeID
	}

	out, err := h.Leaves.Cancel(c.Request.Context(), id, byEmployeeID)
	if err != nil {
		writeError(c, err)
		return
	}
	h.logAudit(c, h.Audit.LogLeaveDecision(c.Request.Context(), ident.UserID, ident.Role, c.ClientIP(), id, "cancelled"))
	c.JSON(http.StatusOK, out)
}

func (h Handlers) approverID(ident auth.Identity) int64 {
	if ident.EmployeeID != nil {
		return *ident.EmployeeID
	}
	return 0
}

// approverName prefers the employee record's full name; administrative
// accounts without one fall back to the username.
func (h Handlers) approverName(c *gin.Context, ident auth.Identity) string {
	if ident.EmployeeID != nil {
		if emp, err := h.Employees.GetByID(c.Request.Context(), *ident.EmployeeID); err == nil {
			return emp.FullName()
		}
	}
	return ident.Username
}

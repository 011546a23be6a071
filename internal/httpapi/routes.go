package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ems-platform/internal/auth"
	"ems-platform/internal/rbac"
)

// RegisterRoutes wires the API surface onto r. Route-level role checks here
// mirror the client's route table; the backend remains the authority.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// public: credential issuance and recovery
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/forgot-password", h.ForgotPassword)
		authGroup.GET("/validate-reset-token", h.ValidateResetToken)
		authGroup.POST("/reset-password", h.ResetPassword)
	}

	protected := api.Group("")
	protected.Use(auth.RequireAccessToken(h.Tokens))
	{
		protected.GET("/dashboard/summary", h.DashboardSummary)

		employees := protected.Group("/employees")
		employees.Use(rbac.RequireAnyRole(rbac.RoleAdmin, rbac.RoleManager))
		{
			employees.GET("", h.ListEmployees)
			employees.GET("/search", h.SearchEmployees)
			employees.GET("/department", h.ListEmployeesByDepartment)
			employees.GET("/check-email", h.CheckEmployeeEmail)
			employees.GET("/role/:roleId", h.ListEmployeesByRole)
			employees.GET("/:id", h.GetEmployee)
			employees.POST("", h.CreateEmployee)
			employees.PUT("/:id", h.UpdateEmployee)
			employees.DELETE("/:id", rbac.RequireAnyRole(rbac.RoleAdmin), h.DeleteEmployee)
		}

		leaves := protected.Group("/leave-requests")
		{
			leaves.GET("", h.ListLeaveRequests)
			leaves.GET("/pending", h.ListPendingLeaveRequests)
			leaves.GET("/status", h.ListLeaveRequestsByStatus)
			leaves.GET("/employee/:employeeId", h.ListLeaveRequestsByEmployee)
			leaves.GET("/:id", h.GetLeaveRequest)
			leaves.POST("", h.CreateLeaveRequest)
			leaves.PUT("/:id", h.UpdateLeaveRequest)
			leaves.PUT("/:id/approve", rbac.RequireAnyRole(rbac.RoleAdmin, rbac.RoleManager), h.ApproveLeaveRequest)
			leaves.PUT("/:id/reject", rbac.RequireAnyRole(rbac.RoleAdmin, rbac.RoleManager), h.RejectLeaveRequest)
			leaves.PUT("/:id/cancel", h.CancelLeaveRequest)
			leaves.DELETE("/:id", rbac.RequireAnyRole(rbac.RoleAdmin), h.DeleteLeaveRequest)
		}

		roles := protected.Group("/roles")
		roles.Use(rbac.RequireAnyRole(rbac.RoleAdmin))
		{
			roles.GET("", h.ListRoles)
			roles.GET("/name/:roleName", h.GetRoleByName)
			roles.GET("/:id", h.GetRole)
			roles.POST("", h.CreateRole)
			roles.PUT("/:id", h.UpdateRole)
			roles.DELETE("/:id", h.DeleteRole)
		}

		users := protected.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.GET("/username/:username", h.GetUserByUsername)
			users.GET("/employee/:employeeId", h.GetUserByEmployee)
			users.GET("/:id", h.GetUser)
			users.POST("", rbac.RequireAnyRole(rbac.RoleAdmin), h.CreateUser)
			users.PUT("/:id", rbac.RequireAnyRole(rbac.RoleAdmin), h.UpdateUser)
			users.PUT("/:id/change-password", h.ChangePassword)
			users.PUT("/:id/activate", rbac.RequireAnyRole(rbac.RoleAdmin), h.ActivateUser)
			users.PUT("/:id/deactivate", rbac.RequireAnyRole(rbac.RoleAdmin), h.DeactivateUser)
			users.DELETE("/:id", rbac.RequireAnyRole(rbac.RoleAdmin), h.DeleteUser)
		}
	}
}

func (h Handlers) DashboardSummary(c *gin.Context) {
	out, err := h.Reports.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ems-platform/internal/auth"
	"ems-platform/internal/employee"
	"ems-platform/internal/passreset"
	"ems-platform/internal/rbac"
	"ems-platform/internal/user"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token      string `json:"token"`
	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	RoleName   string `json:"roleName"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
}

// Login validates credentials and issues a bearer token. Failed attempts are
// rate-limited per username and indistinguishable between "no such user" and
// "wrong password".
func (h Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	ctx := c.Request.Context()
	if h.AllowLogin != nil {
		ok, err := h.AllowLogin(ctx, req.Username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
			return
		}
	}

	u, err := h.Users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrWrongPassword) {
			h.logAudit(c, h.Audit.LogLoginFailed(ctx, req.Username, c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if errors.Is(err, user.ErrInactive) {
			h.logAudit(c, h.Audit.LogLoginFailed(ctx, req.Username, c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account is deactivated"})
			return
		}
		writeError(c, err)
		return
	}

	if !h.respondWithToken(c, u) {
		return
	}
	if h.ClearLoginAttempts != nil {
		h.ClearLoginAttempts(ctx, req.Username)
	}
	h.logAudit(c, h.Audit.LogLogin(ctx, u.UserID, u.RoleName, c.ClientIP()))
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// Register self-serves a new account: an employee record in the default
// Employee role plus a linked user, logged straight in.
func (h Handlers) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	ctx := c.Request.Context()
	rl, err := h.Roles.GetByName(ctx, rbac.RoleEmployee)
	if err != nil {
		writeError(c, err)
		return
	}

	emp, err := h.Employees.Create(ctx, employee.CreateRequest{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: "Unassigned",
		HireDate:   time.Now().UTC().Format("2006-01-02"),
		RoleID:     rl.RoleID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	u, err := h.Users.Create(ctx, user.CreateRequest{
		Username:   req.Username,
		Password:   req.Password,
		Email:      req.Email,
		EmployeeID: &emp.EmployeeID,
		RoleID:     rl.RoleID,
	})
	if err != nil {
		// Leave no orphaned employee behind a failed account creation.
		_ = h.Employees.Delete(ctx, emp.EmployeeID)
		writeError(c, err)
		return
	}

	h.respondWithToken(c, u)
}

// respondWithToken reports whether the token was issued; callers must not
// treat the login as successful when it returns false.
func (h Handlers) respondWithToken(c *gin.Context, u user.User) bool {
	token, err := h.Tokens.Issue(time.Now(), auth.Identity{
		UserID:     u.UserID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.RoleName,
		EmployeeID: u.EmployeeID,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return false
	}
	c.JSON(http.StatusOK, loginResponse{
		Token:      token,
		UserID:     u.UserID,
		Username:   u.Username,
		Email:      u.Email,
		RoleName:   u.RoleName,
		EmployeeID: u.EmployeeID,
	})
	return true
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword always answers 200 for well-formed input; whether an
// account matched must not be observable.
func (h Handlers) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	res, err := h.Reset.Forgot(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	// No mail delivery exists; the token rides back in the response. The
	// body shape is identical either way; a decoy token is never stored,
	// so it cannot be validated or redeemed.
	c.JSON(http.StatusOK, gin.H{
		"message":    "if the account exists, a reset token has been issued",
		"resetToken": res.Token,
		"expiresAt":  res.ExpiresAt.Format(time.RFC3339),
	})
}

func (h Handlers) ValidateResetToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "token required"})
		return
	}
	valid, err := h.Reset.Validate(c.Request.Context(), token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (h Handlers) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	ctx := c.Request.Context()
	userID, err := h.Reset.Reset(ctx, req.Token, req.NewPassword)
	if err != nil {
		if errors.Is(err, passreset.ErrTokenNotFound) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid or expired token"})
			return
		}
		writeError(c, err)
		return
	}
	h.logAudit(c, h.Audit.LogPasswordReset(ctx, userID, c.ClientIP()))
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"ems-platform/internal/audit"
	"ems-platform/internal/auth"
	"ems-platform/internal/config"
	"ems-platform/internal/employee"
	"ems-platform/internal/leave"
	"ems-platform/internal/passreset"
	"ems-platform/internal/reporting"
	"ems-platform/internal/role"
	"ems-platform/internal/user"
)

type testEnv struct {
	router   *gin.Engine
	handlers Handlers
	users    *user.Service
	userRepo *user.MemoryRepo
	emps     *employee.Service
	audit    *audit.MemoryRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	roleRepo := role.NewMemoryRepo()
	empRepo := employee.NewMemoryRepo()
	userRepo := user.NewMemoryRepo()
	leaveRepo := leave.NewMemoryRepo()
	auditRepo := audit.NewMemoryRepo()

	roles := role.NewService(roleRepo)
	for _, name := range []string{"Admin", "Manager", "Employee"} {
		if _, err := roles.Create(ctx, role.CreateRequest{RoleName: name}); err != nil {
			t.Fatalf("seed role %s: %v", name, err)
		}
	}

	emps := employee.NewService(empRepo, roleRepo)
	users := user.NewService(userRepo, empRepo, roleRepo)
	leaves := leave.NewService(leaveRepo, empRepo)
	reports := reporting.NewService(empRepo, leaveRepo, userRepo)
	reset := passreset.NewService(users, passreset.NewMemoryTokenStore(), time.Hour)

	tokens, err := auth.NewManager(config.AuthConfig{
		JWTSecret:      "test-secret-test-secret-test-secret",
		JWTIssuer:      "ems-test",
		AccessTokenTTL: time.Hour,
	})
	if err != nil {
		t.Fatalf("auth manager: %v", err)
	}

	h := Handlers{
		Tokens:    tokens,
		Users:     users,
		Employees: emps,
		Leaves:    leaves,
		Roles:     roles,
		Reset:     reset,
		Reports:   reports,
		Audit:     audit.NewService(auditRepo),
	}

	r := gin.New()
	RegisterRoutes(r, h)
	return &testEnv{router: r, handlers: h, users: users, userRepo: userRepo, emps: emps, audit: auditRepo}
}

// seedUser creates an employee (unless roleName is Admin without one) and a
// linked user account, returning the user.
func (e *testEnv) seedUser(t *testing.T, username, password, roleName string) user.User {
	t.Helper()
	ctx := context.Background()

	roleID := map[string]int64{"Admin": 1, "Manager": 2, "Employee": 3}[roleName]
	emp, err := e.emps.Create(ctx, employee.CreateRequest{
		FirstName:  username,
		LastName:   "Test",
		Email:      username + "@example.com",
		Department: "Engineering",
		HireDate:   "2023-01-01",
		RoleID:     roleID,
	})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	u, err := e.users.Create(ctx, user.CreateRequest{
		Username:   username,
		Password:   password,
		Email:      username + "@example.com",
		EmployeeID: &emp.EmployeeID,
		RoleID:     roleID,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T, username, password string) loginResponse {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": username, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d body = %s", w.Code, w.Body.String())
	}
	var out loginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return out
}

func TestLoginIssuesToken(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice", "password123", "Admin")

	resp := env.login(t, "alice", "password123")
	if resp.Token == "" || resp.Username != "alice" || resp.RoleName != "Admin" {
		t.Fatalf("login response = %+v", resp)
	}
	if resp.EmployeeID == nil {
		t.Fatal("employeeId missing from login response")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice", "password123", "Admin")

	for _, tc := range []struct{ user, pass string }{
		{"alice", "wrong"},
		{"ghost", "password123"},
	} {
		w := env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": tc.user, "password": tc.pass})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("login %s/%s status = %d", tc.user, tc.pass, w.Code)
		}
	}

	// Both failures look identical and both are audited.
	events := env.audit.Events()
	if len(events) != 2 {
		t.Fatalf("audit events = %d, want 2", len(events))
	}
}

func TestLoginThrottle(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice", "password123", "Admin")

	// Limiter allowing two attempts per username, reset on success.
	counts := map[string]int{}
	var cleared []string
	h := env.handlers
	h.AllowLogin = func(_ context.Context, username string) (bool, error) {
		counts[username]++
		return counts[username] <= 2, nil
	}
	h.ClearLoginAttempts = func(_ context.Context, username string) {
		cleared = append(cleared, username)
	}
	env.router = gin.New()
	RegisterRoutes(env.router, h)

	bad := gin.H{"username": "alice", "password": "wrong"}
	for i := 0; i < 2; i++ {
		if w := env.do(t, http.MethodPost, "/api/auth/login", "", bad); w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d status = %d, want 401", i+1, w.Code)
		}
	}
	if w := env.do(t, http.MethodPost, "/api/auth/login", "", bad); w.Code != http.StatusTooManyRequests {
		t.Fatalf("throttled attempt status = %d, want 429", w.Code)
	}

	// A fresh window with good credentials clears the counter.
	counts["alice"] = 0
	env.login(t, "alice", "password123")
	if len(cleared) != 1 || cleared[0] != "alice" {
		t.Fatalf("cleared = %v", cleared)
	}
}

func TestLoginTokenFailureSkipsSuccessPath(t *testing.T) {
	env := newTestEnv(t)

	// A user row without a role name cannot be issued a token; the request
	// must fail without clearing the throttle or auditing a success.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if _, err := env.userRepo.Create(context.Background(), user.User{
		Username:     "broken",
		Email:        "broken@example.com",
		PasswordHash: string(hash),
		RoleID:       3,
		IsActive:     true,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	var cleared []string
	h := env.handlers
	h.ClearLoginAttempts = func(_ context.Context, username string) {
		cleared = append(cleared, username)
	}
	env.router = gin.New()
	RegisterRoutes(env.router, h)

	w := env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "broken", "password": "password123"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if len(cleared) != 0 {
		t.Fatalf("throttle cleared on failed issuance: %v", cleared)
	}
	for _, e := range env.audit.Events() {
		if e.Type == audit.EventTypeLogin {
			t.Fatalf("success audit recorded: %+v", e)
		}
	}
}

func TestEmployeesRequireAuth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/employees", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestEmployeesRoleGate(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin1", "password123", "Admin")
	env.seedUser(t, "emp1", "password123", "Employee")

	adminToken := env.login(t, "admin1", "password123").Token
	empToken := env.login(t, "emp1", "password123").Token

	if w := env.do(t, http.MethodGet, "/api/employees", adminToken, nil); w.Code != http.StatusOK {
		t.Fatalf("admin list status = %d body = %s", w.Code, w.Body.String())
	}
	if w := env.do(t, http.MethodGet, "/api/employees", empToken, nil); w.Code != http.StatusForbidden {
		t.Fatalf("employee list status = %d, want 403", w.Code)
	}
}

func TestLeaveRequestLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "mgr1", "password123", "Manager")
	emp := env.seedUser(t, "emp2", "password123", "Employee")

	mgrToken := env.login(t, "mgr1", "password123").Token
	empToken := env.login(t, "emp2", "password123").Token

	// Employee files; employeeId in the body is overridden with their own.
	w := env.do(t, http.MethodPost, "/api/leave-requests", empToken, gin.H{
		"employeeId": 999,
		"leaveType":  "VACATION",
		"startDate":  "2024-07-01",
		"endDate":    "2024-07-05",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body = %s", w.Code, w.Body.String())
	}
	var created leave.LeaveRequest
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.Status != leave.StatusPending {
		t.Fatalf("created status = %s", created.Status)
	}
	if emp.EmployeeID == nil || created.EmployeeID != *emp.EmployeeID {
		t.Fatalf("employeeId = %d, want %v", created.EmployeeID, emp.EmployeeID)
	}

	// Employee cannot approve.
	path := "/api/leave-requests/1/approve"
	if w := env.do(t, http.MethodPut, path, empToken, nil); w.Code != http.StatusForbidden {
		t.Fatalf("employee approve status = %d, want 403", w.Code)
	}

	// Manager approves; approver metadata is recorded.
	w = env.do(t, http.MethodPut, path, mgrToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("approve status = %d body = %s", w.Code, w.Body.String())
	}
	var approved leave.LeaveRequest
	_ = json.Unmarshal(w.Body.Bytes(), &approved)
	if approved.Status != leave.StatusApproved || approved.ApprovedBy == nil {
		t.Fatalf("approved = %+v", approved)
	}

	// Approving twice conflicts.
	if w := env.do(t, http.MethodPut, path, mgrToken, nil); w.Code != http.StatusConflict {
		t.Fatalf("re-approve status = %d, want 409", w.Code)
	}
}

func TestRejectRequiresReasonOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "mgr2", "password123", "Manager")
	mgrToken := env.login(t, "mgr2", "password123").Token

	w := env.do(t, http.MethodPost, "/api/leave-requests", mgrToken, gin.H{
		"employeeId": 1,
		"leaveType":  "SICK",
		"startDate":  "2024-07-01",
		"endDate":    "2024-07-02",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body = %s", w.Code, w.Body.String())
	}

	if w := env.do(t, http.MethodPut, "/api/leave-requests/1/reject", mgrToken, gin.H{}); w.Code != http.StatusBadRequest {
		t.Fatalf("reject without reason status = %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodPut, "/api/leave-requests/1/reject", mgrToken, gin.H{"reason": "coverage"}); w.Code != http.StatusOK {
		t.Fatalf("reject status = %d body = %s", w.Code, w.Body.String())
	}
}

func TestRegisterCreatesAccountAndLogsIn(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":  "newbie",
		"email":     "newbie@example.com",
		"firstName": "New",
		"lastName":  "Bee",
		"password":  "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d body = %s", w.Code, w.Body.String())
	}
	var resp loginResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Token == "" || resp.RoleName != "Employee" || resp.EmployeeID == nil {
		t.Fatalf("register response = %+v", resp)
	}

	// The token works immediately.
	if w := env.do(t, http.MethodGet, "/api/leave-requests", resp.Token, nil); w.Code != http.StatusOK {
		t.Fatalf("post-register call status = %d", w.Code)
	}
}

func TestPasswordResetFlowOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "dave", "password123", "Employee")

	w := env.do(t, http.MethodPost, "/api/auth/forgot-password", "", gin.H{"email": "dave@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("forgot status = %d body = %s", w.Code, w.Body.String())
	}
	var forgot struct {
		ResetToken string `json:"resetToken"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &forgot)
	if forgot.ResetToken == "" {
		t.Fatal("no reset token issued")
	}

	if w := env.do(t, http.MethodGet, "/api/auth/validate-reset-token?token="+forgot.ResetToken, "", nil); w.Code != http.StatusOK {
		t.Fatalf("validate status = %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/auth/reset-password", "", gin.H{
		"token": forgot.ResetToken, "newPassword": "rotated-pass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("reset status = %d body = %s", w.Code, w.Body.String())
	}

	env.login(t, "dave", "rotated-pass")
}

func TestForgotPasswordResponseShapeUniform(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "dave", "password123", "Employee")

	bodies := map[string]map[string]any{}
	for _, email := range []string{"dave@example.com", "nobody@example.com"} {
		w := env.do(t, http.MethodPost, "/api/auth/forgot-password", "", gin.H{"email": email})
		if w.Code != http.StatusOK {
			t.Fatalf("forgot %s status = %d", email, w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode forgot body: %v", err)
		}
		bodies[email] = body
	}

	// Known and unknown emails must answer with the same keys, all populated.
	for email, body := range bodies {
		if len(body) != 3 {
			t.Fatalf("forgot %s keys = %v", email, body)
		}
		for _, key := range []string{"message", "resetToken", "expiresAt"} {
			if s, _ := body[key].(string); s == "" {
				t.Fatalf("forgot %s missing %s: %v", email, key, body)
			}
		}
	}

	// Only the real account's token redeems.
	checkValid := func(token string, want bool) {
		t.Helper()
		w := env.do(t, http.MethodGet, "/api/auth/validate-reset-token?token="+token, "", nil)
		var out struct {
			Valid bool `json:"valid"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode validate body: %v", err)
		}
		if out.Valid != want {
			t.Fatalf("valid = %v, want %v", out.Valid, want)
		}
	}
	checkValid(bodies["dave@example.com"]["resetToken"].(string), true)
	checkValid(bodies["nobody@example.com"]["resetToken"].(string), false)
}

func TestChangePasswordSelfAndForbiddenForOthers(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "erin", "password123", "Employee")
	env.seedUser(t, "frank", "password123", "Employee")

	erinToken := env.login(t, "erin", "password123").Token

	path := "/api/users/" + itoa(u.UserID) + "/change-password"
	w := env.do(t, http.MethodPut, path, erinToken, gin.H{
		"currentPassword": "password123", "newPassword": "fresh-pass-1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("self change status = %d body = %s", w.Code, w.Body.String())
	}
	env.login(t, "erin", "fresh-pass-1")

	// Erin may not change Frank's password.
	otherPath := "/api/users/2/change-password"
	if u.UserID == 2 {
		otherPath = "/api/users/1/change-password"
	}
	if w := env.do(t, http.MethodPut, otherPath, erinToken, gin.H{"newPassword": "hijacked-1"}); w.Code != http.StatusForbidden {
		t.Fatalf("cross change status = %d, want 403", w.Code)
	}
}

func TestDeactivateBlocksLoginAndSelfLockout(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "root", "password123", "Admin")
	target := env.seedUser(t, "gina", "password123", "Employee")

	adminToken := env.login(t, "root", "password123").Token

	if w := env.do(t, http.MethodPut, "/api/users/"+itoa(admin.UserID)+"/deactivate", adminToken, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("self deactivate status = %d, want 400", w.Code)
	}

	if w := env.do(t, http.MethodPut, "/api/users/"+itoa(target.UserID)+"/deactivate", adminToken, nil); w.Code != http.StatusOK {
		t.Fatalf("deactivate status = %d", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "gina", "password": "password123"}); w.Code != http.StatusUnauthorized {
		t.Fatalf("deactivated login status = %d, want 401", w.Code)
	}

	if w := env.do(t, http.MethodPut, "/api/users/"+itoa(target.UserID)+"/activate", adminToken, nil); w.Code != http.StatusOK {
		t.Fatalf("activate status = %d", w.Code)
	}
	env.login(t, "gina", "password123")
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "hana", "password123", "Admin")
	token := env.login(t, "hana", "password123").Token

	w := env.do(t, http.MethodGet, "/api/dashboard/summary", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d body = %s", w.Code, w.Body.String())
	}
	var sum struct {
		TotalEmployees int64 `json:"totalEmployees"`
		ActiveUsers    int64 `json:"activeUsers"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &sum)
	if sum.TotalEmployees != 1 || sum.ActiveUsers != 1 {
		t.Fatalf("summary = %+v", sum)
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

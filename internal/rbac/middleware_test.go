package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ems-platform/internal/auth"

	"github.com/gin-gonic/gin"
)

func identityInjector(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if role != "" {
			ctx := auth.WithIdentity(c.Request.Context(), auth.Identity{UserID: 1, Username: "u", Role: role})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func TestRequireAnyRole_AllowsListedRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", identityInjector(RoleManager), RequireAnyRole(RoleAdmin, RoleManager), func(c *gin.Context) {
		c.Status(200)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireAnyRole_DeniesUnlistedRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", identityInjector(RoleEmployee), RequireAnyRole(RoleAdmin, RoleManager), func(c *gin.Context) {
		c.Status(200)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	if w.Code != 403 {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireAnyRole_MissingIdentityIsUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", identityInjector(""), RequireAnyRole(RoleAdmin), func(c *gin.Context) {
		c.Status(200)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAnyRole_CaseInsensitive(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Route declares "ADMIN", token carries "Admin"; both sides normalize.
	r := gin.New()
	r.GET("/x", identityInjector("admin"), RequireAnyRole("ADMIN"), func(c *gin.Context) {
		c.Status(200)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRBAC_AllowsAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(KeyRole, "admin")

	called := false
	handler := RBAC("admin")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected next to run with 200, got called=%v code=%d", called, rec.Code)
	}
}

func TestRBAC_ForbidsOtherRoles(t *testing.T) {
	for _, role := range []string{"user", ""} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set(KeyRole, role)
		}

		handler := RBAC("admin")(func(c echo.Context) error {
			t.Fatalf("should not reach next handler")
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("role %q: expected 403, got %d", role, rec.Code)
		}
	}
}

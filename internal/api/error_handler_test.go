package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lumina/blog-studio/internal/core/domain"
)

func TestHTTPErrorHandler_MapsDomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrPostNotFound, http.StatusNotFound},
		{domain.ErrIncompletePost, http.StatusBadRequest},
		{domain.ErrInvalidCategory, http.StatusBadRequest},
		{domain.ErrEmptyComment, http.StatusBadRequest},
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrAccessDenied, http.StatusForbidden},
		{domain.ErrUserExists, http.StatusConflict},
		{fmt.Errorf("outline: %w: %w", domain.ErrGenerationFailed, errors.New("dial tcp")), http.StatusBadGateway},
		{echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	handle := NewHTTPErrorHandler(zerolog.Nop())
	for _, tc := range cases {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		handle(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error == "" {
			t.Fatalf("%v: expected error envelope, got %s", tc.err, rec.Body.String())
		}
	}
}

func TestHTTPErrorHandler_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(fmt.Errorf("decode lumina_blog_posts: %w", errors.New("unexpected EOF")), c)

	var body errorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "internal server error" {
		t.Fatalf("internal cause leaked: %q", body.Error)
	}
}

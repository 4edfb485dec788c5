package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lumina/blog-studio/internal/api/middleware"
	"github.com/lumina/blog-studio/internal/core/domain"
)

// ctxActor rebuilds the acting user from the claims injected by the Auth
// middleware. It fails fast when the middleware did not run.
func ctxActor(c echo.Context) (*domain.User, error) {
	id, _ := c.Get(middleware.KeyUserID).(string)
	if id == "" {
		return nil, domain.ErrUnauthenticated
	}
	name, _ := c.Get(middleware.KeyName).(string)
	email, _ := c.Get(middleware.KeyEmail).(string)
	role, _ := c.Get(middleware.KeyRole).(string)
	return &domain.User{ID: id, Name: name, Email: email, Role: role}, nil
}

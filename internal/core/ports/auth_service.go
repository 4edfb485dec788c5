package ports

import (
	"context"

	"github.com/lumina/blog-studio/internal/core/domain"
)

// LoginMode selects which sign-in form is used.
type LoginMode string

const (
	LoginModeUser  LoginMode = "login"
	LoginModeAdmin LoginMode = "admin"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, mode LoginMode, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*domain.User, error)
	// Users lists every account with credentials stripped.
	Users(ctx context.Context) ([]domain.User, error)
}

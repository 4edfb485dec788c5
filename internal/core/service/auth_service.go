package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// AuthService implements registration, login and the single session slot.
type AuthService struct {
	content   ports.ContentRepository
	session   ports.SessionManager
	jwtSecret string
	tokenTTL  time.Duration
	hashCost  int
	log       zerolog.Logger
}

func NewAuthService(content ports.ContentRepository, session ports.SessionManager, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		content:   content,
		session:   session,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		hashCost:  bcrypt.DefaultCost,
		log:       log,
	}
}

// HashPassword hashes a credential the same way Register does. It is used to
// prepare the bootstrap administrator.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register creates a user account and signs it in. E-mail uniqueness is
// checked here, not by the repository.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	users, err := s.content.ListUsers(ctx)
	if err != nil {
		return "", nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return "", nil, domain.ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		ID:           newID(),
		Name:         name,
		Email:        email,
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
	}
	if err := s.content.RegisterUser(ctx, *user); err != nil {
		s.log.Error().Err(err).Msg("failed to register user")
		return "", nil, err
	}
	if err := s.session.SetCurrentUser(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return token, user, nil
}

// Login signs in the user whose e-mail and password both match. In admin
// mode a non-admin is refused. Failures leave the session untouched.
func (s *AuthService) Login(ctx context.Context, mode ports.LoginMode, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	users, err := s.content.ListUsers(ctx)
	if err != nil {
		return "", nil, err
	}

	var user *domain.User
	for i := range users {
		if users[i].Email != email || users[i].PasswordHash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) == nil {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if mode == ports.LoginModeAdmin && !user.IsAdmin() {
		return "", nil, domain.ErrAccessDenied
	}

	if err := s.session.SetCurrentUser(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.SetCurrentUser(ctx, nil)
}

func (s *AuthService) Session(ctx context.Context) (*domain.User, error) {
	return s.session.CurrentUser(ctx)
}

func (s *AuthService) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.content.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newID returns a time-ordered unique identifier.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

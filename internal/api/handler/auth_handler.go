package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumina/blog-studio/internal/api/metrics"
	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new reader account and signs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "invalid").Inc()
		return err
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", authOutcome(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "ok").Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: toUserResponse(user)})
}

// Login authenticates a user and returns a JWT token. Mode "admin" only
// admits administrators.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	mode := ports.LoginModeUser
	action := "login"
	if req.Mode == string(ports.LoginModeAdmin) {
		mode = ports.LoginModeAdmin
		action = "admin_login"
	}

	token, user, err := h.authService.Login(c.Request().Context(), mode, req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(action, authOutcome(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues(action, "ok").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: toUserResponse(user)})
}

// Logout clears the current session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session returns the currently signed-in user, or null.
//
// @Summary      Current session
// @Description  Returns the user held in the shared session slot, which may differ from the token holder.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	user, err := h.authService.Session(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{User: toUserResponse(user)})
}

// Users lists all accounts. Administrators only.
//
// @Summary      List users
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   userResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/users [get]
func (h *AuthHandler) Users(c echo.Context) error {
	users, err := h.authService.Users(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]*userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func authOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserExists):
		return "invalid"
	case errors.Is(err, domain.ErrAccessDenied):
		return "denied"
	default:
		return "error"
	}
}

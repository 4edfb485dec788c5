package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/lumina/blog-studio/docs"
	"github.com/lumina/blog-studio/internal/api/handler"
	"github.com/lumina/blog-studio/internal/api/middleware"
	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers. Drafting may
// be nil when no model is configured.
type Deps struct {
	Auth      ports.AuthService
	Posts     ports.PostService
	Drafting  ports.DraftingService
	Readiness map[string]ports.Pinger
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("lumina"))

	authMiddleware := middleware.Auth(d.JWTSecret)
	// 5 sign-in attempts per minute per client IP, burst of 5.
	authLimiter := echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStoreWithConfig(
		echomiddleware.RateLimiterMemoryStoreConfig{Rate: rate.Every(12 * time.Second), Burst: 5, ExpiresIn: 3 * time.Minute},
	))

	authHandler := handler.NewAuthHandler(d.Auth)
	postHandler := handler.NewPostHandler(d.Posts)
	draftHandler := handler.NewDraftHandler(d.Drafting)
	healthHandler := handler.NewHealthHandler(d.Readiness)

	v1 := e.Group("/v1")

	// --- Auth routes ---
	v1.POST("/auth/register", authHandler.Register, authLimiter)
	v1.POST("/auth/login", authHandler.Login, authLimiter)
	v1.POST("/auth/logout", authHandler.Logout, authMiddleware)
	v1.GET("/auth/session", authHandler.Session, authMiddleware)
	v1.GET("/users", authHandler.Users, authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Post routes ---
	v1.GET("/posts", postHandler.List)
	v1.POST("/posts", postHandler.Publish, authMiddleware)
	v1.GET("/posts/:id", postHandler.Get)
	v1.DELETE("/posts/:id", postHandler.Delete, authMiddleware)
	v1.GET("/posts/:id/html", postHandler.HTML)
	v1.GET("/posts/:id/comments", postHandler.Comments)
	v1.POST("/posts/:id/comments", postHandler.AddComment, authMiddleware)
	v1.GET("/categories", postHandler.Categories)

	// --- Drafting routes ---
	drafts := v1.Group("/drafts", authMiddleware)
	drafts.POST("/outline", draftHandler.Outline)
	drafts.POST("/content", draftHandler.Content)
	drafts.POST("/compose", draftHandler.Compose)
	drafts.POST("/cover-image", draftHandler.CoverImage)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – is the store reachable?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			switch {
			case v.Status >= 500:
				evt = log.Error().Err(v.Error)
			case v.Error != nil:
				evt = log.Warn().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

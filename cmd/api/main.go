// Command api serves the Lumina blog studio HTTP API.
//
//	@title						Lumina Blog Studio API
//	@version					1.0
//	@description				Publishing backend with AI-assisted drafting.
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumina/blog-studio/internal/api"
	"github.com/lumina/blog-studio/internal/core/domain"
	"github.com/lumina/blog-studio/internal/core/ports"
	"github.com/lumina/blog-studio/internal/core/service"
	"github.com/lumina/blog-studio/internal/infrastructure/gemini"
	"github.com/lumina/blog-studio/internal/infrastructure/repository"
	"github.com/lumina/blog-studio/internal/pkg/config"
	"github.com/lumina/blog-studio/pkg/logger"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "lumina-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	be, err := openStore(ctx, cfg, logger.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}

	adminHash, err := service.HashPassword(cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash bootstrap admin password")
	}

	content := repository.NewContentRepository(be.store, repository.Options{
		Namespace: cfg.Store.Namespace,
		BootstrapAdmin: domain.User{
			ID:           repository.BootstrapAdminID,
			Name:         "Lumina Admin",
			Email:        cfg.Admin.Email,
			Role:         domain.RoleAdmin,
			PasswordHash: adminHash,
		},
	})
	sessions := repository.NewSessionManager(be.store, cfg.Store.Namespace)
	comments := repository.NewCommentRepository(be.store, cfg.Store.Namespace)

	var drafting ports.DraftingService
	if cfg.GenAI.APIKey != "" {
		model, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:     cfg.GenAI.APIKey,
			TextModel:  cfg.GenAI.TextModel,
			ImageModel: cfg.GenAI.ImageModel,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create model client")
		}
		drafting = service.NewDraftService(model, logger.Component("drafting"))
	} else {
		log.Warn().Msg("GENAI_API_KEY not set; drafting endpoints are disabled")
	}

	e := api.NewRouter(api.Deps{
		Auth:      service.NewAuthService(content, sessions, cfg.JWTSecret, tokenTTL, logger.Component("auth")),
		Posts:     service.NewPostService(content, comments, logger.Component("posts")),
		Drafting:  drafting,
		Readiness: be.readiness,
		JWTSecret: cfg.JWTSecret,
		Log:       logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	if err := be.close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}
}

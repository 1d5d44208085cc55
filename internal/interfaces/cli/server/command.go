// Package server implements the CLI command that runs the panel.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	appadmin "authpanel/internal/application/admin"
	adminUsecases "authpanel/internal/application/admin/usecases"
	authUsecases "authpanel/internal/application/auth/usecases"
	"authpanel/internal/application/markdown"
	"authpanel/internal/domain/provider"
	"authpanel/internal/infrastructure/auth"
	"authpanel/internal/infrastructure/config"
	"authpanel/internal/infrastructure/database"
	"authpanel/internal/infrastructure/email"
	"authpanel/internal/infrastructure/migration"
	"authpanel/internal/infrastructure/permission"
	"authpanel/internal/infrastructure/ratelimit"
	"authpanel/internal/infrastructure/repository"
	"authpanel/internal/interfaces/admin"
	"authpanel/internal/interfaces/admin/plugins"
	httpRouter "authpanel/internal/interfaces/http"
	"authpanel/internal/interfaces/http/handlers"
	"authpanel/internal/interfaces/http/middleware"
	"authpanel/internal/interfaces/http/templates"
	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the admin panel server",
		Long:  `Start the HTTP server hosting the account views and the admin panel.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server", "environment", env, "addr", cfg.Server.GetAddr())

	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	db := database.Get()

	manager := migration.NewManager(env, migration.GooseDialect(cfg.Database.Driver))
	if err := manager.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}

	userRepo := repository.NewUserRepository(db, log)
	linkRepo := repository.NewSocialAccountRepository(db, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	tokenService := auth.NewSessionTokenService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.SessionExpHours)

	var emailService email.Service = email.NewNoopEmailService()
	if cfg.Email.Enabled {
		emailService = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
		})
	}

	registry := provider.NewRegistry(cfg.OAuth)
	markdownSvc := markdown.NewService()

	signupUC := authUsecases.NewSignupUseCase(userRepo, hasher, tokenService, emailService, log)
	loginUC := authUsecases.NewLoginUseCase(userRepo, hasher, tokenService, log)
	providerStatusUC := adminUsecases.NewGetProviderStatusUseCase(registry, userRepo, linkRepo, markdownSvc, log)
	listAccountsUC := adminUsecases.NewListSocialAccountsUseCase(linkRepo, registry, log)
	authSummaryUC := adminUsecases.NewGetAuthSummaryUseCase(userRepo, linkRepo, registry, log)

	authHandler := handlers.NewAuthHandler(signupUC, loginUC, cfg.Auth, log)
	providerHandler := handlers.NewProviderHandler(providerStatusUC, log)
	accountHandler := handlers.NewAccountHandler(
		listAccountsUC,
		appadmin.NewStateStore(),
		utils.NewDebouncer(constants.SearchDebounceInterval),
		log,
	)

	site := admin.NewSite()
	site.Install(plugins.NewAuthPlugin(authSummaryUC, providerHandler, accountHandler, registry, templates.MustLoad()))

	dashboardHandler := handlers.NewDashboardHandler(site, log)

	sessionMW := middleware.NewSessionMiddleware(tokenService, cfg.Auth.LoginURL, log)
	permissionMW := middleware.NewPermissionMiddleware(enforcer, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(redisClient),
			ratelimit.RateLimitConfig{
				RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
				RequestsPerHour:   cfg.RateLimit.RequestsPerHour,
				RequestsPerDay:    cfg.RateLimit.RequestsPerDay,
			},
			log,
		)
	}

	router := httpRouter.NewRouter(authHandler, dashboardHandler, sessionMW, permissionMW, rateLimiter, site, log)
	router.SetupRoutes(cfg)

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Infow("server stopped")
	return nil
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authpanel/internal/infrastructure/config"
	"authpanel/internal/interfaces/admin"
	"authpanel/internal/interfaces/http/handlers"
	"authpanel/internal/interfaces/http/middleware"
	"authpanel/internal/interfaces/http/templates"
	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

// Router mounts the account views and the admin site onto a gin engine.
type Router struct {
	engine           *gin.Engine
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
	sessionMW        *middleware.SessionMiddleware
	permissionMW     *middleware.PermissionMiddleware
	rateLimiter      *middleware.RateLimiter
	site             *admin.Site
	logger           logger.Interface
}

func NewRouter(
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	sessionMW *middleware.SessionMiddleware,
	permissionMW *middleware.PermissionMiddleware,
	rateLimiter *middleware.RateLimiter,
	site *admin.Site,
	log logger.Interface,
) *Router {
	return &Router{
		engine:           gin.New(),
		authHandler:      authHandler,
		dashboardHandler: dashboardHandler,
		sessionMW:        sessionMW,
		permissionMW:     permissionMW,
		rateLimiter:      rateLimiter,
		site:             site,
		logger:           log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config) {
	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r.engine.SetHTMLTemplate(templates.MustLoad())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.setupAccountRoutes()
	r.setupAdminRoutes()

	r.engine.NoRoute(func(c *gin.Context) {
		utils.RenderError(c, http.StatusNotFound, constants.ErrMsgResourceNotFound)
	})
}

// setupAccountRoutes mounts the signup, login and logout views. Credential
// posts go through the rate limiter when one is configured.
func (r *Router) setupAccountRoutes() {
	accounts := r.engine.Group("/accounts")
	accounts.Use(r.sessionMW.OptionalAuth())
	{
		accounts.GET("/signup/", r.authHandler.ShowSignup)
		accounts.GET("/login/", r.authHandler.ShowLogin)
		accounts.GET("/logout/", r.authHandler.Logout)

		if r.rateLimiter != nil {
			accounts.POST("/signup/", r.rateLimiter.Limit(), r.authHandler.Signup)
			accounts.POST("/login/", r.rateLimiter.Limit(), r.authHandler.Login)
		} else {
			accounts.POST("/signup/", r.authHandler.Signup)
			accounts.POST("/login/", r.authHandler.Login)
		}
	}
}

// setupAdminRoutes mounts the dashboard and every page the plugins
// registered, each behind the login gate and its own permission.
func (r *Router) setupAdminRoutes() {
	adminGroup := r.engine.Group("/admin")
	adminGroup.Use(r.sessionMW.RequireLogin())
	{
		adminGroup.GET("/", r.permissionMW.RequirePermission("admin.dashboard.view"), r.dashboardHandler.Dashboard)
	}

	for _, page := range r.site.Pages() {
		gate := r.permissionMW.RequirePermission(page.Permission)
		r.engine.GET(page.Path, r.sessionMW.RequireLogin(), gate, page.Handler)

		for event, handler := range page.Events {
			r.engine.POST(page.Path+"events/"+event, r.sessionMW.RequireLogin(), gate, handler)
		}
	}
}

// Engine exposes the configured gin engine for the HTTP server and tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

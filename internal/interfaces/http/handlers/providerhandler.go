package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminUsecases "authpanel/internal/application/admin/usecases"
	"authpanel/internal/interfaces/http/middleware"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

// ProviderHandler renders the OAuth provider status page.
type ProviderHandler struct {
	statusUseCase ProviderStatusExecutor
	logger        logger.Interface
}

func NewProviderHandler(statusUseCase ProviderStatusExecutor, logger logger.Interface) *ProviderHandler {
	return &ProviderHandler{statusUseCase: statusUseCase, logger: logger}
}

// Providers renders the adoption overview and one status card per
// configured provider, including the callback URL derived from the
// request the admin is browsing on.
func (h *ProviderHandler) Providers(c *gin.Context) {
	page, err := h.statusUseCase.Execute(c.Request.Context(), adminUsecases.GetProviderStatusQuery{
		Scheme: requestScheme(c),
		Host:   c.Request.Host,
	})
	if err != nil {
		h.logger.Errorw("failed to build provider status", "error", err)
		utils.RenderError(c, http.StatusInternalServerError, "Failed to load provider status")
		return
	}

	c.HTML(http.StatusOK, "providers.html", gin.H{
		"Title":    "OAuth providers",
		"Username": middleware.CurrentUsername(c),
		"Overview": page.Overview,
		"Reports":  page.Reports,
	})
}

// requestScheme resolves the external scheme, trusting a forwarded proto
// header when present so callback URLs stay correct behind a proxy.
func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}

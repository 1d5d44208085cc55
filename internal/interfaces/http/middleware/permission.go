package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"authpanel/internal/infrastructure/permission"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

// PermissionMiddleware gates admin pages on a permission string of the
// form "resource.action". Composed after RequireLogin.
type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission enforces the given permission. An empty permission is
// a no-op; superusers bypass the check.
func (m *PermissionMiddleware) RequirePermission(perm string) gin.HandlerFunc {
	resource, action := splitPermission(perm)

	return func(c *gin.Context) {
		if perm == "" {
			c.Next()
			return
		}

		if !IsAuthenticated(c) {
			m.logger.Warnw("permission check on anonymous request", "permission", perm)
			renderForbidden(c)
			return
		}

		if IsSuperuser(c) {
			c.Next()
			return
		}

		subject := permission.RoleUser
		if IsStaff(c) {
			subject = permission.RoleStaff
		}

		allowed, err := m.enforcer.Enforce(subject, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "permission", perm, "user_id", CurrentUserID(c))
			renderForbidden(c)
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "permission", perm, "user_id", CurrentUserID(c))
			renderForbidden(c)
			return
		}

		c.Next()
	}
}

// splitPermission separates "admin.accounts.view" into resource
// "admin.accounts" and action "view".
func splitPermission(perm string) (resource, action string) {
	idx := strings.LastIndex(perm, ".")
	if idx < 0 {
		return perm, ""
	}
	return perm[:idx], perm[idx+1:]
}

func renderForbidden(c *gin.Context) {
	utils.RenderError(c, http.StatusForbidden, "Access denied")
	c.Abort()
}

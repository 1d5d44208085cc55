package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"authpanel/internal/infrastructure/auth"
	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

// SessionMiddleware resolves the browser session cookie into request
// context. The panel is HTML-only, so the login gate answers with a
// redirect rather than a 401 body.
type SessionMiddleware struct {
	tokenService *auth.SessionTokenService
	loginURL     string
	logger       logger.Interface
}

func NewSessionMiddleware(tokenService *auth.SessionTokenService, loginURL string, logger logger.Interface) *SessionMiddleware {
	return &SessionMiddleware{
		tokenService: tokenService,
		loginURL:     loginURL,
		logger:       logger,
	}
}

// RequireLogin gates a route on a valid session. Unauthenticated requests
// are sent to the login page with the original path in the next parameter.
// An optional per-route login URL overrides the configured one.
func (m *SessionMiddleware) RequireLogin(loginURL ...string) gin.HandlerFunc {
	target := m.loginURL
	if len(loginURL) > 0 && loginURL[0] != "" {
		target = loginURL[0]
	}

	return func(c *gin.Context) {
		claims := m.resolveSession(c)
		if claims == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target+"?"+constants.NextParam+"="+next)
			c.Abort()
			return
		}

		setSessionContext(c, claims)
		c.Next()
	}
}

// OptionalAuth populates the session context when a valid cookie is
// present and lets the request through either way.
func (m *SessionMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := m.resolveSession(c); claims != nil {
			setSessionContext(c, claims)
		}
		c.Next()
	}
}

func (m *SessionMiddleware) resolveSession(c *gin.Context) *auth.SessionClaims {
	token := utils.GetTokenFromCookie(c, utils.SessionTokenCookie)
	if token == "" {
		return nil
	}

	claims, err := m.tokenService.Verify(token)
	if err != nil {
		m.logger.Debugw("invalid session token", "error", err)
		return nil
	}
	return claims
}

func setSessionContext(c *gin.Context, claims *auth.SessionClaims) {
	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeyUsername, claims.Username)
	c.Set(constants.ContextKeyIsStaff, claims.IsStaff)
	c.Set(constants.ContextKeySuperuser, claims.IsSuperuser)
}

// IsAuthenticated reports whether the current request carries a session.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := c.Get(constants.ContextKeyUserID)
	return ok
}

// CurrentUserID returns the session's user id, zero when anonymous.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentUsername returns the session's username, empty when anonymous.
func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get(constants.ContextKeyUsername); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// IsSuperuser reports whether the session belongs to a superuser.
func IsSuperuser(c *gin.Context) bool {
	if v, ok := c.Get(constants.ContextKeySuperuser); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// IsStaff reports whether the session belongs to a staff user.
func IsStaff(c *gin.Context) bool {
	if v, ok := c.Get(constants.ContextKeyIsStaff); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authpanel/internal/infrastructure/auth"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

func setupSessionRouter(t *testing.T) (*gin.Engine, *auth.SessionTokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenService := auth.NewSessionTokenService("test-secret", 1)
	mw := NewSessionMiddleware(tokenService, "/accounts/login/", logger.NewLogger())

	engine := gin.New()
	engine.GET("/admin/", mw.RequireLogin(), func(c *gin.Context) {
		c.String(http.StatusOK, "user=%s staff=%v", CurrentUsername(c), IsStaff(c))
	})
	engine.GET("/public/", mw.OptionalAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "authed=%v", IsAuthenticated(c))
	})
	return engine, tokenService
}

func TestRequireLogin_RedirectsAnonymousWithNext(t *testing.T) {
	engine, _ := setupSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts/login/?next=%2Fadmin%2F", w.Header().Get("Location"))
}

func TestRequireLogin_AcceptsValidSession(t *testing.T) {
	engine, tokenService := setupSessionRouter(t)

	token, err := tokenService.Generate(7, "alice", true, false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user=alice staff=true", w.Body.String())
}

func TestRequireLogin_RejectsGarbageToken(t *testing.T) {
	engine, _ := setupSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestOptionalAuth_LetsAnonymousThrough(t *testing.T) {
	engine, tokenService := setupSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/public/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "authed=false", w.Body.String())

	token, err := tokenService.Generate(7, "alice", false, false)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/public/", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionTokenCookie, Value: token})
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "authed=true", w.Body.String())
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"authpanel/internal/infrastructure/permission"
	"authpanel/internal/interfaces/http/templates"
	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/logger"
)

type sessionValues struct {
	userID      uint
	username    string
	isStaff     bool
	isSuperuser bool
}

func setupPermissionRouter(t *testing.T, perm string, session *sessionValues) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A plain :memory: DSN gives every pooled connection its own database,
	// so the policy table created on one connection is invisible to the
	// next. Back the enforcer with a throwaway file instead.
	dsn := filepath.Join(t.TempDir(), "permissions.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	enforcer, err := permission.NewEnforcer(db, logger.NewLogger())
	require.NoError(t, err)

	mw := NewPermissionMiddleware(enforcer, logger.NewLogger())

	engine := gin.New()
	engine.SetHTMLTemplate(templates.MustLoad())
	engine.GET("/gated/",
		func(c *gin.Context) {
			if session != nil {
				c.Set(constants.ContextKeyUserID, session.userID)
				c.Set(constants.ContextKeyUsername, session.username)
				c.Set(constants.ContextKeyIsStaff, session.isStaff)
				c.Set(constants.ContextKeySuperuser, session.isSuperuser)
			}
			c.Next()
		},
		mw.RequirePermission(perm),
		func(c *gin.Context) { c.String(http.StatusOK, "granted") },
	)
	return engine
}

func getGated(engine *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/gated/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequirePermission_StaffAllowed(t *testing.T) {
	engine := setupPermissionRouter(t, "admin.providers.view", &sessionValues{userID: 1, username: "staffer", isStaff: true})

	w := getGated(engine)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "granted", w.Body.String())
}

func TestRequirePermission_RegularUserDenied(t *testing.T) {
	engine := setupPermissionRouter(t, "admin.providers.view", &sessionValues{userID: 2, username: "bob"})

	w := getGated(engine)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")
}

func TestRequirePermission_SuperuserBypass(t *testing.T) {
	engine := setupPermissionRouter(t, "admin.unknown.everything", &sessionValues{userID: 3, username: "root", isSuperuser: true})

	w := getGated(engine)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermission_AnonymousDenied(t *testing.T) {
	engine := setupPermissionRouter(t, "admin.providers.view", nil)

	w := getGated(engine)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermission_EmptyPermissionIsNoop(t *testing.T) {
	engine := setupPermissionRouter(t, "", nil)

	w := getGated(engine)
	assert.Equal(t, http.StatusOK, w.Code)
}

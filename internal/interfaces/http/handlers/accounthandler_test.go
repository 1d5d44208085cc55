package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appadmin "authpanel/internal/application/admin"
	"authpanel/internal/application/admin/dto"
	adminUsecases "authpanel/internal/application/admin/usecases"
	"authpanel/internal/interfaces/http/templates"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

type fakeAccountList struct {
	result    *dto.AccountListResult
	err       error
	lastQuery adminUsecases.ListSocialAccountsQuery
}

func (f *fakeAccountList) Execute(_ context.Context, query adminUsecases.ListSocialAccountsQuery) (*dto.AccountListResult, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &dto.AccountListResult{
		Rows: []dto.AccountRow{},
		Pagination: dto.Pagination{
			Page: query.Page, PageSize: 25, Total: 0, TotalPages: 1,
		},
	}, nil
}

func setupAccountRouter(t *testing.T, list *fakeAccountList, debounce time.Duration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewAccountHandler(list, appadmin.NewStateStore(), utils.NewDebouncer(debounce), logger.NewLogger())

	engine := gin.New()
	engine.SetHTMLTemplate(templates.MustLoad())
	engine.GET(AccountsPath, handler.List)
	engine.POST(AccountsPath+"events/search", handler.SearchEvent)
	engine.POST(AccountsPath+"events/sort", handler.SortEvent)
	engine.POST(AccountsPath+"events/filter", handler.FilterEvent)
	engine.POST(AccountsPath+"events/page", handler.PageEvent)
	return engine
}

func getList(engine *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, AccountsPath, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAccountList_RendersRows(t *testing.T) {
	list := &fakeAccountList{result: &dto.AccountListResult{
		Rows: []dto.AccountRow{
			{ID: 1, Username: "alice", Email: "alice@example.com", Provider: "github", UID: "gh-1", LinkedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		},
		Pagination: dto.Pagination{Page: 1, PageSize: 25, Total: 1, TotalPages: 1},
		Providers:  []dto.ProviderOption{{ID: "github", Label: "GitHub"}},
	}}
	engine := setupAccountRouter(t, list, time.Millisecond)

	w := getList(engine)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "alice@example.com")
	assert.Contains(t, body, "gh-1")
	assert.Contains(t, body, "GitHub")
	assert.Contains(t, body, "Page 1 of 1 (1 accounts)")
}

func TestAccountList_OpensNewestFirst(t *testing.T) {
	list := &fakeAccountList{}
	engine := setupAccountRouter(t, list, time.Millisecond)

	w := getList(engine)
	assert.Equal(t, "-linked_at", list.lastQuery.OrderBy)
	assert.Contains(t, w.Body.String(), "Linked at ▼")
}

func TestAccountList_SortEventCyclesOrdering(t *testing.T) {
	list := &fakeAccountList{}
	engine := setupAccountRouter(t, list, time.Millisecond)

	w := postForm(engine, AccountsPath+"events/sort", url.Values{"field": {"username"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, AccountsPath, w.Header().Get("Location"))

	getList(engine)
	assert.Equal(t, "username", list.lastQuery.OrderBy)

	postForm(engine, AccountsPath+"events/sort", url.Values{"field": {"username"}})
	getList(engine)
	assert.Equal(t, "-username", list.lastQuery.OrderBy)

	postForm(engine, AccountsPath+"events/sort", url.Values{"field": {"username"}})
	getList(engine)
	assert.Empty(t, list.lastQuery.OrderBy)
}

func TestAccountList_SortIndicatorShown(t *testing.T) {
	list := &fakeAccountList{}
	engine := setupAccountRouter(t, list, time.Millisecond)

	postForm(engine, AccountsPath+"events/sort", url.Values{"field": {"email"}})
	w := getList(engine)
	assert.Contains(t, w.Body.String(), "Email ▲")

	postForm(engine, AccountsPath+"events/sort", url.Values{"field": {"email"}})
	w = getList(engine)
	assert.Contains(t, w.Body.String(), "Email ▼")
}

func TestAccountList_FilterEventResetsPage(t *testing.T) {
	list := &fakeAccountList{}
	engine := setupAccountRouter(t, list, time.Millisecond)

	postForm(engine, AccountsPath+"events/page", url.Values{"page": {"3"}})
	getList(engine)
	assert.Equal(t, 3, list.lastQuery.Page)

	postForm(engine, AccountsPath+"events/filter", url.Values{"provider": {"github"}})
	getList(engine)
	assert.Equal(t, "github", list.lastQuery.Provider)
	assert.Equal(t, 1, list.lastQuery.Page)
}

func TestAccountList_SearchEventIsDebounced(t *testing.T) {
	list := &fakeAccountList{}
	engine := setupAccountRouter(t, list, 20*time.Millisecond)

	w := postForm(engine, AccountsPath+"events/search", url.Values{"q": {"ali"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
	postForm(engine, AccountsPath+"events/search", url.Values{"q": {"alice"}})

	// Before the quiet interval elapses nothing has been applied.
	getList(engine)
	assert.Empty(t, list.lastQuery.Search)

	time.Sleep(60 * time.Millisecond)
	getList(engine)
	// Only the last burst entry survives.
	assert.Equal(t, "alice", list.lastQuery.Search)
}

func TestAccountList_BadPageFallsBackToFirst(t *testing.T) {
	list := &fakeAccountList{}
	engine := setupAccountRouter(t, list, time.Millisecond)

	postForm(engine, AccountsPath+"events/page", url.Values{"page": {"not-a-number"}})
	getList(engine)
	assert.Equal(t, 1, list.lastQuery.Page)
}

func TestAccountList_ExecuteErrorRendersErrorPage(t *testing.T) {
	list := &fakeAccountList{err: assert.AnError}
	engine := setupAccountRouter(t, list, time.Millisecond)

	w := getList(engine)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load linked accounts")
}

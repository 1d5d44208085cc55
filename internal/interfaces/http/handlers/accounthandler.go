package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appadmin "authpanel/internal/application/admin"
	adminUsecases "authpanel/internal/application/admin/usecases"
	"authpanel/internal/interfaces/http/middleware"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

// AccountsPath is where the linked-account listing is mounted.
const AccountsPath = "/admin/auth/accounts/"

// listColumn describes one sortable column header of the listing.
type listColumn struct {
	Key       string
	Label     string
	Indicator string
}

var accountColumns = []struct {
	Key   string
	Label string
}{
	{"id", "ID"},
	{"username", "Username"},
	{"email", "Email"},
	{"provider", "Provider"},
	{"uid", "UID"},
	{"linked_at", "Linked at"},
}

// AccountHandler serves the linked-account listing and its UI events.
// Search events are debounced before they touch the per-session state;
// sort, filter and page events apply immediately and redirect back to
// the listing.
type AccountHandler struct {
	listUseCase AccountListExecutor
	states      *appadmin.StateStore
	debouncer   *utils.Debouncer
	logger      logger.Interface
}

func NewAccountHandler(
	listUseCase AccountListExecutor,
	states *appadmin.StateStore,
	debouncer *utils.Debouncer,
	logger logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		listUseCase: listUseCase,
		states:      states,
		debouncer:   debouncer,
		logger:      logger,
	}
}

// List renders the listing from the session's current state.
func (h *AccountHandler) List(c *gin.Context) {
	state := h.states.Get(sessionKey(c))
	filter := state.Snapshot()

	result, err := h.listUseCase.Execute(c.Request.Context(), adminUsecases.ListSocialAccountsQuery{
		Provider: filter.Provider,
		Search:   filter.Search,
		OrderBy:  filter.OrderBy,
		Page:     filter.Page,
	})
	if err != nil {
		h.logger.Errorw("failed to list linked accounts", "error", err)
		utils.RenderError(c, http.StatusInternalServerError, "Failed to load linked accounts")
		return
	}

	c.HTML(http.StatusOK, "accounts.html", gin.H{
		"Title":    "Linked accounts",
		"Username": middleware.CurrentUsername(c),
		"Filter":   filter,
		"Result":   result,
		"Columns":  columnsFor(filter.OrderBy),
		"PrevPage": result.Pagination.Page - 1,
		"NextPage": result.Pagination.Page + 1,
	})
}

// SearchEvent records the typed text after the quiet interval. The
// response is empty; the page picks up the new state on its next load.
func (h *AccountHandler) SearchEvent(c *gin.Context) {
	key := sessionKey(c)
	state := h.states.Get(key)
	text := c.PostForm("q")

	h.debouncer.Schedule(key, func() {
		state.Search(text)
	})
	utils.NoContentResponse(c)
}

// SortEvent cycles the ordering of the posted column.
func (h *AccountHandler) SortEvent(c *gin.Context) {
	h.states.Get(sessionKey(c)).SortBy(c.PostForm("field"))
	c.Redirect(http.StatusSeeOther, AccountsPath)
}

// FilterEvent replaces the provider filter.
func (h *AccountHandler) FilterEvent(c *gin.Context) {
	h.states.Get(sessionKey(c)).FilterProvider(c.PostForm("provider"))
	c.Redirect(http.StatusSeeOther, AccountsPath)
}

// PageEvent moves to the posted page.
func (h *AccountHandler) PageEvent(c *gin.Context) {
	page, err := strconv.Atoi(c.PostForm("page"))
	if err != nil {
		page = 1
	}
	h.states.Get(sessionKey(c)).GoToPage(page)
	c.Redirect(http.StatusSeeOther, AccountsPath)
}

// sessionKey scopes listing state and search debouncing to the signed-in
// user.
func sessionKey(c *gin.Context) string {
	return fmt.Sprintf("user:%d", middleware.CurrentUserID(c))
}

// columnsFor builds the header row, marking the active sort column with a
// direction indicator.
func columnsFor(orderBy string) []listColumn {
	columns := make([]listColumn, 0, len(accountColumns))
	for _, col := range accountColumns {
		indicator := ""
		switch orderBy {
		case col.Key:
			indicator = "▲"
		case "-" + col.Key:
			indicator = "▼"
		}
		columns = append(columns, listColumn{Key: col.Key, Label: col.Label, Indicator: indicator})
	}
	return columns
}

// Package admin holds the admin-panel application services and the
// per-session UI state of the linked-account listing.
package admin

import (
	"strings"
	"sync"

	"authpanel/internal/domain/socialaccount"
	"authpanel/internal/shared/constants"
)

// AccountListState is the UI-scoped state of one session's account listing:
// search text, provider filter, ordering key and current page. Event
// methods mirror the page controls; every filter change resets to page 1.
type AccountListState struct {
	mu       sync.Mutex
	search   string
	provider string
	orderBy  string
	page     int
}

// defaultOrderBy opens the listing newest-first.
const defaultOrderBy = "-linked_at"

func NewAccountListState() *AccountListState {
	return &AccountListState{orderBy: defaultOrderBy, page: constants.DefaultPage}
}

// Search replaces the search text and resets the page. Callers debounce
// input events before reaching this.
func (s *AccountListState) Search(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = strings.TrimSpace(text)
	s.page = constants.DefaultPage
}

// SortBy cycles the ordering for a column: ascending, then descending,
// then unordered. A different column starts over at ascending. Resets
// the page.
func (s *AccountListState) SortBy(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.orderBy {
	case field:
		s.orderBy = "-" + field
	case "-" + field:
		s.orderBy = ""
	default:
		s.orderBy = field
	}
	s.page = constants.DefaultPage
}

// FilterProvider replaces the provider filter and resets the page.
func (s *AccountListState) FilterProvider(providerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provider = providerID
	s.page = constants.DefaultPage
}

// GoToPage moves to the given 1-based page.
func (s *AccountListState) GoToPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = constants.DefaultPage
	}
	s.page = page
}

// Snapshot captures the current state as a repository filter.
func (s *AccountListState) Snapshot() socialaccount.ListFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return socialaccount.ListFilter{
		Provider: s.provider,
		Search:   s.search,
		OrderBy:  s.orderBy,
		Page:     s.page,
		PageSize: constants.AccountListPageSize,
	}
}

// StateStore keeps one AccountListState per session.
type StateStore struct {
	mu     sync.RWMutex
	states map[string]*AccountListState
}

func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]*AccountListState)}
}

// Get returns the state for a session, creating it on first use.
func (st *StateStore) Get(sessionID string) *AccountListState {
	st.mu.RLock()
	state, ok := st.states[sessionID]
	st.mu.RUnlock()
	if ok {
		return state
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if state, ok := st.states[sessionID]; ok {
		return state
	}
	state = NewAccountListState()
	st.states[sessionID] = state
	return state
}

// Drop forgets a session's state.
func (st *StateStore) Drop(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.states, sessionID)
}

package session

import (
	"sync"

	"github.com/shelfwatch/inventory-screen/internal/catalog"
)

// Store hands out one Screen per operator, created lazily on first use.
type Store struct {
	mu       sync.Mutex
	screens  map[string]*Screen
	catalog  catalog.Catalog
	pageSize int
}

func NewStore(c catalog.Catalog, defaultPageSize int) *Store {
	return &Store{
		screens:  map[string]*Screen{},
		catalog:  c,
		pageSize: defaultPageSize,
	}
}

// Screen returns the session keyed by username, creating it on first use.
// The display name only matters at creation time; it is what the activity
// log shows.
func (st *Store) Screen(username, displayName string) *Screen {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.screens[username]; ok {
		return s
	}
	if displayName == "" {
		displayName = username
	}
	s := newScreen(st.catalog, displayName, st.pageSize)
	st.screens[username] = s
	return s
}

// Reset drops every session. Used by tests.
func (st *Store) Reset() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.screens = map[string]*Screen{}
}

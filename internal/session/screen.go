// Package session holds the per-operator screen state. Everything here is
// in-memory by contract: selections and the activity log do not survive a
// restart.
package session

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/shelfwatch/inventory-screen/internal/activity"
	"github.com/shelfwatch/inventory-screen/internal/catalog"
	"github.com/shelfwatch/inventory-screen/internal/models"
	"github.com/shelfwatch/inventory-screen/internal/view"
)

// Screen is the state struct behind one operator's inventory screen. The
// derivation of the visible page lives in the view package; Screen wires it
// to the catalog client and keeps the mutable parts consistent.
type Screen struct {
	mu      sync.Mutex
	catalog catalog.Catalog
	user    string

	products   []models.Product
	loading    bool
	banner     string
	query      view.Query
	selection  view.Selection
	log        *activity.Log
	generation uint64
}

func newScreen(c catalog.Catalog, user string, pageSize int) *Screen {
	return &Screen{
		catalog:   c,
		user:      user,
		query:     view.DefaultQuery(pageSize),
		selection: view.NewSelection(),
		log:       activity.NewLog(),
	}
}

// View is the fully derived, renderable snapshot of the screen.
type View struct {
	Products    []models.Product
	TotalCount  int
	TotalPages  int
	Query       view.Query
	SelectedIDs []int
	AllSelected bool
	Loading     bool
	Banner      string
}

func (s *Screen) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Screen) viewLocked() View {
	page := view.Apply(s.products, s.query)
	return View{
		Products:    page.Items,
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
		Query:       s.query,
		SelectedIDs: s.selection.IDs(),
		AllSelected: view.AllSelected(s.selection, page.Items),
		Loading:     s.loading,
		Banner:      s.banner,
	}
}

// Reload fetches the product collection and replaces the snapshot. A reload
// that was superseded by a newer one discards its result so a slow early
// response can never clobber a fresh one. On failure the list is emptied
// rather than left stale, and the banner carries a load error.
func (s *Screen) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.mu.Unlock()

	products, err := s.catalog.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer reload owns the state now.
		return nil
	}
	s.loading = false
	if err != nil {
		log.Printf("screen %q: product fetch failed: %v", s.user, err)
		s.products = nil
		s.banner = "could not load products"
		return err
	}
	s.products = products
	s.banner = ""
	s.selection.Prune(products)
	return nil
}

// SetQuery updates the search term and status filter together. The page
// resets to 1 whenever either actually changes.
func (s *Screen) SetQuery(search string, status view.StatusFilter) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status filter %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = s.query.WithSearch(search).WithStatus(status)
	return nil
}

func (s *Screen) SetPage(page int) error {
	if page < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = s.query.WithPage(page)
	return nil
}

func (s *Screen) SetPageSize(size int) error {
	if !view.ValidPageSize(size) {
		return fmt.Errorf("page size must be one of %v", view.PageSizes)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = s.query.WithPageSize(size)
	return nil
}

// Select checks or unchecks one row.
func (s *Screen) Select(id int, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Set(id, selected)
}

// SelectAll applies the header checkbox to the currently visible page.
func (s *Screen) SelectAll(selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := view.Apply(s.products, s.query)
	s.selection.SetAll(page.Items, selected)
}

func (s *Screen) SelectedIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}

// Activity returns the audit trail, newest first.
func (s *Screen) Activity() []models.ActivityEntry {
	return s.log.Entries()
}

func (s *Screen) User() string {
	return s.user
}

// nameOf resolves a product name from the current snapshot, falling back to
// the raw id when the product is unknown (e.g. never loaded).
func (s *Screen) nameOf(id int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}

func (s *Screen) setBanner(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banner = msg
}

package view

import (
	"sort"

	"github.com/shelfwatch/inventory-screen/internal/models"
)

// Selection is the set of product ids checked for bulk actions.
type Selection map[int]struct{}

func NewSelection() Selection {
	return Selection{}
}

func (s Selection) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Set checks or unchecks a single row.
func (s Selection) Set(id int, selected bool) {
	if selected {
		s[id] = struct{}{}
	} else {
		delete(s, id)
	}
}

// SetAll implements the header checkbox: checking replaces the selection with
// exactly the visible ids, unchecking clears everything, including ids picked
// up on other pages.
func (s Selection) SetAll(visible []models.Product, selected bool) {
	s.Clear()
	if !selected {
		return
	}
	for _, p := range visible {
		s[p.ID] = struct{}{}
	}
}

func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// Prune drops ids that no longer exist in the product snapshot.
func (s Selection) Prune(products []models.Product) {
	known := make(map[int]struct{}, len(products))
	for _, p := range products {
		known[p.ID] = struct{}{}
	}
	for id := range s {
		if _, ok := known[id]; !ok {
			delete(s, id)
		}
	}
}

// IDs returns the selected ids in ascending order.
func (s Selection) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// AllSelected is true only for a non-empty page whose every row is checked.
func AllSelected(s Selection, visible []models.Product) bool {
	if len(visible) == 0 {
		return false
	}
	for _, p := range visible {
		if !s.Has(p.ID) {
			return false
		}
	}
	return true
}

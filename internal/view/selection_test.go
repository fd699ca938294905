package view_test

import (
	"fmt"
	"testing"

	"github.com/shelfwatch/inventory-screen/internal/models"
	"github.com/shelfwatch/inventory-screen/internal/view"
)

func visiblePage() []models.Product {
	return []models.Product{
		{ID: 3, Name: "Bolt"},
		{ID: 7, Name: "Nut"},
		{ID: 9, Name: "Washer"},
	}
}

func TestSetAndHas(t *testing.T) {
	s := view.NewSelection()
	s.Set(3, true)
	if !s.Has(3) {
		t.Fatal("expected id 3 to be selected")
	}
	s.Set(3, false)
	if s.Has(3) {
		t.Fatal("expected id 3 to be unselected")
	}
}

func TestSetAllReplacesSelection(t *testing.T) {
	s := view.NewSelection()
	s.Set(42, true) // picked up on an earlier page

	s.SetAll(visiblePage(), true)
	if got := fmt.Sprint(s.IDs()); got != "[3 7 9]" {
		t.Fatalf("expected selection to be exactly the visible ids, got %s", got)
	}
}

func TestSetAllUncheckedClearsEverything(t *testing.T) {
	s := view.NewSelection()
	s.Set(42, true)
	s.SetAll(visiblePage(), true)

	s.SetAll(visiblePage(), false)
	if len(s.IDs()) != 0 {
		t.Fatalf("expected empty selection, got %v", s.IDs())
	}
}

func TestPruneDropsUnknownIDs(t *testing.T) {
	s := view.NewSelection()
	s.Set(3, true)
	s.Set(7, true)
	s.Set(99, true)

	s.Prune(visiblePage())
	if got := fmt.Sprint(s.IDs()); got != "[3 7]" {
		t.Fatalf("expected pruned selection [3 7], got %s", got)
	}
}

func TestAllSelected(t *testing.T) {
	s := view.NewSelection()

	if view.AllSelected(s, nil) {
		t.Fatal("empty page must never report all selected")
	}

	page := visiblePage()
	s.Set(3, true)
	s.Set(7, true)
	if view.AllSelected(s, page) {
		t.Fatal("partial selection must not report all selected")
	}

	s.Set(9, true)
	if !view.AllSelected(s, page) {
		t.Fatal("fully checked page must report all selected")
	}
}

package activity_test

import (
	"fmt"
	"testing"

	"github.com/shelfwatch/inventory-screen/internal/activity"
	"github.com/shelfwatch/inventory-screen/internal/models"
)

func TestRecordNewestFirst(t *testing.T) {
	l := activity.NewLog()
	l.Record(models.ActionAdded, "Widget", "admin")
	l.Record(models.ActionDeleted, "Gadget", "admin")

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != models.ActionDeleted || entries[0].Product != "Gadget" {
		t.Fatalf("expected the newest entry first, got %+v", entries[0])
	}
	if entries[1].Action != models.ActionAdded {
		t.Fatalf("expected the oldest entry last, got %+v", entries[1])
	}
}

func TestLogNeverExceedsCap(t *testing.T) {
	l := activity.NewLog()
	for i := 0; i < 25; i++ {
		l.Record(models.ActionAdded, fmt.Sprintf("p%d", i), "admin")
	}

	if l.Len() != 20 {
		t.Fatalf("expected log capped at 20 entries, got %d", l.Len())
	}
	entries := l.Entries()
	if entries[0].Product != "p24" {
		t.Fatalf("expected newest entry p24 at index 0, got %s", entries[0].Product)
	}
	if entries[19].Product != "p5" {
		t.Fatalf("expected oldest surviving entry p5, got %s", entries[19].Product)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	l := activity.NewLog()
	l.Record(models.ActionEdited, "Widget", "admin")

	entries := l.Entries()
	entries[0].Product = "mutated"

	if l.Entries()[0].Product != "Widget" {
		t.Fatal("mutating the returned slice must not touch the log")
	}
}

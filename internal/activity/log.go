// Package activity keeps the bounded, most-recent-first record of operator
// actions shown on the screen. It lives in memory only and is lost when the
// session goes away.
package activity

import (
	"sync"
	"time"

	"github.com/shelfwatch/inventory-screen/internal/models"
)

const maxEntries = 20

type Log struct {
	mu      sync.Mutex
	entries []models.ActivityEntry
}

func NewLog() *Log {
	return &Log{}
}

// Record prepends an entry and trims the log to its cap.
func (l *Log) Record(action models.ActivityAction, product, user string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := models.ActivityEntry{
		Action:  action,
		Product: product,
		Time:    time.Now(),
		User:    user,
	}
	l.entries = append([]models.ActivityEntry{entry}, l.entries...)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[:maxEntries]
	}
}

// Entries returns a copy, newest first.
func (l *Log) Entries() []models.ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

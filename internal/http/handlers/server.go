package handlers

import (
	"github.com/shelfwatch/inventory-screen/internal/config"
	"github.com/shelfwatch/inventory-screen/internal/http/ban"
	"github.com/shelfwatch/inventory-screen/internal/session"
)

var (
	screens    *session.Store
	operators  map[string]config.Operator
	banTracker *ban.Tracker
)

func SetScreenStore(s *session.Store) {
	screens = s
}

func SetOperators(ops []config.Operator) {
	operators = make(map[string]config.Operator, len(ops))
	for _, op := range ops {
		operators[op.Username] = op
	}
}

func SetBanTracker(t *ban.Tracker) {
	banTracker = t
}

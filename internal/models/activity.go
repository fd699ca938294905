package models

import "time"

type ActivityAction string

const (
	ActionAdded            ActivityAction = "added"
	ActionEdited           ActivityAction = "edited"
	ActionDeleted          ActivityAction = "deleted"
	ActionMarkedOutOfStock ActivityAction = "marked_out_of_stock"
	ActionImported         ActivityAction = "imported"
)

// ActivityEntry is one line of the on-screen audit trail.
type ActivityEntry struct {
	Action  ActivityAction `json:"action"`
	Product string         `json:"product"`
	Time    time.Time      `json:"time"`
	User    string         `json:"user"`
}

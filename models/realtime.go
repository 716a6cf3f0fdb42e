package models

type ChangeEventType string

const (
	ChangeInsert ChangeEventType = "INSERT"
	ChangeUpdate ChangeEventType = "UPDATE"
	ChangeDelete ChangeEventType = "DELETE"
)

// ChangeEvent is pushed to storefront clients whenever a catalog row or an
// order changes, mirroring the shape of the hosted platform's change feed.
type ChangeEvent struct {
	Table string          `json:"table"`
	Event ChangeEventType `json:"event"`
	New   interface{}     `json:"new,omitempty"`
	OldID string          `json:"old_id,omitempty"`
}

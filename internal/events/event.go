// Package events publishes domain events for downstream consumers.
package events

import "time"

// Routing keys for the events the service emits
const (
	CellCreated      = "cell.created"
	InmateRegistered = "inmate.registered"
	InmateAssigned   = "inmate.assigned"
	VisitLogged      = "visit.logged"
)

// Event is the JSON envelope sent over the broker
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// New stamps an event with the current UTC time
func New(eventType string, payload interface{}) Event {
	return Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// AssignmentPayload accompanies InmateAssigned
type AssignmentPayload struct {
	CellID           string `json:"cellId"`
	CellNumber       string `json:"cellNumber"`
	InmateID         string `json:"inmateId"`
	CurrentOccupancy int    `json:"currentOccupancy"`
	Capacity         int    `json:"capacity"`
}

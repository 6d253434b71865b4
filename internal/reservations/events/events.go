// Package events publishes reservation lifecycle notifications so
// downstream consumers (e.g. the notifier) can react to bookings without
// polling the API.
package events

import (
	"time"

	"varaamo/pkg/model"
)

const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationCancelled = "reservation.cancelled"

	SchemaVersion = "1"
	Source        = "varaamo-reservations"
)

// Event is the JSON payload published for every reservation state change.
type Event struct {
	Type        string            `json:"type"`
	Reservation model.Reservation `json:"reservation"`
	OccurredAt  time.Time         `json:"occurredAt"`
}

package model

import (
	"time"
)

// Reservation is a booked time interval for one room. IDs are assigned by
// the store, start at 1 and are never reused, even after deletion.
type Reservation struct {
	ID        int64     `json:"id"`
	Room      string    `json:"room"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// CreateReservationRequest is the wire form of a reservation proposal.
// Times arrive as strings so that the admission pipeline owns parsing and
// can report missing fields before malformed ones.
type CreateReservationRequest struct {
	Room      string `json:"room" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

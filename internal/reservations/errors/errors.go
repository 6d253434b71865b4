// Package errors defines the business-rule failures of the reservation
// core. The message texts are part of the API contract; the boundary
// returns them verbatim.
package errors

import "errors"

var (
	ErrMissingFields = errors.New("room, start time and end time are required")

	ErrInvalidRoom = errors.New("unknown room")

	ErrInvalidTime = errors.New("invalid time format, expected RFC3339 or YYYY-MM-DDTHH:MM")

	ErrStartInPast = errors.New("reservation start time cannot be in the past")

	ErrStartNotBeforeEnd = errors.New("reservation start time must be before end time")

	ErrOutsideOfficeHours = errors.New("reservations are only allowed during office hours (08:00 - 18:00)")

	ErrSlotTaken = errors.New("time slot is already reserved")

	ErrNotFound = errors.New("reservation not found")
)

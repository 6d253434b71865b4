package model

// Room is a bookable meeting room. The catalog is seeded at startup and
// immutable afterwards; reservations reference rooms by name.
type Room struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

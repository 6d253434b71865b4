package repository

import (
	"context"

	"varaamo/pkg/model"
)

// Tx is the view of the store available inside a serialized section.
// Mutations through a Tx either fully apply or leave the store unchanged.
type Tx interface {
	FindByID(id int64) (model.Reservation, error)
	FindByRoom(room string) []model.Reservation
	Insert(reservation *model.Reservation) int64
	Remove(id int64) error
}

// ReservationRepository is an ordered collection of reservations plus the
// id counter. Reads may run concurrently; the read-modify-write sequences
// of admission and deletion must go through ExecuteSerialized so that two
// concurrent creates cannot both pass an overlap check against a stale
// snapshot.
type ReservationRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Reservation, error)
	FindByRoom(ctx context.Context, room string) ([]model.Reservation, error)
	FindAll(ctx context.Context, limit, offset int) ([]model.Reservation, error)
	Count(ctx context.Context) (int, error)
	ExecuteSerialized(ctx context.Context, fn func(tx Tx) error) error
}

package repository

import (
	"context"
	"sync"

	reservationerrors "varaamo/internal/reservations/errors"
	"varaamo/pkg/model"
)

// memoryReservationRepository keeps reservations in insertion order in a
// plain slice. Lookups are linear scans; at the expected scale that is a
// simplicity decision, not a performance one.
type memoryReservationRepository struct {
	mu           sync.RWMutex
	reservations []model.Reservation
	nextID       int64
}

func NewMemoryReservationRepository() ReservationRepository {
	return &memoryReservationRepository{
		reservations: make([]model.Reservation, 0),
		nextID:       1,
	}
}

func (r *memoryReservationRepository) FindByID(ctx context.Context, id int64) (*model.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.reservations {
		if r.reservations[i].ID == id {
			res := r.reservations[i]
			return &res, nil
		}
	}
	return nil, reservationerrors.ErrNotFound
}

func (r *memoryReservationRepository) FindByRoom(ctx context.Context, room string) ([]model.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return findByRoom(r.reservations, room), nil
}

func (r *memoryReservationRepository) FindAll(ctx context.Context, limit, offset int) ([]model.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.reservations) {
		return []model.Reservation{}, nil
	}

	end := len(r.reservations)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]model.Reservation, end-offset)
	copy(out, r.reservations[offset:end])
	return out, nil
}

func (r *memoryReservationRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.reservations), nil
}

// ExecuteSerialized runs fn under the write lock. All other readers and
// writers observe the store either before or after fn, never in between.
func (r *memoryReservationRepository) ExecuteSerialized(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return fn(&memoryTx{repo: r})
}

type memoryTx struct {
	repo *memoryReservationRepository
}

func (tx *memoryTx) FindByID(id int64) (model.Reservation, error) {
	for i := range tx.repo.reservations {
		if tx.repo.reservations[i].ID == id {
			return tx.repo.reservations[i], nil
		}
	}
	return model.Reservation{}, reservationerrors.ErrNotFound
}

func (tx *memoryTx) FindByRoom(room string) []model.Reservation {
	return findByRoom(tx.repo.reservations, room)
}

// Insert assigns the next identifier and appends. Identifiers are never
// reused, even after deletion.
func (tx *memoryTx) Insert(reservation *model.Reservation) int64 {
	reservation.ID = tx.repo.nextID
	tx.repo.nextID++
	tx.repo.reservations = append(tx.repo.reservations, *reservation)
	return reservation.ID
}

func (tx *memoryTx) Remove(id int64) error {
	for i := range tx.repo.reservations {
		if tx.repo.reservations[i].ID == id {
			tx.repo.reservations = append(tx.repo.reservations[:i], tx.repo.reservations[i+1:]...)
			return nil
		}
	}
	return reservationerrors.ErrNotFound
}

func findByRoom(reservations []model.Reservation, room string) []model.Reservation {
	out := make([]model.Reservation, 0)
	for _, res := range reservations {
		if res.Room == room {
			out = append(out, res)
		}
	}
	return out
}

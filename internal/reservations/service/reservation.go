package service

import (
	"context"
	"errors"

	reservationerrors "varaamo/internal/reservations/errors"
	"varaamo/internal/reservations/events"
	"varaamo/internal/reservations/repository"
	"varaamo/internal/reservations/validator"
	"varaamo/pkg/config"
	apperrors "varaamo/pkg/errors"
	"varaamo/pkg/model"
	"varaamo/pkg/timeutil"
)

type ReservationService interface {
	Create(ctx context.Context, req *model.CreateReservationRequest) (*model.Reservation, error)
	Delete(ctx context.Context, id int64) error
	ListByRoom(ctx context.Context, room string) ([]model.Reservation, error)
	ListAll(ctx context.Context, limit, offset int) ([]model.Reservation, int, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	validator *validator.ReservationValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewReservationService(
	repo repository.ReservationRepository,
	validator *validator.ReservationValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create admits a proposed reservation. The validation pipeline runs
// first; the overlap scan and the append happen inside one serialized
// section so concurrent creates for the same room cannot both commit. On
// any failure the store is left unchanged.
func (s *reservationService) Create(ctx context.Context, req *model.CreateReservationRequest) (*model.Reservation, error) {
	start, end, err := s.validator.ValidateCreate(req)
	if err != nil {
		s.cfg.Log.Warn("Reservation validation failed", "room", req.Room, "error", err)
		return nil, asAppError(err)
	}

	reservation := &model.Reservation{
		Room:      req.Room,
		StartTime: start,
		EndTime:   end,
	}

	err = s.repo.ExecuteSerialized(ctx, func(tx repository.Tx) error {
		for _, existing := range tx.FindByRoom(reservation.Room) {
			if timeutil.Overlaps(reservation.StartTime, reservation.EndTime, existing.StartTime, existing.EndTime) {
				return reservationerrors.ErrSlotTaken
			}
		}
		tx.Insert(reservation)
		return nil
	})
	if err != nil {
		s.cfg.Log.Warn("Reservation admission failed",
			"room", reservation.Room,
			"start_time", reservation.StartTime,
			"end_time", reservation.EndTime,
			"error", err,
		)
		return nil, asAppError(err)
	}

	s.cfg.Log.Info("Reservation created successfully",
		"id", reservation.ID,
		"room", reservation.Room,
		"start_time", reservation.StartTime,
		"end_time", reservation.EndTime,
	)
	s.publisher.ReservationCreated(ctx, *reservation)

	return reservation, nil
}

// Delete removes a reservation by id. Deletion is irreversible; the id is
// never reassigned.
func (s *reservationService) Delete(ctx context.Context, id int64) error {
	var removed model.Reservation

	err := s.repo.ExecuteSerialized(ctx, func(tx repository.Tx) error {
		existing, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		removed = existing
		return tx.Remove(id)
	})
	if err != nil {
		return asAppError(err)
	}

	s.cfg.Log.Info("Reservation deleted successfully", "id", id, "room", removed.Room)
	s.publisher.ReservationCancelled(ctx, removed)

	return nil
}

// ListByRoom returns the room's reservations in insertion order. Unknown
// rooms fail the same way create does.
func (s *reservationService) ListByRoom(ctx context.Context, room string) ([]model.Reservation, error) {
	if err := s.validator.ValidateRoom(room); err != nil {
		return nil, asAppError(err)
	}

	reservations, err := s.repo.FindByRoom(ctx, room)
	if err != nil {
		return nil, apperrors.Internal("Failed to list reservations", err)
	}

	return reservations, nil
}

func (s *reservationService) ListAll(ctx context.Context, limit, offset int) ([]model.Reservation, int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to count reservations", err)
	}

	reservations, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list reservations", err)
	}

	return reservations, count, nil
}

// asAppError maps business failures onto transport-facing errors. All
// admission failures are client errors; an overlap maps to conflict and a
// missing delete target to not found.
func asAppError(err error) error {
	switch {
	case errors.Is(err, reservationerrors.ErrSlotTaken):
		return apperrors.Conflict(err.Error())
	case errors.Is(err, reservationerrors.ErrNotFound):
		return apperrors.NotFound(err.Error())
	case errors.Is(err, reservationerrors.ErrMissingFields),
		errors.Is(err, reservationerrors.ErrInvalidRoom),
		errors.Is(err, reservationerrors.ErrInvalidTime),
		errors.Is(err, reservationerrors.ErrStartInPast),
		errors.Is(err, reservationerrors.ErrStartNotBeforeEnd),
		errors.Is(err, reservationerrors.ErrOutsideOfficeHours):
		return apperrors.InvalidInput(err.Error())
	default:
		return apperrors.AsAppError(err)
	}
}

package validator

import (
	"errors"
	"time"

	reservationerrors "varaamo/internal/reservations/errors"
	"varaamo/internal/rooms"
	"varaamo/pkg/clock"
	"varaamo/pkg/logger"
	"varaamo/pkg/model"
	"varaamo/pkg/timeutil"

	"github.com/go-playground/validator/v10"
)

// ReservationValidator runs the admission pipeline for a proposed
// reservation. Checks run in a fixed order and the first failure wins,
// because the resulting error message is part of the observable contract:
//
//  1. all fields present
//  2. room is cataloged
//  3. times parse and the start is not in the past
//  4. start precedes end
//  5. both instants fall inside office hours
//
// Overlap exclusion is not handled here; it needs the store's serialized
// section and lives in the service.
type ReservationValidator struct {
	validate *validator.Validate
	catalog  *rooms.Catalog
	window   timeutil.Window
	clock    clock.Clock
	log      *logger.Logger
}

func NewReservationValidator(catalog *rooms.Catalog, window timeutil.Window, clk clock.Clock, log *logger.Logger) *ReservationValidator {
	return &ReservationValidator{
		validate: validator.New(),
		catalog:  catalog,
		window:   window,
		clock:    clk,
		log:      log,
	}
}

// ValidateCreate checks a proposal and returns the parsed interval.
// "now" is sampled exactly once per call.
func (v *ReservationValidator) ValidateCreate(req *model.CreateReservationRequest) (start, end time.Time, err error) {
	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return time.Time{}, time.Time{}, reservationerrors.ErrMissingFields
		}
		return time.Time{}, time.Time{}, err
	}

	if !v.catalog.Exists(req.Room) {
		return time.Time{}, time.Time{}, reservationerrors.ErrInvalidRoom
	}

	start, err = timeutil.ParseTimestamp(req.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, reservationerrors.ErrInvalidTime
	}
	end, err = timeutil.ParseTimestamp(req.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, reservationerrors.ErrInvalidTime
	}

	now := v.clock.Now()
	if start.Before(now) {
		return time.Time{}, time.Time{}, reservationerrors.ErrStartInPast
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, reservationerrors.ErrStartNotBeforeEnd
	}

	if !v.window.Covers(start, end) {
		return time.Time{}, time.Time{}, reservationerrors.ErrOutsideOfficeHours
	}

	return start, end, nil
}

// ValidateRoom checks room existence for lookups. Listing reservations of
// an uncataloged room fails the same way create does.
func (v *ReservationValidator) ValidateRoom(room string) error {
	if room == "" {
		return reservationerrors.ErrMissingFields
	}
	if !v.catalog.Exists(room) {
		return reservationerrors.ErrInvalidRoom
	}
	return nil
}

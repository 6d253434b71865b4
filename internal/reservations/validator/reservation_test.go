package validator

import (
	"errors"
	"io"
	"testing"
	"time"

	reservationerrors "varaamo/internal/reservations/errors"
	"varaamo/internal/rooms"
	"varaamo/pkg/clock"
	"varaamo/pkg/logger"
	"varaamo/pkg/model"
	"varaamo/pkg/timeutil"
)

func newTestValidator() *ReservationValidator {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
	catalog := rooms.NewCatalog([]string{"Room A", "Room B", "Room C"})
	window := timeutil.MustParseWindow("08:00", "18:00")
	// Fixed clock: 2030-05-20 09:00 local.
	clk := clock.Fixed{Instant: time.Date(2030, 5, 20, 9, 0, 0, 0, time.Local)}
	return NewReservationValidator(catalog, window, clk, log)
}

func TestValidateCreate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		req     *model.CreateReservationRequest
		wantErr error
	}{
		{
			name: "valid reservation",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "2030-05-20T10:00",
				EndTime:   "2030-05-20T11:00",
			},
			wantErr: nil,
		},
		{
			name: "start exactly at opening",
			req: &model.CreateReservationRequest{
				Room:      "Room B",
				StartTime: "2030-05-21T08:00",
				EndTime:   "2030-05-21T09:00",
			},
			wantErr: nil,
		},
		{
			name: "end exactly at closing",
			req: &model.CreateReservationRequest{
				Room:      "Room B",
				StartTime: "2030-05-20T17:00",
				EndTime:   "2030-05-20T18:00",
			},
			wantErr: nil,
		},
		{
			name: "missing room",
			req: &model.CreateReservationRequest{
				StartTime: "2030-05-20T10:00",
				EndTime:   "2030-05-20T11:00",
			},
			wantErr: reservationerrors.ErrMissingFields,
		},
		{
			name: "missing start time",
			req: &model.CreateReservationRequest{
				Room:    "Room A",
				EndTime: "2030-05-20T11:00",
			},
			wantErr: reservationerrors.ErrMissingFields,
		},
		{
			name: "missing end time",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "2030-05-20T10:00",
			},
			wantErr: reservationerrors.ErrMissingFields,
		},
		{
			name: "unknown room",
			req: &model.CreateReservationRequest{
				Room:      "Room Z",
				StartTime: "2030-05-20T10:00",
				EndTime:   "2030-05-20T11:00",
			},
			wantErr: reservationerrors.ErrInvalidRoom,
		},
		{
			name: "unknown room wins over bad times",
			req: &model.CreateReservationRequest{
				Room:      "Room Z",
				StartTime: "not-a-time",
				EndTime:   "also-not-a-time",
			},
			wantErr: reservationerrors.ErrInvalidRoom,
		},
		{
			name: "unparseable start time",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "tomorrow at ten",
				EndTime:   "2030-05-20T11:00",
			},
			wantErr: reservationerrors.ErrInvalidTime,
		},
		{
			name: "unparseable end time",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "2030-05-20T10:00",
				EndTime:   "2030-05-20",
			},
			wantErr: reservationerrors.ErrInvalidTime,
		},
		{
			name: "start in the past",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "2030-05-20T08:00",
				EndTime:   "2030-05-20T10:00",
			},
			wantErr: reservationerrors.ErrStartInPast,
		},
		{
			name: "past start wins over reversed interval",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "2030-05-19T11:00",
				EndTime:   "2030-05-19T10:00",
			},
			wantErr: reservationerrors.ErrStartInPast,
		},
		{
			name: "start equals end",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "2030-05-20T10:00",
				EndTime:   "2030-05-20T10:00",
			},
			wantErr: reservationerrors.ErrStartNotBeforeEnd,
		},
		{
			name: "start after end",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "2030-05-20T11:00",
				EndTime:   "2030-05-20T10:00",
			},
			wantErr: reservationerrors.ErrStartNotBeforeEnd,
		},
		{
			name: "start before office hours",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "2030-05-21T07:59",
				EndTime:   "2030-05-21T09:00",
			},
			wantErr: reservationerrors.ErrOutsideOfficeHours,
		},
		{
			name: "end after office hours",
			req: &model.CreateReservationRequest{
				Room:      "Room A",
				StartTime: "2030-05-20T17:00",
				EndTime:   "2030-05-20T18:30",
			},
			wantErr: reservationerrors.ErrOutsideOfficeHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := v.ValidateCreate(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateCreate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if !start.Before(end) {
					t.Errorf("expected parsed start %v before end %v", start, end)
				}
			}
		})
	}
}

func TestValidateCreateParsesInterval(t *testing.T) {
	v := newTestValidator()

	start, end, err := v.ValidateCreate(&model.CreateReservationRequest{
		Room:      "Room A",
		StartTime: "2030-05-20T10:15",
		EndTime:   "2030-05-20T11:45",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2030, 5, 20, 10, 15, 0, 0, time.Local)
	wantEnd := time.Date(2030, 5, 20, 11, 45, 0, 0, time.Local)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}
}

func TestValidateRoom(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		room    string
		wantErr error
	}{
		{name: "known room", room: "Room A", wantErr: nil},
		{name: "unknown room", room: "Room Z", wantErr: reservationerrors.ErrInvalidRoom},
		{name: "empty room", room: "", wantErr: reservationerrors.ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.ValidateRoom(tt.room); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRoom(%q) error = %v, want %v", tt.room, err, tt.wantErr)
			}
		})
	}
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	reservationerrors "varaamo/internal/reservations/errors"
	"varaamo/pkg/model"
)

func insert(t *testing.T, repo ReservationRepository, room string, startHour int) *model.Reservation {
	t.Helper()

	reservation := &model.Reservation{
		Room:      room,
		StartTime: time.Date(2030, 5, 20, startHour, 0, 0, 0, time.Local),
		EndTime:   time.Date(2030, 5, 20, startHour+1, 0, 0, 0, time.Local),
	}
	err := repo.ExecuteSerialized(context.Background(), func(tx Tx) error {
		tx.Insert(reservation)
		return nil
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	return reservation
}

func remove(t *testing.T, repo ReservationRepository, id int64) error {
	t.Helper()
	return repo.ExecuteSerialized(context.Background(), func(tx Tx) error {
		return tx.Remove(id)
	})
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryReservationRepository()

	first := insert(t, repo, "Room A", 9)
	second := insert(t, repo, "Room B", 10)
	third := insert(t, repo, "Room A", 11)

	if first.ID != 1 || second.ID != 2 || third.ID != 3 {
		t.Errorf("expected ids 1, 2, 3, got %d, %d, %d", first.ID, second.ID, third.ID)
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	repo := NewMemoryReservationRepository()

	insert(t, repo, "Room A", 9)
	second := insert(t, repo, "Room A", 10)

	if err := remove(t, repo, second.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	third := insert(t, repo, "Room A", 11)
	if third.ID != 3 {
		t.Errorf("expected id 3 after deleting id 2, got %d", third.ID)
	}
}

func TestFindByRoom(t *testing.T) {
	repo := NewMemoryReservationRepository()
	ctx := context.Background()

	insert(t, repo, "Room A", 9)
	insert(t, repo, "Room B", 10)
	insert(t, repo, "Room A", 11)

	found, err := repo.FindByRoom(ctx, "Room A")
	if err != nil {
		t.Fatalf("FindByRoom failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(found))
	}
	// Insertion order is preserved.
	if found[0].ID != 1 || found[1].ID != 3 {
		t.Errorf("expected ids 1 and 3, got %d and %d", found[0].ID, found[1].ID)
	}

	empty, err := repo.FindByRoom(ctx, "Room C")
	if err != nil {
		t.Fatalf("FindByRoom failed: %v", err)
	}
	if empty == nil {
		t.Error("expected empty slice for room without reservations, got nil")
	}
	if len(empty) != 0 {
		t.Errorf("expected 0 reservations, got %d", len(empty))
	}
}

func TestFindByID(t *testing.T) {
	repo := NewMemoryReservationRepository()
	ctx := context.Background()

	created := insert(t, repo, "Room A", 9)

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Room != "Room A" {
		t.Errorf("expected Room A, got %q", found.Room)
	}

	if _, err := repo.FindByID(ctx, 999); !errors.Is(err, reservationerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveNotFound(t *testing.T) {
	repo := NewMemoryReservationRepository()

	if err := remove(t, repo, 42); !errors.Is(err, reservationerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFindAllPagination(t *testing.T) {
	repo := NewMemoryReservationRepository()
	ctx := context.Background()

	for hour := 8; hour < 13; hour++ {
		insert(t, repo, "Room A", hour)
	}

	tests := []struct {
		name      string
		limit     int
		offset    int
		wantCount int
		wantFirst int64
	}{
		{name: "first page", limit: 2, offset: 0, wantCount: 2, wantFirst: 1},
		{name: "second page", limit: 2, offset: 2, wantCount: 2, wantFirst: 3},
		{name: "last partial page", limit: 2, offset: 4, wantCount: 1, wantFirst: 5},
		{name: "offset past end", limit: 2, offset: 10, wantCount: 0},
		{name: "no limit returns all", limit: 0, offset: 0, wantCount: 5, wantFirst: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.FindAll(ctx, tt.limit, tt.offset)
			if err != nil {
				t.Fatalf("FindAll failed: %v", err)
			}
			if len(page) != tt.wantCount {
				t.Fatalf("expected %d reservations, got %d", tt.wantCount, len(page))
			}
			if tt.wantCount > 0 && page[0].ID != tt.wantFirst {
				t.Errorf("expected first id %d, got %d", tt.wantFirst, page[0].ID)
			}
		})
	}
}

func TestCount(t *testing.T) {
	repo := NewMemoryReservationRepository()
	ctx := context.Background()

	if n, _ := repo.Count(ctx); n != 0 {
		t.Errorf("expected 0, got %d", n)
	}

	insert(t, repo, "Room A", 9)
	insert(t, repo, "Room B", 10)

	if n, _ := repo.Count(ctx); n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}

func TestExecuteSerializedFailureLeavesStoreUnchanged(t *testing.T) {
	repo := NewMemoryReservationRepository()
	ctx := context.Background()

	insert(t, repo, "Room A", 9)

	wantErr := errors.New("admission rejected")
	err := repo.ExecuteSerialized(ctx, func(tx Tx) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected admission error, got %v", err)
	}

	if n, _ := repo.Count(ctx); n != 1 {
		t.Errorf("expected store unchanged with 1 reservation, got %d", n)
	}
}

func TestExecuteSerializedCancelledContext(t *testing.T) {
	repo := NewMemoryReservationRepository()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.ExecuteSerialized(ctx, func(tx Tx) error {
		t.Error("fn must not run with a cancelled context")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

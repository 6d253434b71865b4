package common

import (
	"testing"
	"time"

	"varaamo/pkg/model"
)

// ClearReservations deletes every reservation so each test starts from an
// empty store.
func ClearReservations(t *testing.T, suite *IntegrationTestSuite) {
	t.Helper()

	resp, err := suite.Client.ListAll(100, 0)
	if err != nil {
		t.Fatalf("failed to list reservations: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("failed to list reservations, status %d", resp.StatusCode)
	}

	var page struct {
		Data []model.Reservation `json:"data"`
	}
	if err := resp.DecodeJSON(&page); err != nil {
		t.Fatalf("failed to decode reservation page: %v", err)
	}

	for _, reservation := range page.Data {
		if _, err := suite.Client.Delete(reservation.ID); err != nil {
			t.Fatalf("failed to delete reservation %d: %v", reservation.ID, err)
		}
	}
}

// NextBusinessSlot returns a start/end pair inside office hours on a day
// far enough in the future to never be in the past.
func NextBusinessSlot(t *testing.T, startHour, endHour int) (string, string) {
	t.Helper()

	day := time.Now().AddDate(0, 0, 7)
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, time.Local)
	end := time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, time.Local)
	return start.Format("2006-01-02T15:04"), end.Format("2006-01-02T15:04")
}

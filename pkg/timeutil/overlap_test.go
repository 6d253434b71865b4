package timeutil

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2030, 5, 20, hour, min, 0, 0, time.Local)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{
			name:   "identical intervals",
			aStart: at(10, 0), aEnd: at(11, 0),
			bStart: at(10, 0), bEnd: at(11, 0),
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: at(10, 0), aEnd: at(11, 0),
			bStart: at(10, 30), bEnd: at(11, 30),
			want: true,
		},
		{
			name:   "a contains b",
			aStart: at(9, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(11, 0),
			want: true,
		},
		{
			name:   "b contains a",
			aStart: at(10, 0), aEnd: at(11, 0),
			bStart: at(9, 0), bEnd: at(12, 0),
			want: true,
		},
		{
			name:   "a ends exactly when b starts",
			aStart: at(9, 0), aEnd: at(10, 0),
			bStart: at(10, 0), bEnd: at(11, 0),
			want: false,
		},
		{
			name:   "a starts exactly when b ends",
			aStart: at(11, 0), aEnd: at(12, 0),
			bStart: at(10, 0), bEnd: at(11, 0),
			want: false,
		},
		{
			name:   "disjoint with gap",
			aStart: at(8, 0), aEnd: at(9, 0),
			bStart: at(14, 0), bEnd: at(15, 0),
			want: false,
		},
		{
			name:   "one minute overlap",
			aStart: at(10, 0), aEnd: at(11, 1),
			bStart: at(11, 0), bEnd: at(12, 0),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}

			// Overlap is symmetric.
			mirrored := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			if mirrored != tt.want {
				t.Errorf("Overlaps() mirrored = %v, want %v", mirrored, tt.want)
			}
		})
	}
}

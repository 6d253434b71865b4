// Package timeutil holds the interval arithmetic the admission logic is
// built on: half-open overlap detection and the office-hours window.
package timeutil

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that only touch at an endpoint do
// not overlap, so a reservation may begin exactly when another ends.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

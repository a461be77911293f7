package domain

import "time"

// UnscheduledStart is the placeholder start time of items that have not been
// scheduled yet. Together with a zero duration it means "no time frame".
var UnscheduledStart = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// IsUnscheduled reports whether t is the unscheduled placeholder (or the zero time).
func IsUnscheduled(t time.Time) bool {
	return t.IsZero() || t.Equal(UnscheduledStart)
}

// Overlaps reports whether the half-open frames [aStart, aEnd) and [bStart, bEnd)
// overlap. Frames that only touch at an endpoint do not overlap, and two frames
// with the same start always overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aStart.Before(bStart) && !aEnd.After(bStart) {
		return false
	}
	if bStart.Before(aStart) && !bEnd.After(aStart) {
		return false
	}
	return true
}

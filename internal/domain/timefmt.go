package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date-times are ISO-8601 local date-times without zone. Parsed values carry
// the UTC location so round-trips compare equal.
const (
	dateTimeMinuteLayout = "2006-01-02T15:04"
	dateTimeSecondLayout = "2006-01-02T15:04:05"
)

// wallClockUTC keeps the wall clock of t and drops its zone, matching what
// FormatDateTime writes and ParseDateTime reads back.
func wallClockUTC(t time.Time) time.Time {
	if t.Location() == time.UTC {
		return t
	}
	y, mo, d := t.Date()
	h, mi, sec := t.Clock()
	return time.Date(y, mo, d, h, mi, sec, t.Nanosecond(), time.UTC)
}

// FormatDateTime formats t as an ISO-8601 local date-time, omitting seconds
// when they are zero.
func FormatDateTime(t time.Time) string {
	switch {
	case t.Second() == 0 && t.Nanosecond() == 0:
		return t.Format(dateTimeMinuteLayout)
	case t.Nanosecond() == 0:
		return t.Format(dateTimeSecondLayout)
	default:
		return t.Format("2006-01-02T15:04:05.999999999")
	}
}

// ParseDateTime parses an ISO-8601 local date-time with minute, second or
// sub-second precision.
func ParseDateTime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range []string{dateTimeSecondLayout, dateTimeMinuteLayout} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
}

// FormatPeriod formats d as an ISO-8601 duration (PT1H30M, PT0S, PT0.5S).
func FormatPeriod(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	b.WriteString("PT")
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	if hours > 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	if d > 0 {
		secs := d / time.Second
		frac := d % time.Second
		if frac == 0 {
			fmt.Fprintf(&b, "%dS", secs)
		} else {
			fraction := strings.TrimRight(fmt.Sprintf("%09d", frac), "0")
			fmt.Fprintf(&b, "%d.%sS", secs, fraction)
		}
	}
	return b.String()
}

var periodPattern = regexp.MustCompile(`^([-+]?)P(?:([-+]?\d+)D)?(T(?:([-+]?\d+)H)?(?:([-+]?\d+)M)?(?:([-+]?\d+)(?:[.,](\d{0,9}))?S)?)?$`)

// ParsePeriod parses an ISO-8601 duration in the day/hour/minute/second subset.
func ParsePeriod(raw string) (time.Duration, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	m := periodPattern.FindStringSubmatch(s)
	if m == nil || s == "P" || strings.HasSuffix(s, "T") || strings.HasSuffix(s, "P") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, raw)
	}

	var total time.Duration
	units := []struct {
		value string
		unit  time.Duration
	}{
		{m[2], 24 * time.Hour},
		{m[4], time.Hour},
		{m[5], time.Minute},
		{m[6], time.Second},
	}
	for _, u := range units {
		if u.value == "" {
			continue
		}
		n, err := strconv.ParseInt(u.value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, raw)
		}
		total += time.Duration(n) * u.unit
	}
	if m[7] != "" {
		frac, err := strconv.ParseInt((m[7] + "000000000")[:9], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, raw)
		}
		if strings.HasPrefix(m[6], "-") {
			frac = -frac
		}
		total += time.Duration(frac)
	}
	if m[1] == "-" {
		total = -total
	}
	return total, nil
}

// ParseFlexiblePeriod accepts either a Go duration ("1h30m") or an ISO-8601
// duration ("PT1H30M"). Used for user input.
func ParseFlexiblePeriod(raw string) (time.Duration, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	return ParsePeriod(s)
}

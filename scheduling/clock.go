package scheduling

import (
	"errors"
	"fmt"
	"time"
)

const (
	clockLayout = "15:04"
	dateLayout  = "2006-01-02"
)

// ErrCrossesMidnight is returned when a start time plus a duration would
// run past 23:59. Same-day slots only; the end time is never wrapped.
var ErrCrossesMidnight = errors.New("time slot crosses midnight")

// ParseClock converts an "HH:MM" wall-clock string to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes since midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes computes start + d as an "HH:MM" string on the same day.
func AddMinutes(start string, d int) (string, error) {
	m, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	end := m + d
	if end >= 24*60 {
		return "", ErrCrossesMidnight
	}
	return FormatClock(end), nil
}

// MinutesBetween returns end - start in minutes. Both must be valid "HH:MM"
// strings on the same day.
func MinutesBetween(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// ParseDate validates an ISO calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

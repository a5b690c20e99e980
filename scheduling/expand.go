package scheduling

import (
	"errors"
)

// DefaultExpandWeeks is how far ahead a recurrence is materialized when the
// caller does not say otherwise.
const DefaultExpandWeeks = 4

var (
	ErrNoRecurrenceDays = errors.New("recurrence has no weekdays")
	ErrNoTimeSlots      = errors.New("request has no time slots")
)

// ExpandedSlot is one concrete slot occurrence produced from a bulk request.
type ExpandedSlot struct {
	Date      string
	StartTime string
	EndTime   string
}

// Expand materializes a bulk request into dated slot occurrences: every day
// within `weeks` weeks of the start date (inclusive) whose weekday is in the
// recurrence set yields one occurrence per time range. Output is ordered by
// date, then by time-range position in the request.
func Expand(req BulkRequest, weeks int) ([]ExpandedSlot, error) {
	start, err := ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if len(req.Recurring.Days) == 0 {
		return nil, ErrNoRecurrenceDays
	}
	if len(req.TimeSlots) == 0 {
		return nil, ErrNoTimeSlots
	}
	if weeks <= 0 {
		weeks = DefaultExpandWeeks
	}

	var wanted [7]bool
	for _, d := range req.Recurring.Days {
		if d < 0 || d > 6 {
			return nil, ErrInvalidWeekday
		}
		wanted[d] = true
	}

	var out []ExpandedSlot
	for offset := 0; offset < weeks*7; offset++ {
		day := start.AddDate(0, 0, offset)
		if !wanted[int(day.Weekday())] {
			continue
		}
		date := day.Format(dateLayout)
		for _, slot := range req.TimeSlots {
			out = append(out, ExpandedSlot{
				Date:      date,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}
	}
	return out, nil
}

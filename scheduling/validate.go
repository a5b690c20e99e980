package scheduling

import (
	"fmt"
	"strings"
)

// SlotError is a validation failure attached to one time row, so callers can
// show which row failed.
type SlotError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// ValidationError carries per-row errors plus form-level errors.
type ValidationError struct {
	Slots   []SlotError `json:"slots,omitempty"`
	General []string    `json:"general,omitempty"`
}

func (e *ValidationError) Error() string {
	var parts []string
	parts = append(parts, e.General...)
	for _, s := range e.Slots {
		parts = append(parts, fmt.Sprintf("slot %d: %s", s.Index+1, s.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) empty() bool {
	return len(e.Slots) == 0 && len(e.General) == 0
}

// Validate checks the whole request. It returns nil when submission is
// allowed, otherwise a *ValidationError.
func (b *Builder) Validate() error {
	verr := &ValidationError{}

	if b.facilityID == 0 {
		verr.General = append(verr.General, "select a facility")
	}
	svc, hasService := b.Service()
	if !hasService {
		verr.General = append(verr.General, "select a service")
	}
	if b.startDate == "" {
		verr.General = append(verr.General, "select a start date")
	}
	if len(b.Weekdays()) == 0 {
		verr.General = append(verr.General, "select at least one weekday")
	}

	validRows := 0
	for i, row := range b.rows {
		switch {
		case row.StartTime == "" && row.EndTime == "":
			// A lone untouched row is reported form-level below; extra
			// untouched rows are row errors.
			if len(b.rows) > 1 {
				verr.Slots = append(verr.Slots, SlotError{i, "start and end time are required"})
			}
			continue
		case row.StartTime == "":
			verr.Slots = append(verr.Slots, SlotError{i, "start time is required"})
			continue
		case row.EndTime == "":
			verr.Slots = append(verr.Slots, SlotError{i, "end time is required"})
			continue
		}

		minutes, err := MinutesBetween(row.StartTime, row.EndTime)
		if err != nil {
			verr.Slots = append(verr.Slots, SlotError{i, err.Error()})
			continue
		}
		if minutes <= 0 {
			verr.Slots = append(verr.Slots, SlotError{i, "end time must be after start time"})
			continue
		}
		if hasService && abs(minutes-svc.Duration) > durationTolerance {
			verr.Slots = append(verr.Slots, SlotError{i,
				fmt.Sprintf("slot must be %d minutes to match the service duration", svc.Duration)})
			continue
		}
		validRows++
	}

	if validRows == 0 {
		verr.General = append(verr.General, "add at least one time slot")
	}

	if verr.empty() {
		return nil
	}
	return verr
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

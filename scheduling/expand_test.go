package scheduling

import (
	"errors"
	"testing"
)

func bulkRequest() BulkRequest {
	return BulkRequest{
		FacilityID: 1,
		ServiceID:  10,
		Date:       "2024-06-10", // a Monday
		TimeSlots: []SlotRow{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "17:00", EndTime: "18:00"},
		},
		Recurring: Recurrence{Days: []int{1, 3}}, // Monday, Wednesday
		IsActive:  true,
	}
}

func TestExpandCounts(t *testing.T) {
	slots, err := Expand(bulkRequest(), 2)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	// 2 weeks x 2 matching weekdays x 2 time ranges.
	if len(slots) != 8 {
		t.Fatalf("len = %d, want 8", len(slots))
	}

	first := ExpandedSlot{Date: "2024-06-10", StartTime: "09:00", EndTime: "10:00"}
	if slots[0] != first {
		t.Errorf("slots[0] = %+v, want %+v", slots[0], first)
	}
	// Wednesday of the first week.
	third := ExpandedSlot{Date: "2024-06-12", StartTime: "09:00", EndTime: "10:00"}
	if slots[2] != third {
		t.Errorf("slots[2] = %+v, want %+v", slots[2], third)
	}
	last := ExpandedSlot{Date: "2024-06-19", StartTime: "17:00", EndTime: "18:00"}
	if slots[7] != last {
		t.Errorf("slots[7] = %+v, want %+v", slots[7], last)
	}
}

func TestExpandOrdering(t *testing.T) {
	slots, err := Expand(bulkRequest(), 3)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Date < slots[i-1].Date {
			t.Fatalf("dates out of order at %d: %s after %s", i, slots[i].Date, slots[i-1].Date)
		}
	}
}

func TestExpandStartDateOutsideRecurrence(t *testing.T) {
	req := bulkRequest()
	req.Recurring.Days = []int{0} // Sundays only, start date is a Monday
	slots, err := Expand(req, 1)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	// One Sunday inside the 7 day window: 2024-06-16.
	if len(slots) != 2 {
		t.Fatalf("len = %d, want 2", len(slots))
	}
	if slots[0].Date != "2024-06-16" {
		t.Errorf("date = %s, want 2024-06-16", slots[0].Date)
	}
}

func TestExpandDefaultsHorizon(t *testing.T) {
	slots, err := Expand(bulkRequest(), 0)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(slots) != DefaultExpandWeeks*2*2 {
		t.Errorf("len = %d, want %d", len(slots), DefaultExpandWeeks*2*2)
	}
}

func TestExpandRejectsBadInput(t *testing.T) {
	req := bulkRequest()
	req.Recurring.Days = nil
	if _, err := Expand(req, 1); !errors.Is(err, ErrNoRecurrenceDays) {
		t.Errorf("expected ErrNoRecurrenceDays, got %v", err)
	}

	req = bulkRequest()
	req.TimeSlots = nil
	if _, err := Expand(req, 1); !errors.Is(err, ErrNoTimeSlots) {
		t.Errorf("expected ErrNoTimeSlots, got %v", err)
	}

	req = bulkRequest()
	req.Recurring.Days = []int{8}
	if _, err := Expand(req, 1); !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("expected ErrInvalidWeekday, got %v", err)
	}

	req = bulkRequest()
	req.Date = "10-06-2024"
	if _, err := Expand(req, 1); err == nil {
		t.Error("expected error for malformed date")
	}
}

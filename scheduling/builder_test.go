package scheduling

import (
	"errors"
	"reflect"
	"testing"
)

func testCatalog() ([]FacilityInfo, []ServiceInfo) {
	facilities := []FacilityInfo{
		{ID: 1, Name: "Greenfield Cricket Ground"},
		{ID: 2, Name: "Ace Tennis Club"},
	}
	services := []ServiceInfo{
		{ID: 10, FacilityID: 1, Name: "Net Practice", Duration: 60, Price: 500},
		{ID: 11, FacilityID: 1, Name: "Full Pitch", Duration: 120, Price: 1500},
		{ID: 20, FacilityID: 2, Name: "Court Rental", Duration: 90, Price: 800},
	}
	return facilities, services
}

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	facilities, services := testCatalog()
	return NewBuilder(facilities, services)
}

// seedBuilder selects facility 1, service 10 (60 min) and a start date.
func seedBuilder(t *testing.T) *Builder {
	t.Helper()
	b := newTestBuilder(t)
	b.SelectFacility(1)
	if err := b.SelectService(10); err != nil {
		t.Fatalf("SelectService: %v", err)
	}
	if err := b.SetStartDate("2024-06-10"); err != nil {
		t.Fatalf("SetStartDate: %v", err)
	}
	return b
}

func TestAutoComputedEndTime(t *testing.T) {
	tests := []struct {
		name    string
		service uint
		start   string
		wantEnd string
	}{
		{"60 minute service", 10, "09:00", "10:00"},
		{"60 minutes over the hour", 10, "09:45", "10:45"},
		{"120 minute service", 11, "08:30", "10:30"},
		{"late evening still same day", 10, "22:59", "23:59"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			b.SelectFacility(1)
			if err := b.SelectService(tt.service); err != nil {
				t.Fatalf("SelectService: %v", err)
			}
			if err := b.SetStartTime(0, tt.start); err != nil {
				t.Fatalf("SetStartTime: %v", err)
			}
			if got := b.Rows()[0].EndTime; got != tt.wantEnd {
				t.Errorf("end time = %q, want %q", got, tt.wantEnd)
			}
		})
	}
}

func TestStartTimeCrossingMidnightRejected(t *testing.T) {
	b := seedBuilder(t)
	err := b.SetStartTime(0, "23:30")
	if !errors.Is(err, ErrCrossesMidnight) {
		t.Fatalf("expected ErrCrossesMidnight, got %v", err)
	}
	if end := b.Rows()[0].EndTime; end != "" {
		t.Errorf("end time should stay empty, got %q", end)
	}
}

func TestNoAutoFillWithoutService(t *testing.T) {
	b := newTestBuilder(t)
	b.SelectFacility(1)
	if err := b.SetStartTime(0, "09:00"); err != nil {
		t.Fatalf("SetStartTime: %v", err)
	}
	if end := b.Rows()[0].EndTime; end != "" {
		t.Errorf("end time should stay empty without a service, got %q", end)
	}
}

func TestSlotCapEnforced(t *testing.T) {
	b := seedBuilder(t)
	for i := 1; i < MaxSlotRows; i++ {
		if err := b.AddSlot(); err != nil {
			t.Fatalf("AddSlot %d: %v", i, err)
		}
	}
	if got := len(b.Rows()); got != MaxSlotRows {
		t.Fatalf("row count = %d, want %d", got, MaxSlotRows)
	}
	if err := b.AddSlot(); !errors.Is(err, ErrTooManySlots) {
		t.Fatalf("expected ErrTooManySlots, got %v", err)
	}
	if got := len(b.Rows()); got != MaxSlotRows {
		t.Errorf("row count after rejected add = %d, want %d", got, MaxSlotRows)
	}
}

func TestRemoveLastRowResetsToEmpty(t *testing.T) {
	b := seedBuilder(t)
	if err := b.SetStartTime(0, "09:00"); err != nil {
		t.Fatalf("SetStartTime: %v", err)
	}
	if err := b.RemoveSlot(0); err != nil {
		t.Fatalf("RemoveSlot: %v", err)
	}
	rows := b.Rows()
	if len(rows) != 1 || rows[0] != (SlotRow{}) {
		t.Errorf("rows = %+v, want one empty row", rows)
	}
}

func TestFacilityChangeClearsForeignService(t *testing.T) {
	b := seedBuilder(t)
	if err := b.SetStartTime(0, "09:00"); err != nil {
		t.Fatalf("SetStartTime: %v", err)
	}

	b.SelectFacility(2)
	if _, ok := b.Service(); ok {
		t.Error("service selection should be cleared when facility changes")
	}
	rows := b.Rows()
	if len(rows) != 1 || rows[0] != (SlotRow{}) {
		t.Errorf("rows = %+v, want reset to one empty row", rows)
	}
}

func TestServiceChangeResetsRows(t *testing.T) {
	b := seedBuilder(t)
	if err := b.SetStartTime(0, "09:00"); err != nil {
		t.Fatalf("SetStartTime: %v", err)
	}
	if err := b.AddSlot(); err != nil {
		t.Fatalf("AddSlot: %v", err)
	}

	if err := b.SelectService(11); err != nil {
		t.Fatalf("SelectService: %v", err)
	}
	rows := b.Rows()
	if len(rows) != 1 || rows[0] != (SlotRow{}) {
		t.Errorf("rows = %+v, want reset to one empty row", rows)
	}
}

func TestSelectServiceOutsideFacility(t *testing.T) {
	b := newTestBuilder(t)
	b.SelectFacility(1)
	if err := b.SelectService(20); !errors.Is(err, ErrServiceNotAvailable) {
		t.Fatalf("expected ErrServiceNotAvailable, got %v", err)
	}
}

func TestToggleWeekdayIsSymmetric(t *testing.T) {
	b := newTestBuilder(t)
	if err := b.ToggleWeekday(1); err != nil {
		t.Fatalf("ToggleWeekday: %v", err)
	}
	if err := b.ToggleWeekday(3); err != nil {
		t.Fatalf("ToggleWeekday: %v", err)
	}
	if got := b.Weekdays(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("weekdays = %v, want [1 3]", got)
	}
	if err := b.ToggleWeekday(1); err != nil {
		t.Fatalf("ToggleWeekday: %v", err)
	}
	if got := b.Weekdays(); !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("weekdays = %v, want [3]", got)
	}
	if err := b.ToggleWeekday(7); !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("expected ErrInvalidWeekday, got %v", err)
	}
}

func TestValidationGating(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*Builder)
		wantGeneral bool
		wantSlotErr bool
	}{
		{
			name:        "no weekday selected",
			setup:       func(b *Builder) { b.SetStartTime(0, "09:00") },
			wantGeneral: true,
		},
		{
			name: "no time slot entered",
			setup: func(b *Builder) {
				b.ToggleWeekday(1)
			},
			wantGeneral: true,
		},
		{
			name: "end before start",
			setup: func(b *Builder) {
				b.ToggleWeekday(1)
				b.SetStartTime(0, "09:00")
				b.SetEndTime(0, "08:00")
			},
			wantSlotErr: true,
		},
		{
			name: "duration mismatch beyond tolerance",
			setup: func(b *Builder) {
				b.ToggleWeekday(1)
				b.SetStartTime(0, "09:00")
				b.SetEndTime(0, "09:30")
			},
			wantSlotErr: true,
		},
		{
			name: "missing end time",
			setup: func(b *Builder) {
				b.ToggleWeekday(1)
				b.SetStartTime(0, "09:00")
				b.SetEndTime(0, "")
			},
			wantSlotErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := seedBuilder(t)
			tt.setup(b)

			err := b.Validate()
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if tt.wantGeneral && len(verr.General) == 0 {
				t.Errorf("expected form-level errors, got %+v", verr)
			}
			if tt.wantSlotErr && len(verr.Slots) == 0 {
				t.Errorf("expected per-row errors, got %+v", verr)
			}
		})
	}
}

func TestValidationWithinTolerance(t *testing.T) {
	b := seedBuilder(t)
	b.ToggleWeekday(1)
	if err := b.SetStartTime(0, "09:00"); err != nil {
		t.Fatalf("SetStartTime: %v", err)
	}
	// 61 minutes against a 60 minute service: inside the 1 minute tolerance.
	if err := b.SetEndTime(0, "10:01"); err != nil {
		t.Fatalf("SetEndTime: %v", err)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("expected validation to pass, got %v", err)
	}
}

func TestPreviewDeterminism(t *testing.T) {
	b := seedBuilder(t)
	b.ToggleWeekday(1)
	b.ToggleWeekday(3)
	if err := b.SetStartTime(0, "09:00"); err != nil {
		t.Fatalf("SetStartTime: %v", err)
	}

	rows := b.Preview()
	if len(rows) != 1 {
		t.Fatalf("preview rows = %d, want 1", len(rows))
	}
	want := PreviewRow{
		Date:          "2024-06-10",
		Day:           "Mon",
		StartTime:     "09:00",
		EndTime:       "10:00",
		IsActive:      true,
		RecurringDays: "Monday, Wednesday",
	}
	if rows[0] != want {
		t.Errorf("preview row = %+v, want %+v", rows[0], want)
	}

	// Incomplete selections must yield an empty preview.
	b.ToggleWeekday(1)
	b.ToggleWeekday(3)
	if rows := b.Preview(); rows != nil {
		t.Errorf("preview with no weekdays = %+v, want empty", rows)
	}
}

func TestPreviewCountsOnlyCompleteRows(t *testing.T) {
	b := seedBuilder(t)
	b.ToggleWeekday(2)
	if err := b.SetStartTime(0, "09:00"); err != nil {
		t.Fatalf("SetStartTime: %v", err)
	}
	if err := b.AddSlot(); err != nil {
		t.Fatalf("AddSlot: %v", err)
	}
	// Second row left untouched.
	if got := len(b.Preview()); got != 1 {
		t.Errorf("preview rows = %d, want 1", got)
	}
}

func TestPayloadShape(t *testing.T) {
	b := seedBuilder(t)
	b.ToggleWeekday(1)
	b.ToggleWeekday(3)
	if err := b.SetStartTime(0, "09:00"); err != nil {
		t.Fatalf("SetStartTime: %v", err)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	got := b.Payload()
	want := BulkRequest{
		FacilityID: 1,
		ServiceID:  10,
		Date:       "2024-06-10",
		TimeSlots:  []SlotRow{{StartTime: "09:00", EndTime: "10:00"}},
		Recurring:  Recurrence{Days: []int{1, 3}},
		IsActive:   true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("payload = %+v, want %+v", got, want)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	b := seedBuilder(t)
	b.ToggleWeekday(5)
	b.SetStartTime(0, "09:00")
	b.AddSlot()
	b.SetActive(false)

	b.Reset()
	first := *b
	b.Reset()

	if !reflect.DeepEqual(first.rows, b.rows) || first.facilityID != b.facilityID ||
		first.serviceID != b.serviceID || first.startDate != b.startDate ||
		first.days != b.days || first.active != b.active {
		t.Error("consecutive resets diverged")
	}
	if len(b.Rows()) != 1 || b.Rows()[0] != (SlotRow{}) {
		t.Errorf("rows after reset = %+v, want one empty row", b.Rows())
	}
	if _, ok := b.Service(); ok {
		t.Error("service should be cleared after reset")
	}
	if b.Preview() != nil {
		t.Error("preview should be empty after reset")
	}
}

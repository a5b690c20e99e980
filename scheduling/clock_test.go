package scheduling

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:3", 0, true},
		{"", 0, true},
		{"banana", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("09:00", 90)
	if err != nil {
		t.Fatalf("AddMinutes: %v", err)
	}
	if got != "10:30" {
		t.Errorf("AddMinutes = %q, want 10:30", got)
	}

	if _, err := AddMinutes("23:30", 60); !errors.Is(err, ErrCrossesMidnight) {
		t.Errorf("expected ErrCrossesMidnight, got %v", err)
	}
	// 23:00 + 60 lands exactly on midnight, which is the next day.
	if _, err := AddMinutes("23:00", 60); !errors.Is(err, ErrCrossesMidnight) {
		t.Errorf("expected ErrCrossesMidnight at exact midnight, got %v", err)
	}
}

func TestMinutesBetween(t *testing.T) {
	got, err := MinutesBetween("09:00", "10:15")
	if err != nil {
		t.Fatalf("MinutesBetween: %v", err)
	}
	if got != 75 {
		t.Errorf("MinutesBetween = %d, want 75", got)
	}

	got, err = MinutesBetween("10:00", "09:00")
	if err != nil {
		t.Fatalf("MinutesBetween: %v", err)
	}
	if got != -60 {
		t.Errorf("MinutesBetween reversed = %d, want -60", got)
	}
}

func TestTimeOptions(t *testing.T) {
	opts := TimeOptions()
	if len(opts) != 96 {
		t.Fatalf("len = %d, want 96", len(opts))
	}
	if opts[0] != "00:00" {
		t.Errorf("first = %q, want 00:00", opts[0])
	}
	if opts[37] != "09:15" {
		t.Errorf("opts[37] = %q, want 09:15", opts[37])
	}
	if opts[95] != "23:45" {
		t.Errorf("last = %q, want 23:45", opts[95])
	}
}

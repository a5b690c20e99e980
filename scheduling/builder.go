// Package scheduling implements the bulk time-slot request builder used by
// the admin back-office: a facility/service selection, a start date, a set of
// recurring weekdays and a list of same-day time ranges are combined into a
// single creation request, with every time range held consistent with the
// selected service's fixed duration.
package scheduling

import (
	"errors"
	"strings"
)

const (
	// MaxSlotRows caps how many time ranges one bulk request may carry.
	MaxSlotRows = 20

	// durationTolerance absorbs rounding when comparing a row's length
	// against the service duration, in minutes.
	durationTolerance = 1
)

var (
	ErrTooManySlots        = errors.New("cannot add more than 20 time slots")
	ErrNoSuchRow           = errors.New("time slot row does not exist")
	ErrInvalidWeekday      = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrServiceNotAvailable = errors.New("service does not belong to the selected facility")
)

// FacilityInfo is the read-only facility view the builder needs.
type FacilityInfo struct {
	ID   uint
	Name string
}

// ServiceInfo is the read-only service view the builder needs. Duration is
// the fixed slot length in minutes.
type ServiceInfo struct {
	ID         uint
	FacilityID uint
	Name       string
	Duration   int
	Price      float64
}

// SlotRow is one editable start/end pair. Empty strings mean "not set yet".
type SlotRow struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (r SlotRow) complete() bool {
	return r.StartTime != "" && r.EndTime != ""
}

// Builder holds the working state of one bulk time-slot request. It is not
// safe for concurrent use; each operator session gets its own.
type Builder struct {
	facilities []FacilityInfo
	services   []ServiceInfo

	facilityID uint
	serviceID  uint
	startDate  string
	days       [7]bool
	rows       []SlotRow
	active     bool
}

// NewBuilder creates a builder over the given catalog snapshots.
func NewBuilder(facilities []FacilityInfo, services []ServiceInfo) *Builder {
	b := &Builder{facilities: facilities, services: services}
	b.Reset()
	return b
}

// Reset clears every field back to the initial state: no selections, one
// empty time-slot row, active by default.
func (b *Builder) Reset() {
	b.facilityID = 0
	b.serviceID = 0
	b.startDate = ""
	b.days = [7]bool{}
	b.rows = []SlotRow{{}}
	b.active = true
}

// SelectFacility sets the facility and filters the service list to it. If a
// previously selected service no longer belongs, the selection and all
// entered time rows are invalidated.
func (b *Builder) SelectFacility(id uint) {
	b.facilityID = id
	if b.serviceID == 0 {
		return
	}
	for _, s := range b.FilteredServices() {
		if s.ID == b.serviceID {
			return
		}
	}
	b.serviceID = 0
	b.rows = []SlotRow{{}}
}

// FilteredServices returns the services belonging to the selected facility.
func (b *Builder) FilteredServices() []ServiceInfo {
	if b.facilityID == 0 {
		return nil
	}
	var out []ServiceInfo
	for _, s := range b.services {
		if s.FacilityID == b.facilityID {
			out = append(out, s)
		}
	}
	return out
}

// SelectService fixes the expected slot duration. All entered time rows are
// cleared: they were validated against a possibly different duration.
func (b *Builder) SelectService(id uint) error {
	for _, s := range b.FilteredServices() {
		if s.ID == id {
			b.serviceID = id
			b.rows = []SlotRow{{}}
			return nil
		}
	}
	return ErrServiceNotAvailable
}

// Service returns the currently selected service, if any.
func (b *Builder) Service() (ServiceInfo, bool) {
	for _, s := range b.services {
		if s.ID == b.serviceID && b.serviceID != 0 {
			return s, true
		}
	}
	return ServiceInfo{}, false
}

// AddSlot appends an empty time row, up to MaxSlotRows.
func (b *Builder) AddSlot() error {
	if len(b.rows) >= MaxSlotRows {
		return ErrTooManySlots
	}
	b.rows = append(b.rows, SlotRow{})
	return nil
}

// SetStartTime sets a row's start and, when a service is selected, derives
// the end time as start + duration. A start late enough to push the end past
// midnight is rejected and leaves the end empty.
func (b *Builder) SetStartTime(i int, start string) error {
	if i < 0 || i >= len(b.rows) {
		return ErrNoSuchRow
	}
	b.rows[i].StartTime = start
	b.rows[i].EndTime = ""
	svc, ok := b.Service()
	if !ok || start == "" {
		return nil
	}
	end, err := AddMinutes(start, svc.Duration)
	if err != nil {
		return err
	}
	b.rows[i].EndTime = end
	return nil
}

// SetEndTime sets a row's end time directly.
func (b *Builder) SetEndTime(i int, end string) error {
	if i < 0 || i >= len(b.rows) {
		return ErrNoSuchRow
	}
	b.rows[i].EndTime = end
	return nil
}

// RemoveSlot drops a row. The row list never becomes empty: removing the
// last row resets it to a single empty entry.
func (b *Builder) RemoveSlot(i int) error {
	if i < 0 || i >= len(b.rows) {
		return ErrNoSuchRow
	}
	b.rows = append(b.rows[:i], b.rows[i+1:]...)
	if len(b.rows) == 0 {
		b.rows = []SlotRow{{}}
	}
	return nil
}

// ToggleWeekday adds or removes a weekday from the recurrence set.
func (b *Builder) ToggleWeekday(d int) error {
	if d < 0 || d > 6 {
		return ErrInvalidWeekday
	}
	b.days[d] = !b.days[d]
	return nil
}

// SetStartDate anchors the generation at an ISO calendar date.
func (b *Builder) SetStartDate(date string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	b.startDate = date
	return nil
}

// SetActive sets the default visibility flag applied to generated slots.
func (b *Builder) SetActive(active bool) {
	b.active = active
}

// Rows returns a copy of the current time rows.
func (b *Builder) Rows() []SlotRow {
	out := make([]SlotRow, len(b.rows))
	copy(out, b.rows)
	return out
}

// Weekdays returns the selected weekday indices in ascending order.
func (b *Builder) Weekdays() []int {
	var out []int
	for d := 0; d < 7; d++ {
		if b.days[d] {
			out = append(out, d)
		}
	}
	return out
}

// weekdayLabel renders the recurrence set as "Monday, Wednesday".
func (b *Builder) weekdayLabel() string {
	var names []string
	for d := 0; d < 7; d++ {
		if b.days[d] {
			names = append(names, DayName(d))
		}
	}
	return strings.Join(names, ", ")
}

package scheduling

// Recurrence names the weekdays (0=Sunday..6=Saturday) a slot template
// repeats on.
type Recurrence struct {
	Days []int `json:"days"`
}

// BulkRequest is the wire shape of one bulk creation call.
type BulkRequest struct {
	FacilityID uint       `json:"facilityId"`
	ServiceID  uint       `json:"serviceId"`
	Date       string     `json:"date"`
	TimeSlots  []SlotRow  `json:"timeSlots"`
	Recurring  Recurrence `json:"recurring"`
	IsActive   bool       `json:"isActive"`
}

// BulkResult is what the creation endpoint reports back.
type BulkResult struct {
	Created int      `json:"created"`
	Errors  []string `json:"errors,omitempty"`
}

// Payload serializes the builder into a creation request. Only completed
// rows are carried; callers should Validate first.
func (b *Builder) Payload() BulkRequest {
	req := BulkRequest{
		FacilityID: b.facilityID,
		ServiceID:  b.serviceID,
		Date:       b.startDate,
		Recurring:  Recurrence{Days: b.Weekdays()},
		IsActive:   b.active,
	}
	for _, row := range b.rows {
		if row.complete() {
			req.TimeSlots = append(req.TimeSlots, row)
		}
	}
	return req
}

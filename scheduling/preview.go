package scheduling

// PreviewRow is one line of the "N timeslots will be created" table: a
// representative date plus the recurrence rule. True per-weekday expansion
// happens in Expand, at creation time.
type PreviewRow struct {
	Date          string `json:"date"`
	Day           string `json:"day"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	IsActive      bool   `json:"isActive"`
	RecurringDays string `json:"recurringDays"`
}

// Preview derives the preview rows from the current state: one row per
// completed time range. It is empty while the facility, service, start date
// or weekday selection is incomplete.
func (b *Builder) Preview() []PreviewRow {
	if b.facilityID == 0 || b.serviceID == 0 || b.startDate == "" || len(b.Weekdays()) == 0 {
		return nil
	}
	date, err := ParseDate(b.startDate)
	if err != nil {
		return nil
	}

	label := b.weekdayLabel()
	day := DayShort(int(date.Weekday()))

	var rows []PreviewRow
	for _, row := range b.rows {
		if !row.complete() {
			continue
		}
		rows = append(rows, PreviewRow{
			Date:          b.startDate,
			Day:           day,
			StartTime:     row.StartTime,
			EndTime:       row.EndTime,
			IsActive:      b.active,
			RecurringDays: label,
		})
	}
	return rows
}

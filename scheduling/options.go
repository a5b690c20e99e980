package scheduling

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var dayShorts = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayName returns the full weekday name for a 0=Sunday..6=Saturday index.
func DayName(d int) string {
	if d < 0 || d > 6 {
		return ""
	}
	return dayNames[d]
}

// DayShort returns the abbreviated weekday name ("Mon") for a weekday index.
func DayShort(d int) string {
	if d < 0 || d > 6 {
		return ""
	}
	return dayShorts[d]
}

// TimeOptions returns the start-time picker choices: every quarter hour from
// 00:00 to 23:45, 96 entries.
func TimeOptions() []string {
	opts := make([]string, 0, 24*4)
	for m := 0; m < 24*60; m += 15 {
		opts = append(opts, FormatClock(m))
	}
	return opts
}

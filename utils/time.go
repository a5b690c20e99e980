package utils

import "time"

// ToIST converts UTC time to Indian Standard Time (IST)
func ToIST(t time.Time) time.Time {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return t // Fallback to UTC if IST is not available
	}
	return t.In(ist)
}

// DateString formats a time as the ISO date used on time slot records
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClockString formats a time as the "HH:MM" wall clock used on time slot records
func ClockString(t time.Time) string {
	return t.Format("15:04")
}

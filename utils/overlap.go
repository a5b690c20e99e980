package utils

import (
	"github.com/playspot/booking-api/db"
	"github.com/playspot/booking-api/models"
)

// SlotOverlaps reports whether a facility already has a slot on the given
// date whose range intersects [startTime, endTime). Zero-padded 24h "HH:MM"
// strings compare correctly as text, so the predicate runs on the stored
// strings directly. Rows are locked to keep concurrent bulk creates from
// racing each other.
func SlotOverlaps(facilityID, serviceID uint, date, startTime, endTime string) (bool, error) {
	var existing models.TimeSlot
	err := db.DB.Raw(`
		SELECT *
		FROM time_slots
		WHERE facility_id = ? AND service_id = ? AND date = ? AND deleted_at IS NULL AND (
			start_time < ? AND end_time > ?
		) FOR UPDATE
		LIMIT 1
	`, facilityID, serviceID, date, endTime, startTime).
		Scan(&existing).Error
	if err != nil {
		return false, err
	}

	return existing.ID != 0, nil
}

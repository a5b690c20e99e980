package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/playspot/booking-api/db"
	"github.com/playspot/booking-api/models"
	"github.com/playspot/booking-api/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the cron scheduler for booking
// reminders and slot housekeeping
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Run every minute to check for bookings in the next hour
	_, err := c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Hourly sweep: past unbooked slots disappear from the catalog
	_, err = c.AddFunc("@hourly", deactivatePastSlots)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started")
}

// sendBookingReminders checks for confirmed bookings starting in about an
// hour and emails the customer
func sendBookingReminders() {
	now := utils.ToIST(time.Now())
	today := utils.DateString(now)
	windowStart := utils.ClockString(now.Add(55 * time.Minute))
	windowEnd := utils.ClockString(now.Add(65 * time.Minute))

	// The window never spans midnight: slots are same-day by construction,
	// so a reminder that would cross into tomorrow is simply skipped
	if windowEnd < windowStart {
		return
	}

	var bookings []models.Booking
	err := db.DB.Preload("Customer").Preload("TimeSlot.Facility").Preload("TimeSlot.Service").
		Joins("JOIN time_slots ON bookings.time_slot_id = time_slots.id").
		Where("bookings.status = ? AND time_slots.date = ? AND time_slots.start_time BETWEEN ? AND ?",
			models.StatusConfirmed, today, windowStart, windowEnd).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		err := sendReminderEmail(&booking)
		if err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.Reference, err)
			continue
		}
		log.Printf("Sent reminder for booking %s to %s", booking.Reference, booking.Customer.Email)
	}
}

// deactivatePastSlots hides available slots whose date has passed
func deactivatePastSlots() {
	today := utils.DateString(utils.ToIST(time.Now()))

	res := db.DB.Model(&models.TimeSlot{}).
		Where("date < ? AND status = ? AND is_active = ?", today, models.SlotAvailable, true).
		Update("is_active", false)
	if res.Error != nil {
		log.Printf("Error deactivating past slots: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Deactivated %d past time slots", res.RowsAffected)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", booking.TimeSlot.Facility.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming booking scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Reference:</strong> %s</li>
			<li><strong>Venue:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>The PlaySpot Team</p>
	`, booking.Customer.Name, booking.Reference,
		booking.TimeSlot.Facility.Name, booking.TimeSlot.Service.Name,
		booking.TimeSlot.Date, booking.TimeSlot.StartTime, booking.TimeSlot.EndTime)

	return utils.SendEmail(booking.Customer.Email, subject, body)
}

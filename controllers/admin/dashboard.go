package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/playspot/booking-api/db"
	"github.com/playspot/booking-api/models"
	"github.com/playspot/booking-api/utils"
)

// GetDashboardOverview returns the back-office landing numbers: catalog
// sizes, today's slot load and booking totals by status
func GetDashboardOverview(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User role not found in context",
		})
	}
	if role != "admin" && role != "operator" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied. Only back-office staff can access this endpoint.",
		})
	}

	var statistics struct {
		TotalFacilities int64     `json:"total_facilities"`
		TotalServices   int64     `json:"total_services"`
		SlotsToday      int64     `json:"slots_today"`
		BookedToday     int64     `json:"booked_today"`
		TotalBookings   int64     `json:"total_bookings"`
		PendingCount    int64     `json:"pending_count"`
		ConfirmedCount  int64     `json:"confirmed_count"`
		CompletedCount  int64     `json:"completed_count"`
		CanceledCount   int64     `json:"canceled_count"`
		TotalRevenue    float64   `json:"total_revenue"`
		LastUpdated     time.Time `json:"last_updated"`
	}

	db.DB.Model(&models.Facility{}).Count(&statistics.TotalFacilities)
	db.DB.Model(&models.Service{}).Count(&statistics.TotalServices)

	today := utils.DateString(utils.ToIST(time.Now()))
	db.DB.Model(&models.TimeSlot{}).Where("date = ?", today).Count(&statistics.SlotsToday)
	db.DB.Model(&models.TimeSlot{}).Where("date = ? AND status = ?", today, models.SlotBooked).
		Count(&statistics.BookedToday)

	db.DB.Model(&models.Booking{}).Count(&statistics.TotalBookings)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusPending).Count(&statistics.PendingCount)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCompleted).Count(&statistics.CompletedCount)
	db.DB.Model(&models.Booking{}).Where("status = ?", models.StatusCanceled).Count(&statistics.CanceledCount)

	// Revenue comes from completed bookings only
	type RevenueResult struct {
		TotalRevenue float64
	}
	var revenue RevenueResult
	db.DB.Model(&models.Booking{}).
		Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(amount), 0) as total_revenue").
		Scan(&revenue)
	statistics.TotalRevenue = revenue.TotalRevenue

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

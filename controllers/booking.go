package controllers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playspot/booking-api/db"
	"github.com/playspot/booking-api/models"
	"github.com/playspot/booking-api/utils"
	"gorm.io/gorm"
)

// CreateBooking books an available time slot for the logged-in customer.
// The slot is claimed with a guarded update so two concurrent requests for
// the same slot cannot both succeed.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type BookingInput struct {
		TimeSlotID uint   `json:"time_slot_id"`
		Notes      string `json:"notes"`
	}
	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var booking models.Booking
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var slot models.TimeSlot
		if err := tx.Preload("Service").Preload("Facility").First(&slot, input.TimeSlotID).Error; err != nil {
			return fmt.Errorf("time slot not found")
		}
		if !slot.IsActive {
			return fmt.Errorf("time slot is not open for booking")
		}

		// Claim the slot; RowsAffected is 0 if someone got there first
		claimed := tx.Model(&models.TimeSlot{}).
			Where("id = ? AND status = ?", slot.ID, models.SlotAvailable).
			Update("status", models.SlotBooked)
		if claimed.Error != nil {
			return claimed.Error
		}
		if claimed.RowsAffected == 0 {
			return fmt.Errorf("time slot is no longer available")
		}

		booking = models.Booking{
			Reference:  uuid.NewString(),
			TimeSlotID: slot.ID,
			CustomerID: userID,
			Status:     models.StatusPending,
			Notes:      input.Notes,
			Amount:     slot.Service.Price - (slot.Service.Price * slot.Service.Discount / 100),
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	db.DB.Preload("TimeSlot.Facility").Preload("TimeSlot.Service").Preload("Customer").
		First(&booking, booking.ID)

	// Confirmation email must not block the response
	go func(b models.Booking) {
		if err := sendBookingEmail(&b); err != nil {
			log.Printf("Failed to send booking email for %s: %v", b.Reference, err)
		}
	}(booking)

	booking.Customer.Password = ""
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetMyBookings returns the logged-in customer's bookings
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Booking{}).Where("customer_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.Preload("TimeSlot.Facility").Preload("TimeSlot.Service").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"meta": utils.PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (int(total) + limit - 1) / limit,
		},
	})
}

// GetBooking returns one booking; customers can only see their own
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	var booking models.Booking
	if err := db.DB.Preload("TimeSlot.Facility").Preload("TimeSlot.Service").Preload("Customer").
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.CustomerID != userID && role != "admin" && role != "operator" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied",
		})
	}

	booking.Customer.Password = ""
	return c.JSON(booking)
}

// CancelBooking cancels a booking and releases its slot
func CancelBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("role").(string)

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.CustomerID != userID && role != "admin" && role != "operator" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return booking.UpdateStatus(tx, models.StatusCanceled)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(booking)
}

// UpdateBookingStatus moves a booking through its lifecycle (back-office)
func UpdateBookingStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusInput struct {
		Status models.BookingStatus `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return booking.UpdateStatus(tx, input.Status)
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(booking)
}

// GetAllBookings returns every booking for the back-office list
func GetAllBookings(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset := (page - 1) * limit

	query := db.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var bookings []models.Booking
	if err := query.Preload("TimeSlot.Facility").Preload("TimeSlot.Service").Preload("Customer").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	for i := range bookings {
		bookings[i].Customer.Password = ""
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"meta": utils.PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (int(total) + limit - 1) / limit,
		},
	})
}

// sendBookingEmail constructs and sends the booking confirmation email
func sendBookingEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Booking received - %s", booking.TimeSlot.Facility.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your booking. You will be notified once it is confirmed.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Reference:</strong> %s</li>
			<li><strong>Venue:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
			<li><strong>Amount:</strong> %.2f</li>
		</ul>
		<p>Best regards,</p>
		<p>The PlaySpot Team</p>
	`, booking.Customer.Name, booking.Reference,
		booking.TimeSlot.Facility.Name, booking.TimeSlot.Service.Name,
		booking.TimeSlot.Date, booking.TimeSlot.StartTime, booking.TimeSlot.EndTime,
		booking.Amount)

	return utils.SendEmail(booking.Customer.Email, subject, body)
}

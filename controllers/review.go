package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playspot/booking-api/db"
	"github.com/playspot/booking-api/models"
)

// CreateReview lets a customer rate a facility they have booked
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	review := new(models.Review)
	if err := c.BodyParser(review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	review.UserID = userID

	if review.Rating < 1 || review.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Rating must be between 1 and 5",
		})
	}

	var facility models.Facility
	if db.DB.First(&facility, review.FacilityID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Facility not found",
		})
	}

	// A customer may only review a facility they have completed a booking at
	var completed int64
	db.DB.Model(&models.Booking{}).
		Joins("JOIN time_slots ON bookings.time_slot_id = time_slots.id").
		Where("bookings.customer_id = ? AND time_slots.facility_id = ? AND bookings.status = ?",
			userID, review.FacilityID, models.StatusCompleted).
		Count(&completed)
	if completed == 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only review facilities you have booked",
		})
	}

	if err := db.DB.Create(review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetFacilityReviews returns reviews and the average rating for a facility
func GetFacilityReviews(c *fiber.Ctx) error {
	id := c.Params("id")

	var reviews []models.Review
	if err := db.DB.Preload("User").Where("facility_id = ?", id).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	for i := range reviews {
		reviews[i].User.Password = ""
	}

	type AvgResult struct {
		Average float64
	}
	var avg AvgResult
	db.DB.Model(&models.Review{}).Where("facility_id = ?", id).
		Select("COALESCE(AVG(rating), 0) as average").Scan(&avg)

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"count":   len(reviews),
		"average": avg.Average,
	})
}

package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playspot/booking-api/db"
	"github.com/playspot/booking-api/models"
	"github.com/playspot/booking-api/scheduling"
	"github.com/playspot/booking-api/utils"
	"gorm.io/gorm"
)

// GetAllTimeSlots returns time slots filtered by facility, service, date and
// status, paginated for the admin list view
func GetAllTimeSlots(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset := (page - 1) * limit

	query := db.DB.Model(&models.TimeSlot{})

	if facilityID := c.Query("facility_id"); facilityID != "" {
		query = query.Where("facility_id = ?", facilityID)
	}
	if serviceID := c.Query("service_id"); serviceID != "" {
		query = query.Where("service_id = ?", serviceID)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if batchID := c.Query("batch_id"); batchID != "" {
		query = query.Where("batch_id = ?", batchID)
	}

	var total int64
	query.Count(&total)

	var slots []models.TimeSlot
	if err := query.Preload("Service").
		Order("date asc, start_time asc").
		Limit(limit).Offset(offset).
		Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch time slots",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"time_slots": slots,
		"meta": utils.PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (int(total) + limit - 1) / limit,
		},
	})
}

// GetTimeSlot returns a single time slot
func GetTimeSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.TimeSlot
	if err := db.DB.Preload("Facility").Preload("Service").First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Time slot not found",
		})
	}
	return c.JSON(slot)
}

// CreateTimeSlot creates one slot directly, outside the bulk flow
func CreateTimeSlot(c *fiber.Ctx) error {
	slot := new(models.TimeSlot)
	if err := c.BodyParser(slot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if _, err := scheduling.ParseDate(slot.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	minutes, err := scheduling.MinutesBetween(slot.StartTime, slot.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if minutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "end time must be after start time",
		})
	}

	overlaps, err := utils.SlotOverlaps(slot.FacilityID, slot.ServiceID, slot.Date, slot.StartTime, slot.EndTime)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to check for conflicts",
			Error:   err.Error(),
		})
	}
	if overlaps {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "An overlapping time slot already exists",
		})
	}

	if err := db.DB.Create(slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create time slot",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// BulkCreateTimeSlots expands a recurring request into concrete slot records.
// Body shape: {facilityId, serviceId, date, timeSlots: [{startTime, endTime}],
// recurring: {days: [0..6]}}. The horizon defaults to 4 weeks and can be set
// with ?weeks=N. Occurrences that duplicate or overlap existing slots are
// skipped and reported, not fatal.
func BulkCreateTimeSlots(c *fiber.Ctx) error {
	var req scheduling.BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var service models.Service
	if err := db.DB.First(&service, req.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	if service.FacilityID != req.FacilityID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Service does not belong to the selected facility",
		})
	}

	// Re-check every range against the service duration; the builder does
	// this client-side but the API cannot trust it.
	for i, slot := range req.TimeSlots {
		minutes, err := scheduling.MinutesBetween(slot.StartTime, slot.EndTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("slot %d: %v", i+1, err),
			})
		}
		if minutes <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("slot %d: end time must be after start time", i+1),
			})
		}
		diff := minutes - service.Duration
		if diff < -1 || diff > 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("slot %d: must be %d minutes to match the service duration", i+1, service.Duration),
			})
		}
	}

	weeks := c.QueryInt("weeks", scheduling.DefaultExpandWeeks)
	expanded, err := scheduling.Expand(req, weeks)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	batchID := uuid.NewString()
	result := scheduling.BulkResult{}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		for _, occ := range expanded {
			var existing models.TimeSlot
			dup := tx.Where(
				"facility_id = ? AND service_id = ? AND date = ? AND start_time = ?",
				req.FacilityID, req.ServiceID, occ.Date, occ.StartTime,
			).First(&existing).RowsAffected > 0
			if dup {
				result.Errors = append(result.Errors,
					fmt.Sprintf("%s %s: slot already exists", occ.Date, occ.StartTime))
				continue
			}

			var overlap models.TimeSlot
			found := tx.Where(
				"facility_id = ? AND service_id = ? AND date = ? AND start_time < ? AND end_time > ?",
				req.FacilityID, req.ServiceID, occ.Date, occ.EndTime, occ.StartTime,
			).First(&overlap).RowsAffected > 0
			if found {
				result.Errors = append(result.Errors,
					fmt.Sprintf("%s %s-%s: overlaps an existing slot", occ.Date, occ.StartTime, occ.EndTime))
				continue
			}

			slot := models.TimeSlot{
				FacilityID:    req.FacilityID,
				ServiceID:     req.ServiceID,
				Date:          occ.Date,
				StartTime:     occ.StartTime,
				EndTime:       occ.EndTime,
				Status:        models.SlotAvailable,
				IsActive:      req.IsActive,
				BatchID:       batchID,
				RecurringDays: models.IntList(req.Recurring.Days),
			}
			if err := tx.Create(&slot).Error; err != nil {
				return err
			}
			result.Created++
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create time slots",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"created":  result.Created,
		"errors":   result.Errors,
		"batch_id": batchID,
	})
}

// UpdateTimeSlot updates a slot's times, status or visibility
func UpdateTimeSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.TimeSlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Time slot not found",
		})
	}
	if err := c.BodyParser(&slot); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	minutes, err := scheduling.MinutesBetween(slot.StartTime, slot.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if minutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "end time must be after start time",
		})
	}

	if err := db.DB.Save(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update time slot",
			Error:   err.Error(),
		})
	}
	return c.JSON(slot)
}

// DeleteTimeSlot deletes a slot; booked slots cannot be removed
func DeleteTimeSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var slot models.TimeSlot
	if err := db.DB.First(&slot, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Time slot not found",
		})
	}
	if slot.Status == models.SlotBooked {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Cannot delete a booked time slot",
		})
	}
	if err := db.DB.Delete(&slot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete time slot",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteTimeSlotBatch deletes every unbooked slot created by one bulk request
func DeleteTimeSlotBatch(c *fiber.Ctx) error {
	batchID := c.Params("batchId")
	res := db.DB.Where("batch_id = ? AND status <> ?", batchID, models.SlotBooked).
		Delete(&models.TimeSlot{})
	if res.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete batch",
			Error:   res.Error.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"deleted": res.RowsAffected,
	})
}

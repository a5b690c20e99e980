package models

import (
	"fmt"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusCompleted BookingStatus = "completed"
)

type Booking struct {
	gorm.Model
	Reference  string        `json:"reference" gorm:"uniqueIndex"`
	TimeSlotID uint          `json:"time_slot_id"`
	TimeSlot   TimeSlot      `json:"time_slot,omitempty" gorm:"foreignKey:TimeSlotID"`
	CustomerID uint          `json:"customer_id"`
	Customer   User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Status     BookingStatus `json:"status"`
	Notes      string        `json:"notes"`
	Amount     float64       `json:"amount"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// CanTransitionTo reports whether a status change is allowed.
// pending -> confirmed|canceled, confirmed -> completed|canceled,
// completed and canceled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCanceled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCanceled
	default:
		return false
	}
}

func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !b.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
	}

	b.Status = newStatus
	if err := tx.Save(b).Error; err != nil {
		return err
	}

	// A canceled booking releases its slot for rebooking
	if newStatus == StatusCanceled {
		if err := tx.Model(&TimeSlot{}).Where("id = ?", b.TimeSlotID).
			Update("status", SlotAvailable).Error; err != nil {
			return fmt.Errorf("failed to release time slot: %v", err)
		}
	}

	return nil
}

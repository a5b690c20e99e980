package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
)

// IntList is stored as a JSONB array (recurring weekday indices, 0=Sunday)
type IntList []int

// Value implements the driver.Valuer interface
func (l IntList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *IntList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal IntList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

type TimeSlot struct {
	gorm.Model
	FacilityID    uint       `json:"facility_id"`
	Facility      Facility   `json:"facility,omitempty" gorm:"foreignKey:FacilityID"`
	ServiceID     uint       `json:"service_id"`
	Service       Service    `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Date          string     `json:"date"`       // Format "2006-01-02"
	StartTime     string     `json:"start_time"` // Format "HH:MM" in 24h
	EndTime       string     `json:"end_time"`   // Format "HH:MM" in 24h
	Status        SlotStatus `json:"status" gorm:"default:available"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	BatchID       string     `json:"batch_id" gorm:"index"` // Groups slots created by one bulk request
	RecurringDays IntList    `json:"recurring_days" gorm:"type:jsonb"`
}

func (t *TimeSlot) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = SlotAvailable
	}
	return nil
}

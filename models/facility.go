package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

type Sport string

const (
	SportCricket   Sport = "cricket"
	SportTennis    Sport = "tennis"
	SportBadminton Sport = "badminton"
	SportFootball  Sport = "football"
)

// StringList is stored as a JSONB array (amenities, image URLs)
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
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
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

type Facility struct {
	gorm.Model
	Name         string     `json:"name"`
	Sport        Sport      `json:"sport"`
	Location     string     `json:"location"`
	City         string     `json:"city"`
	Description  string     `json:"description"`
	Amenities    StringList `json:"amenities" gorm:"type:jsonb"`
	Images       StringList `json:"images" gorm:"type:jsonb"`
	PricePerHour float64    `json:"price_per_hour"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	Services     []Service  `json:"services,omitempty" gorm:"foreignKey:FacilityID"`
}

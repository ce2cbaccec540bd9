// internal/models/expense_log.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// ExpenseLog records fuel purchases and other operational spend. Liters is 0
// for non-fuel entries such as completed-maintenance cost.
type ExpenseLog struct {
	gorm.Model
	TripID    *uint     `json:"trip_id,omitempty" gorm:"index"`
	VehicleID uint      `json:"vehicle_id" gorm:"index"`
	Liters    float64   `json:"liters"`
	Cost      float64   `json:"cost"`
	Date      time.Time `json:"date"`
}

// internal/models/maintenance_log.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// MaintenanceLog exists only while a vehicle is in the shop; completing
// maintenance deletes the log and reclassifies its cost as an ExpenseLog.
type MaintenanceLog struct {
	gorm.Model
	VehicleID   uint      `json:"vehicle_id" gorm:"index"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Date        time.Time `json:"date"`
}

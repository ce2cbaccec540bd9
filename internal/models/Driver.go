// internal/models/driver.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type DriverStatus string

const (
	DriverOnDuty    DriverStatus = "On Duty"
	DriverOffDuty   DriverStatus = "Off Duty"
	DriverOnTrip    DriverStatus = "On Trip"
	DriverSuspended DriverStatus = "Suspended"
)

var allowedDriverStatuses = [...]DriverStatus{
	DriverOnDuty, DriverOffDuty, DriverOnTrip, DriverSuspended,
}

// Valid checks if the DriverStatus is one of the allowed values
func (s DriverStatus) Valid() bool {
	for _, v := range allowedDriverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Driver struct {
	gorm.Model
	Name            string          `json:"name"`
	LicenseNumber   string          `json:"license_number" gorm:"unique"`
	LicenseCategory VehicleCategory `json:"license_category" gorm:"type:varchar(16);default:'Van'"`
	LicenseExpiry   time.Time       `json:"license_expiry"`
	SafetyScore     float64         `json:"safety_score" gorm:"default:100"` // clamped to [0,100]
	TotalTrips      int             `json:"total_trips"`
	CompletedTrips  int             `json:"completed_trips"`
	Status          DriverStatus    `json:"status" gorm:"type:varchar(16);index;default:'On Duty'"`
}

// Assignable reports whether the driver can be reserved for a new trip.
func (d *Driver) Assignable() bool {
	return d.Status == DriverOnDuty
}

// LicenseExpired reports whether the license is expired at the given instant.
// An expiry exactly equal to now still passes.
func (d *Driver) LicenseExpired(now time.Time) bool {
	return d.LicenseExpiry.Before(now)
}

// ApplySafetyPenalty lowers the safety score, clamped at 0.
func (d *Driver) ApplySafetyPenalty(points float64) {
	d.SafetyScore -= points
	if d.SafetyScore < 0 {
		d.SafetyScore = 0
	}
}

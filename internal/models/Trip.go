// internal/models/trip.go
package models

import (
	"gorm.io/gorm"
)

type TripStatus string

const (
	// TripDraft is declared for parity with the stored enum but the dispatch
	// path never produces it; it is only reachable via a direct update.
	TripDraft      TripStatus = "Draft"
	TripDispatched TripStatus = "Dispatched"
	TripCompleted  TripStatus = "Completed"
	TripCancelled  TripStatus = "Cancelled"
)

var allowedTripStatuses = [...]TripStatus{
	TripDraft, TripDispatched, TripCompleted, TripCancelled,
}

// Valid checks if the TripStatus is one of the allowed values
func (s TripStatus) Valid() bool {
	for _, v := range allowedTripStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Trip holds an exclusive claim over one vehicle and one driver while it is
// Dispatched; every other status means the claim has been released.
type Trip struct {
	gorm.Model
	VehicleID   uint       `json:"vehicle_id" gorm:"index"`
	DriverID    uint       `json:"driver_id" gorm:"index"`
	CargoWeight float64    `json:"cargo_weight"` // kg
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Revenue     float64    `json:"revenue"`
	Status      TripStatus `json:"status" gorm:"type:varchar(16);index;default:'Dispatched'"`
}

// internal/models/vehicle.go
package models

import (
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleAvailable    VehicleStatus = "Available"
	VehicleOnTrip       VehicleStatus = "On Trip"
	VehicleInShop       VehicleStatus = "In Shop"
	VehicleOutOfService VehicleStatus = "Out of Service"
)

// VehicleCategory doubles as the driver license category; the two must match
// for a trip to be dispatched.
type VehicleCategory string

const (
	CategoryVan        VehicleCategory = "Van"
	CategoryTruck      VehicleCategory = "Truck"
	CategoryHeavyTruck VehicleCategory = "Heavy Truck"
)

var allowedVehicleStatuses = [...]VehicleStatus{
	VehicleAvailable, VehicleOnTrip, VehicleInShop, VehicleOutOfService,
}

var allowedCategories = [...]VehicleCategory{
	CategoryVan, CategoryTruck, CategoryHeavyTruck,
}

// Valid checks if the VehicleStatus is one of the allowed values
func (s VehicleStatus) Valid() bool {
	for _, v := range allowedVehicleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the VehicleCategory is one of the allowed values
func (c VehicleCategory) Valid() bool {
	for _, v := range allowedCategories {
		if c == v {
			return true
		}
	}
	return false
}

type Vehicle struct {
	gorm.Model
	Name            string          `json:"name"`
	ModelName       string          `json:"model"`
	Category        VehicleCategory `json:"category" gorm:"type:varchar(16);default:'Van'"`
	LicensePlate    string          `json:"license_plate" gorm:"unique"`
	MaxCapacity     float64         `json:"max_capacity"` // kg
	Odometer        float64         `json:"odometer"`     // km, never decreases
	AcquisitionCost float64         `json:"acquisition_cost"`
	Status          VehicleStatus   `json:"status" gorm:"type:varchar(16);index;default:'Available'"`
}

// Assignable reports whether the vehicle can be reserved for a new trip.
// Only Available vehicles are eligible; the lifecycle engine and maintenance
// workflow are the sole writers of the other statuses.
func (v *Vehicle) Assignable() bool {
	return v.Status == VehicleAvailable
}

package services

import (
	"context"
	"time"

	"fleetflow/internal/models"
)

// Store defines the persistence operations the lifecycle engines need.
// Get methods return (nil, nil) when the record does not exist.
type Store interface {
	// Atomically runs fn against a store bound to a single transaction;
	// if fn returns an error every write inside it is rolled back.
	Atomically(ctx context.Context, fn func(Store) error) error

	GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error)
	SaveVehicle(ctx context.Context, v *models.Vehicle) error
	// ClaimVehicle flips the status only if it currently equals from,
	// reporting whether the swap happened.
	ClaimVehicle(ctx context.Context, id uint, from, to models.VehicleStatus) (bool, error)
	SetVehicleStatus(ctx context.Context, id uint, status models.VehicleStatus) error

	GetDriver(ctx context.Context, id uint) (*models.Driver, error)
	SaveDriver(ctx context.Context, d *models.Driver) error
	ClaimDriver(ctx context.Context, id uint, from, to models.DriverStatus) (bool, error)
	SetDriverStatus(ctx context.Context, id uint, status models.DriverStatus) error

	GetTrip(ctx context.Context, id uint) (*models.Trip, error)
	CreateTrip(ctx context.Context, t *models.Trip) error
	SaveTrip(ctx context.Context, t *models.Trip) error
	ClaimTrip(ctx context.Context, id uint, from, to models.TripStatus) (bool, error)
	DeleteTrip(ctx context.Context, id uint) error

	GetMaintenanceLog(ctx context.Context, id uint) (*models.MaintenanceLog, error)
	CreateMaintenanceLog(ctx context.Context, l *models.MaintenanceLog) error
	DeleteMaintenanceLog(ctx context.Context, id uint) error
	CreateExpenseLog(ctx context.Context, l *models.ExpenseLog) error
}

// TripDayCount is one calendar-day bucket of trip outcomes.
type TripDayCount struct {
	Day       string `json:"name"`
	Completed int64  `json:"completed"`
	Cancelled int64  `json:"cancelled"`
}

// MonthlyAmount is one calendar-month bucket of a summed amount,
// keyed "YYYY-MM".
type MonthlyAmount struct {
	Month  string
	Amount float64
}

// FleetTotals aggregates over all vehicles.
type FleetTotals struct {
	Distance        float64 // current odometers stand in for lifetime distance
	AcquisitionCost float64
}

// ExpenseTotals aggregates over all expense logs.
type ExpenseTotals struct {
	Cost   float64
	Liters float64
}

// AnalyticsStore defines the read-only aggregate queries behind the
// dashboard and the financial report.
type AnalyticsStore interface {
	CountVehicles(ctx context.Context) (int64, error)
	CountVehiclesByStatus(ctx context.Context, status models.VehicleStatus) (int64, error)
	CountTripsByStatus(ctx context.Context, status models.TripStatus) (int64, error)
	TripCountsByDay(ctx context.Context, since time.Time) ([]TripDayCount, error)

	VehicleTotals(ctx context.Context) (FleetTotals, error)
	ExpenseTotals(ctx context.Context) (ExpenseTotals, error)
	MaintenanceCostTotal(ctx context.Context) (float64, error)
	TripRevenueTotal(ctx context.Context) (float64, error)

	MonthlyExpenseCost(ctx context.Context, since time.Time) ([]MonthlyAmount, error)
	MonthlyMaintenanceCost(ctx context.Context, since time.Time) ([]MonthlyAmount, error)
	MonthlyTripRevenue(ctx context.Context, since time.Time) ([]MonthlyAmount, error)
}

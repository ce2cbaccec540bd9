// Package repository implements the service store contracts on top of GORM.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fleetflow/internal/models"
	"fleetflow/internal/services"
)

// FleetStore is the GORM-backed implementation of services.Store and
// services.AnalyticsStore.
type FleetStore struct {
	db *gorm.DB
}

func NewFleetStore(db *gorm.DB) *FleetStore {
	return &FleetStore{db: db}
}

// Atomically runs fn against a store bound to one database transaction.
func (s *FleetStore) Atomically(ctx context.Context, fn func(services.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&FleetStore{db: tx})
	})
}

func (s *FleetStore) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s *FleetStore) SaveVehicle(ctx context.Context, v *models.Vehicle) error {
	return s.db.WithContext(ctx).Save(v).Error
}

// ClaimVehicle is a compare-and-swap on the status column; the WHERE clause
// makes concurrent claims on the same vehicle mutually exclusive.
func (s *FleetStore) ClaimVehicle(ctx context.Context, id uint, from, to models.VehicleStatus) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *FleetStore) SetVehicleStatus(ctx context.Context, id uint, status models.VehicleStatus) error {
	return s.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (s *FleetStore) GetDriver(ctx context.Context, id uint) (*models.Driver, error) {
	var d models.Driver
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (s *FleetStore) SaveDriver(ctx context.Context, d *models.Driver) error {
	return s.db.WithContext(ctx).Save(d).Error
}

func (s *FleetStore) ClaimDriver(ctx context.Context, id uint, from, to models.DriverStatus) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Driver{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *FleetStore) SetDriverStatus(ctx context.Context, id uint, status models.DriverStatus) error {
	return s.db.WithContext(ctx).Model(&models.Driver{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (s *FleetStore) GetTrip(ctx context.Context, id uint) (*models.Trip, error) {
	var t models.Trip
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *FleetStore) CreateTrip(ctx context.Context, t *models.Trip) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *FleetStore) SaveTrip(ctx context.Context, t *models.Trip) error {
	return s.db.WithContext(ctx).Save(t).Error
}

func (s *FleetStore) ClaimTrip(ctx context.Context, id uint, from, to models.TripStatus) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.Trip{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *FleetStore) DeleteTrip(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Trip{}, id).Error
}

func (s *FleetStore) GetMaintenanceLog(ctx context.Context, id uint) (*models.MaintenanceLog, error) {
	var l models.MaintenanceLog
	if err := s.db.WithContext(ctx).First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (s *FleetStore) CreateMaintenanceLog(ctx context.Context, l *models.MaintenanceLog) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *FleetStore) DeleteMaintenanceLog(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.MaintenanceLog{}, id).Error
}

func (s *FleetStore) CreateExpenseLog(ctx context.Context, l *models.ExpenseLog) error {
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *FleetStore) CountVehicles(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Vehicle{}).Count(&n).Error
	return n, err
}

func (s *FleetStore) CountVehiclesByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("status = ?", status).Count(&n).Error
	return n, err
}

func (s *FleetStore) CountTripsByStatus(ctx context.Context, status models.TripStatus) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Trip{}).
		Where("status = ?", status).Count(&n).Error
	return n, err
}

func (s *FleetStore) TripCountsByDay(ctx context.Context, since time.Time) ([]services.TripDayCount, error) {
	var rows []services.TripDayCount
	err := s.db.WithContext(ctx).Model(&models.Trip{}).
		Select("to_char(created_at, 'YYYY-MM-DD') AS day, "+
			"count(*) FILTER (WHERE status = ?) AS completed, "+
			"count(*) FILTER (WHERE status = ?) AS cancelled",
			models.TripCompleted, models.TripCancelled).
		Where("created_at >= ?", since).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (s *FleetStore) VehicleTotals(ctx context.Context) (services.FleetTotals, error) {
	var t services.FleetTotals
	err := s.db.WithContext(ctx).Model(&models.Vehicle{}).
		Select("COALESCE(SUM(odometer), 0) AS distance, COALESCE(SUM(acquisition_cost), 0) AS acquisition_cost").
		Scan(&t).Error
	return t, err
}

func (s *FleetStore) ExpenseTotals(ctx context.Context) (services.ExpenseTotals, error) {
	var t services.ExpenseTotals
	err := s.db.WithContext(ctx).Model(&models.ExpenseLog{}).
		Select("COALESCE(SUM(cost), 0) AS cost, COALESCE(SUM(liters), 0) AS liters").
		Scan(&t).Error
	return t, err
}

func (s *FleetStore) MaintenanceCostTotal(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(&models.MaintenanceLog{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	return total, err
}

func (s *FleetStore) TripRevenueTotal(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(&models.Trip{}).
		Select("COALESCE(SUM(revenue), 0)").
		Scan(&total).Error
	return total, err
}

func (s *FleetStore) MonthlyExpenseCost(ctx context.Context, since time.Time) ([]services.MonthlyAmount, error) {
	return s.monthlySum(ctx, &models.ExpenseLog{}, "date", "cost", since)
}

func (s *FleetStore) MonthlyMaintenanceCost(ctx context.Context, since time.Time) ([]services.MonthlyAmount, error) {
	return s.monthlySum(ctx, &models.MaintenanceLog{}, "date", "cost", since)
}

func (s *FleetStore) MonthlyTripRevenue(ctx context.Context, since time.Time) ([]services.MonthlyAmount, error) {
	return s.monthlySum(ctx, &models.Trip{}, "created_at", "revenue", since)
}

func (s *FleetStore) monthlySum(ctx context.Context, model any, dateCol, sumCol string, since time.Time) ([]services.MonthlyAmount, error) {
	var rows []services.MonthlyAmount
	err := s.db.WithContext(ctx).Model(model).
		Select("to_char("+dateCol+", 'YYYY-MM') AS month, COALESCE(SUM("+sumCol+"), 0) AS amount").
		Where(dateCol+" >= ?", since).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

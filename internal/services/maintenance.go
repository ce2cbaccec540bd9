package services

import (
	"context"
	"fmt"
	"time"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"

	"github.com/sirupsen/logrus"
)

// MaintenanceService couples a vehicle's "In Shop" status to a maintenance
// record. Completing maintenance reclassifies the cost as an operational
// expense and removes the log; the two record types stay separate.
type MaintenanceService struct {
	store Store
	now   func() time.Time
}

func NewMaintenanceService(store Store, now func() time.Time) *MaintenanceService {
	if now == nil {
		now = time.Now
	}
	return &MaintenanceService{store: store, now: now}
}

// Log records maintenance for a vehicle and moves it into the shop.
func (s *MaintenanceService) Log(ctx context.Context, vehicleID uint, description string, cost float64, date time.Time) (*models.MaintenanceLog, error) {
	vehicle, err := s.store.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %d", apperr.NotFound, vehicleID)
	}
	if date.IsZero() {
		date = s.now()
	}

	log := &models.MaintenanceLog{
		VehicleID:   vehicle.ID,
		Description: description,
		Cost:        cost,
		Date:        date,
	}
	err = s.store.Atomically(ctx, func(tx Store) error {
		if err := tx.CreateMaintenanceLog(ctx, log); err != nil {
			return err
		}
		return tx.SetVehicleStatus(ctx, vehicle.ID, models.VehicleInShop)
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

// Complete marks maintenance as done: the vehicle (if it still exists)
// becomes Available, the cost is written out as a zero-liter expense log and
// the maintenance log is deleted. A vehicle that has been removed in the
// meantime does not abort the operation.
func (s *MaintenanceService) Complete(ctx context.Context, logID uint) error {
	log, err := s.store.GetMaintenanceLog(ctx, logID)
	if err != nil {
		return err
	}
	if log == nil {
		return fmt.Errorf("%w: maintenance log %d", apperr.NotFound, logID)
	}

	return s.store.Atomically(ctx, func(tx Store) error {
		vehicle, err := tx.GetVehicle(ctx, log.VehicleID)
		if err != nil {
			return err
		}
		if vehicle != nil {
			if err := tx.SetVehicleStatus(ctx, vehicle.ID, models.VehicleAvailable); err != nil {
				return err
			}
		} else {
			logrus.WithFields(logrus.Fields{
				"maintenance_log_id": log.ID,
				"vehicle_id":         log.VehicleID,
			}).Warn("completing maintenance for a vehicle that no longer exists")
		}

		expense := &models.ExpenseLog{
			VehicleID: log.VehicleID,
			Liters:    0,
			Cost:      log.Cost,
			Date:      s.now(),
		}
		if err := tx.CreateExpenseLog(ctx, expense); err != nil {
			return err
		}
		return tx.DeleteMaintenanceLog(ctx, log.ID)
	})
}

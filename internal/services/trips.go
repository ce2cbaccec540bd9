package services

import (
	"context"
	"fmt"
	"time"

	"fleetflow/internal/apperr"
	"fleetflow/internal/models"
)

// cancelPenalty is subtracted from a driver's safety score when their trip is
// cancelled, floored at 0.
const cancelPenalty = 5

// TripService is the trip lifecycle engine. Dispatch is the single gate where
// every compliance check applies; complete, cancel, delete and reassignment
// must restore vehicle/driver availability symmetrically so no resource is
// left stuck "On Trip" without a dispatched trip holding it.
type TripService struct {
	store Store
	now   func() time.Time
}

func NewTripService(store Store, now func() time.Time) *TripService {
	if now == nil {
		now = time.Now
	}
	return &TripService{store: store, now: now}
}

// DispatchInput carries the fields needed to create a trip.
type DispatchInput struct {
	VehicleID   uint
	DriverID    uint
	CargoWeight float64
	Origin      string
	Destination string
	Revenue     float64
}

// TripPatch carries optional fields to update a trip.
// A nil field means "do not change" that attribute.
type TripPatch struct {
	VehicleID   *uint
	DriverID    *uint
	CargoWeight *float64
	Origin      *string
	Destination *string
	Revenue     *float64
	Status      *models.TripStatus
}

// Dispatch validates the vehicle/driver pair and creates the trip while
// reserving both resources. All business checks run before any write; the
// claims themselves are compare-and-swap status updates inside one
// transaction, so two concurrent dispatches against the same vehicle cannot
// both succeed.
func (s *TripService) Dispatch(ctx context.Context, in DispatchInput) (*models.Trip, error) {
	vehicle, err := s.store.GetVehicle(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %d", apperr.NotFound, in.VehicleID)
	}
	if !vehicle.Assignable() {
		return nil, fmt.Errorf("%w: vehicle is not available", apperr.Conflict)
	}
	if in.CargoWeight > vehicle.MaxCapacity {
		return nil, fmt.Errorf("%w: cargo weight exceeds vehicle capacity", apperr.Invalid)
	}

	driver, err := s.store.GetDriver(ctx, in.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver %d", apperr.NotFound, in.DriverID)
	}
	if !driver.Assignable() {
		return nil, fmt.Errorf("%w: driver is not on duty", apperr.Conflict)
	}
	if driver.LicenseExpired(s.now()) {
		return nil, fmt.Errorf("%w: driver license expired", apperr.Invalid)
	}
	if vehicle.Category != driver.LicenseCategory {
		return nil, fmt.Errorf("%w: driver license category (%s) does not match vehicle category (%s)",
			apperr.Invalid, driver.LicenseCategory, vehicle.Category)
	}

	trip := &models.Trip{
		VehicleID:   vehicle.ID,
		DriverID:    driver.ID,
		CargoWeight: in.CargoWeight,
		Origin:      in.Origin,
		Destination: in.Destination,
		Revenue:     in.Revenue,
		Status:      models.TripDispatched,
	}

	err = s.store.Atomically(ctx, func(tx Store) error {
		ok, err := tx.ClaimVehicle(ctx, vehicle.ID, models.VehicleAvailable, models.VehicleOnTrip)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: vehicle is not available", apperr.Conflict)
		}
		ok, err = tx.ClaimDriver(ctx, driver.ID, models.DriverOnDuty, models.DriverOnTrip)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: driver is not on duty", apperr.Conflict)
		}
		driver.Status = models.DriverOnTrip
		driver.TotalTrips++
		if err := tx.SaveDriver(ctx, driver); err != nil {
			return err
		}
		return tx.CreateTrip(ctx, trip)
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// Complete finishes a dispatched trip, advances the vehicle odometer when a
// final reading is supplied and releases vehicle and driver.
func (s *TripService) Complete(ctx context.Context, tripID uint, finalOdometer *float64) (*models.Trip, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, fmt.Errorf("%w: trip %d", apperr.NotFound, tripID)
	}
	if trip.Status != models.TripDispatched {
		return nil, fmt.Errorf("%w: trip is not currently dispatched", apperr.Conflict)
	}

	err = s.store.Atomically(ctx, func(tx Store) error {
		vehicle, err := tx.GetVehicle(ctx, trip.VehicleID)
		if err != nil {
			return err
		}
		if vehicle != nil && finalOdometer != nil && *finalOdometer < vehicle.Odometer {
			return fmt.Errorf("%w: final odometer cannot be less than current odometer", apperr.Invalid)
		}

		// Compare-and-swap on the trip status so two racing completions
		// cannot both release resources and bump the driver's counter.
		ok, err := tx.ClaimTrip(ctx, trip.ID, models.TripDispatched, models.TripCompleted)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: trip is not currently dispatched", apperr.Conflict)
		}

		if vehicle != nil {
			if finalOdometer != nil {
				vehicle.Odometer = *finalOdometer
			}
			vehicle.Status = models.VehicleAvailable
			if err := tx.SaveVehicle(ctx, vehicle); err != nil {
				return err
			}
		}

		driver, err := tx.GetDriver(ctx, trip.DriverID)
		if err != nil {
			return err
		}
		if driver != nil {
			driver.Status = models.DriverOnDuty
			driver.CompletedTrips++
			if err := tx.SaveDriver(ctx, driver); err != nil {
				return err
			}
		}

		trip.Status = models.TripCompleted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// Update applies a field patch. Changing the vehicle or driver of a
// dispatched trip releases the old resource and claims the new one; a status
// change to Cancelled releases the trip's pre-patch resources and costs the
// pre-patch driver a safety penalty. Release/claim and the field patch commit
// as one transaction.
func (s *TripService) Update(ctx context.Context, tripID uint, patch TripPatch) (*models.Trip, error) {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, fmt.Errorf("%w: trip %d", apperr.NotFound, tripID)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown trip status %q", apperr.Invalid, *patch.Status)
	}

	cancelling := patch.Status != nil && *patch.Status == models.TripCancelled && trip.Status != models.TripCancelled
	staysDispatched := trip.Status == models.TripDispatched &&
		(patch.Status == nil || *patch.Status == models.TripDispatched)

	err = s.store.Atomically(ctx, func(tx Store) error {
		switch {
		case cancelling:
			if err := tx.SetVehicleStatus(ctx, trip.VehicleID, models.VehicleAvailable); err != nil {
				return err
			}
			driver, err := tx.GetDriver(ctx, trip.DriverID)
			if err != nil {
				return err
			}
			if driver != nil {
				driver.Status = models.DriverOnDuty
				driver.ApplySafetyPenalty(cancelPenalty)
				if err := tx.SaveDriver(ctx, driver); err != nil {
					return err
				}
			}
		case staysDispatched:
			if patch.VehicleID != nil && *patch.VehicleID != trip.VehicleID {
				next, err := tx.GetVehicle(ctx, *patch.VehicleID)
				if err != nil {
					return err
				}
				if next == nil {
					return fmt.Errorf("%w: vehicle %d", apperr.NotFound, *patch.VehicleID)
				}
				if err := tx.SetVehicleStatus(ctx, trip.VehicleID, models.VehicleAvailable); err != nil {
					return err
				}
				if err := tx.SetVehicleStatus(ctx, next.ID, models.VehicleOnTrip); err != nil {
					return err
				}
			}
			if patch.DriverID != nil && *patch.DriverID != trip.DriverID {
				next, err := tx.GetDriver(ctx, *patch.DriverID)
				if err != nil {
					return err
				}
				if next == nil {
					return fmt.Errorf("%w: driver %d", apperr.NotFound, *patch.DriverID)
				}
				if err := tx.SetDriverStatus(ctx, trip.DriverID, models.DriverOnDuty); err != nil {
					return err
				}
				if err := tx.SetDriverStatus(ctx, next.ID, models.DriverOnTrip); err != nil {
					return err
				}
			}
		}

		applyTripPatch(trip, patch)
		return tx.SaveTrip(ctx, trip)
	})
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// Delete removes a trip; a dispatched trip releases its vehicle and driver
// first, any other status leaves them untouched.
func (s *TripService) Delete(ctx context.Context, tripID uint) error {
	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip == nil {
		return fmt.Errorf("%w: trip %d", apperr.NotFound, tripID)
	}

	return s.store.Atomically(ctx, func(tx Store) error {
		if trip.Status == models.TripDispatched {
			if err := tx.SetVehicleStatus(ctx, trip.VehicleID, models.VehicleAvailable); err != nil {
				return err
			}
			if err := tx.SetDriverStatus(ctx, trip.DriverID, models.DriverOnDuty); err != nil {
				return err
			}
		}
		return tx.DeleteTrip(ctx, trip.ID)
	})
}

func applyTripPatch(t *models.Trip, p TripPatch) {
	if p.VehicleID != nil {
		t.VehicleID = *p.VehicleID
	}
	if p.DriverID != nil {
		t.DriverID = *p.DriverID
	}
	if p.CargoWeight != nil {
		t.CargoWeight = *p.CargoWeight
	}
	if p.Origin != nil {
		t.Origin = *p.Origin
	}
	if p.Destination != nil {
		t.Destination = *p.Destination
	}
	if p.Revenue != nil {
		t.Revenue = *p.Revenue
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

package services

import (
	"context"

	"fleetflow/internal/models"
)

// fakeStore is an in-memory Store used by the service tests. Get methods
// return copies so a test only observes state that was actually saved.
type fakeStore struct {
	vehicles    map[uint]*models.Vehicle
	drivers     map[uint]*models.Driver
	trips       map[uint]*models.Trip
	maintenance map[uint]*models.MaintenanceLog
	expenses    []*models.ExpenseLog
	nextID      uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		vehicles:    map[uint]*models.Vehicle{},
		drivers:     map[uint]*models.Driver{},
		trips:       map[uint]*models.Trip{},
		maintenance: map[uint]*models.MaintenanceLog{},
		nextID:      1,
	}
}

func (f *fakeStore) allocID() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) putVehicle(v models.Vehicle) *models.Vehicle {
	if v.ID == 0 {
		v.ID = f.allocID()
	}
	f.vehicles[v.ID] = &v
	return &v
}

func (f *fakeStore) putDriver(d models.Driver) *models.Driver {
	if d.ID == 0 {
		d.ID = f.allocID()
	}
	f.drivers[d.ID] = &d
	return &d
}

func (f *fakeStore) putTrip(t models.Trip) *models.Trip {
	if t.ID == 0 {
		t.ID = f.allocID()
	}
	f.trips[t.ID] = &t
	return &t
}

func (f *fakeStore) putMaintenanceLog(l models.MaintenanceLog) *models.MaintenanceLog {
	if l.ID == 0 {
		l.ID = f.allocID()
	}
	f.maintenance[l.ID] = &l
	return &l
}

func (f *fakeStore) Atomically(ctx context.Context, fn func(Store) error) error {
	return fn(f)
}

func (f *fakeStore) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeStore) SaveVehicle(ctx context.Context, v *models.Vehicle) error {
	cp := *v
	f.vehicles[v.ID] = &cp
	return nil
}

func (f *fakeStore) ClaimVehicle(ctx context.Context, id uint, from, to models.VehicleStatus) (bool, error) {
	v, ok := f.vehicles[id]
	if !ok || v.Status != from {
		return false, nil
	}
	v.Status = to
	return true, nil
}

func (f *fakeStore) SetVehicleStatus(ctx context.Context, id uint, status models.VehicleStatus) error {
	if v, ok := f.vehicles[id]; ok {
		v.Status = status
	}
	return nil
}

func (f *fakeStore) GetDriver(ctx context.Context, id uint) (*models.Driver, error) {
	d, ok := f.drivers[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeStore) SaveDriver(ctx context.Context, d *models.Driver) error {
	cp := *d
	f.drivers[d.ID] = &cp
	return nil
}

func (f *fakeStore) ClaimDriver(ctx context.Context, id uint, from, to models.DriverStatus) (bool, error) {
	d, ok := f.drivers[id]
	if !ok || d.Status != from {
		return false, nil
	}
	d.Status = to
	return true, nil
}

func (f *fakeStore) SetDriverStatus(ctx context.Context, id uint, status models.DriverStatus) error {
	if d, ok := f.drivers[id]; ok {
		d.Status = status
	}
	return nil
}

func (f *fakeStore) GetTrip(ctx context.Context, id uint) (*models.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeStore) CreateTrip(ctx context.Context, t *models.Trip) error {
	if t.ID == 0 {
		t.ID = f.allocID()
	}
	cp := *t
	f.trips[t.ID] = &cp
	return nil
}

func (f *fakeStore) SaveTrip(ctx context.Context, t *models.Trip) error {
	cp := *t
	f.trips[t.ID] = &cp
	return nil
}

func (f *fakeStore) ClaimTrip(ctx context.Context, id uint, from, to models.TripStatus) (bool, error) {
	t, ok := f.trips[id]
	if !ok || t.Status != from {
		return false, nil
	}
	t.Status = to
	return true, nil
}

func (f *fakeStore) DeleteTrip(ctx context.Context, id uint) error {
	delete(f.trips, id)
	return nil
}

func (f *fakeStore) GetMaintenanceLog(ctx context.Context, id uint) (*models.MaintenanceLog, error) {
	l, ok := f.maintenance[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeStore) CreateMaintenanceLog(ctx context.Context, l *models.MaintenanceLog) error {
	if l.ID == 0 {
		l.ID = f.allocID()
	}
	cp := *l
	f.maintenance[l.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteMaintenanceLog(ctx context.Context, id uint) error {
	delete(f.maintenance, id)
	return nil
}

func (f *fakeStore) CreateExpenseLog(ctx context.Context, l *models.ExpenseLog) error {
	if l.ID == 0 {
		l.ID = f.allocID()
	}
	cp := *l
	f.expenses = append(f.expenses, &cp)
	return nil
}

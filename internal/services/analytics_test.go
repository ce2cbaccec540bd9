package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"fleetflow/internal/models"
)

// fakeAnalyticsStore returns canned aggregates.
type fakeAnalyticsStore struct {
	totalVehicles      int64
	vehiclesByStatus   map[models.VehicleStatus]int64
	tripsByStatus      map[models.TripStatus]int64
	tripCounts         []TripDayCount
	fleet              FleetTotals
	expenses           ExpenseTotals
	maintenanceCost    float64
	revenue            float64
	monthlyExpense     []MonthlyAmount
	monthlyMaintenance []MonthlyAmount
	monthlyRevenue     []MonthlyAmount

	tripCountsSince time.Time
}

func (f *fakeAnalyticsStore) CountVehicles(ctx context.Context) (int64, error) {
	return f.totalVehicles, nil
}

func (f *fakeAnalyticsStore) CountVehiclesByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	return f.vehiclesByStatus[status], nil
}

func (f *fakeAnalyticsStore) CountTripsByStatus(ctx context.Context, status models.TripStatus) (int64, error) {
	return f.tripsByStatus[status], nil
}

func (f *fakeAnalyticsStore) TripCountsByDay(ctx context.Context, since time.Time) ([]TripDayCount, error) {
	f.tripCountsSince = since
	return f.tripCounts, nil
}

func (f *fakeAnalyticsStore) VehicleTotals(ctx context.Context) (FleetTotals, error) {
	return f.fleet, nil
}

func (f *fakeAnalyticsStore) ExpenseTotals(ctx context.Context) (ExpenseTotals, error) {
	return f.expenses, nil
}

func (f *fakeAnalyticsStore) MaintenanceCostTotal(ctx context.Context) (float64, error) {
	return f.maintenanceCost, nil
}

func (f *fakeAnalyticsStore) TripRevenueTotal(ctx context.Context) (float64, error) {
	return f.revenue, nil
}

func (f *fakeAnalyticsStore) MonthlyExpenseCost(ctx context.Context, since time.Time) ([]MonthlyAmount, error) {
	return f.monthlyExpense, nil
}

func (f *fakeAnalyticsStore) MonthlyMaintenanceCost(ctx context.Context, since time.Time) ([]MonthlyAmount, error) {
	return f.monthlyMaintenance, nil
}

func (f *fakeAnalyticsStore) MonthlyTripRevenue(ctx context.Context, since time.Time) ([]MonthlyAmount, error) {
	return f.monthlyRevenue, nil
}

func TestDashboardUtilizationRounds(t *testing.T) {
	fa := &fakeAnalyticsStore{
		totalVehicles: 3,
		vehiclesByStatus: map[models.VehicleStatus]int64{
			models.VehicleOnTrip: 1,
			models.VehicleInShop: 1,
		},
		tripsByStatus: map[models.TripStatus]int64{models.TripDraft: 2},
	}
	svc := NewAnalyticsService(fa, testClock)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if stats.UtilizationRate != 33.33 {
		t.Fatalf("expected utilization 33.33, got %v", stats.UtilizationRate)
	}
	if stats.PendingTrips != 2 {
		t.Fatalf("expected 2 pending trips, got %d", stats.PendingTrips)
	}
	if want := testNow.AddDate(0, 0, -7); !fa.tripCountsSince.Equal(want) {
		t.Fatalf("expected trip window since %v, got %v", want, fa.tripCountsSince)
	}
	want := []HealthPoint{{Name: "Current", Active: 1, InShop: 1}}
	if !reflect.DeepEqual(stats.HealthData, want) {
		t.Fatalf("unexpected health data %+v", stats.HealthData)
	}
}

func TestDashboardEmptyFleet(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsStore{}, testClock)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if stats.UtilizationRate != 0 {
		t.Fatalf("empty fleet must report 0 utilization, got %v", stats.UtilizationRate)
	}
	if stats.TripsData == nil || len(stats.TripsData) != 0 {
		t.Fatalf("trips data must be an empty slice, got %#v", stats.TripsData)
	}
}

func TestFinancialsComputedFigures(t *testing.T) {
	fa := &fakeAnalyticsStore{
		expenses:        ExpenseTotals{Cost: 200, Liters: 50},
		maintenanceCost: 100,
		fleet:           FleetTotals{Distance: 1000, AcquisitionCost: 10000},
		revenue:         1000,
	}
	svc := NewAnalyticsService(fa, testClock)

	report, err := svc.Financials(context.Background())
	if err != nil {
		t.Fatalf("Financials: %v", err)
	}
	if report.TotalOperationalCost != 300 {
		t.Fatalf("expected operational cost 300, got %v", report.TotalOperationalCost)
	}
	if report.FuelEfficiency != 20 {
		t.Fatalf("expected fuel efficiency 20, got %v", report.FuelEfficiency)
	}
	if report.CostPerKm != 0.2 {
		t.Fatalf("expected cost per km 0.2, got %v", report.CostPerKm)
	}
	// (1000 - 300) / 10000 * 100
	if report.AvgRoi != 7 {
		t.Fatalf("expected avg ROI 7, got %v", report.AvgRoi)
	}
}

func TestFinancialsZeroDivisionGuards(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsStore{}, testClock)

	report, err := svc.Financials(context.Background())
	if err != nil {
		t.Fatalf("Financials: %v", err)
	}
	if report.FuelEfficiency != 0 || report.CostPerKm != 0 || report.AvgRoi != 0 {
		t.Fatalf("zero denominators must yield 0 ratios, got %+v", report)
	}
}

func TestMergeMonthly(t *testing.T) {
	got := mergeMonthly(
		[]MonthlyAmount{{Month: "2026-07", Amount: 100}, {Month: "2026-08", Amount: 50}},
		[]MonthlyAmount{{Month: "2026-08", Amount: 25}},
		[]MonthlyAmount{{Month: "2026-06", Amount: 900}, {Month: "2026-08", Amount: 400}},
	)
	want := []RoiPoint{
		{Month: "2026-06", Revenue: 900},
		{Month: "2026-07", Cost: 100},
		{Month: "2026-08", Cost: 75, Revenue: 400},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("mergeMonthly mismatch\n got %+v\nwant %+v", got, want)
	}
}

package services

import (
	"context"
	"math"
	"sort"
	"time"

	"fleetflow/internal/models"
)

// AnalyticsService derives dashboard and financial-report figures. It is
// read-only; every ratio guards division by zero with a literal 0.
type AnalyticsService struct {
	store AnalyticsStore
	now   func() time.Time
}

func NewAnalyticsService(store AnalyticsStore, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{store: store, now: now}
}

// HealthPoint is the current active/in-shop split for the dashboard chart.
type HealthPoint struct {
	Name   string `json:"name"`
	Active int64  `json:"active"`
	InShop int64  `json:"inShop"`
}

type DashboardStats struct {
	TotalVehicles   int64          `json:"totalVehicles"`
	ActiveVehicles  int64          `json:"activeVehicles"`
	InShopVehicles  int64          `json:"inShopVehicles"`
	PendingTrips    int64          `json:"pendingTrips"`
	UtilizationRate float64        `json:"utilizationRate"`
	TripsData       []TripDayCount `json:"tripsData"`
	HealthData      []HealthPoint  `json:"healthData"`
}

// RoiPoint is one month of merged cost and revenue.
type RoiPoint struct {
	Month   string  `json:"month"`
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
}

type FinancialReport struct {
	TotalFuelCost        float64    `json:"totalFuelCost"`
	TotalMaintenanceCost float64    `json:"totalMaintenanceCost"`
	TotalOperationalCost float64    `json:"totalOperationalCost"`
	TotalRevenue         float64    `json:"totalRevenue"`
	TotalDistance        float64    `json:"totalDistance"`
	TotalLiters          float64    `json:"totalLiters"`
	FuelEfficiency       float64    `json:"fuelEfficiency"`
	CostPerKm            float64    `json:"costPerKm"`
	TotalAcquisitionCost float64    `json:"totalAcquisitionCost"`
	AvgRoi               float64    `json:"avgRoi"`
	RoiData              []RoiPoint `json:"roiData"`
}

// Dashboard assembles fleet counts, utilization and the trailing-7-day trip
// outcome buckets.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalVehicles, err = s.store.CountVehicles(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveVehicles, err = s.store.CountVehiclesByStatus(ctx, models.VehicleOnTrip); err != nil {
		return nil, err
	}
	if stats.InShopVehicles, err = s.store.CountVehiclesByStatus(ctx, models.VehicleInShop); err != nil {
		return nil, err
	}
	if stats.PendingTrips, err = s.store.CountTripsByStatus(ctx, models.TripDraft); err != nil {
		return nil, err
	}

	if stats.TotalVehicles > 0 {
		stats.UtilizationRate = round2(float64(stats.ActiveVehicles) / float64(stats.TotalVehicles) * 100)
	}

	sevenDaysAgo := s.now().AddDate(0, 0, -7)
	if stats.TripsData, err = s.store.TripCountsByDay(ctx, sevenDaysAgo); err != nil {
		return nil, err
	}
	if stats.TripsData == nil {
		stats.TripsData = []TripDayCount{}
	}

	stats.HealthData = []HealthPoint{
		{Name: "Current", Active: stats.ActiveVehicles, InShop: stats.InShopVehicles},
	}
	return stats, nil
}

// Financials assembles fleet-wide cost, revenue and efficiency figures plus
// the trailing-6-month cost/revenue rollup.
func (s *AnalyticsService) Financials(ctx context.Context) (*FinancialReport, error) {
	expenses, err := s.store.ExpenseTotals(ctx)
	if err != nil {
		return nil, err
	}
	maintenanceCost, err := s.store.MaintenanceCostTotal(ctx)
	if err != nil {
		return nil, err
	}
	fleet, err := s.store.VehicleTotals(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.store.TripRevenueTotal(ctx)
	if err != nil {
		return nil, err
	}

	report := &FinancialReport{
		TotalFuelCost:        expenses.Cost,
		TotalMaintenanceCost: maintenanceCost,
		TotalOperationalCost: expenses.Cost + maintenanceCost,
		TotalRevenue:         revenue,
		TotalDistance:        fleet.Distance,
		TotalLiters:          expenses.Liters,
		TotalAcquisitionCost: fleet.AcquisitionCost,
	}

	if report.TotalLiters > 0 {
		report.FuelEfficiency = round2(report.TotalDistance / report.TotalLiters)
	}
	if report.TotalDistance > 0 {
		report.CostPerKm = round2(report.TotalFuelCost / report.TotalDistance)
	}
	if report.TotalAcquisitionCost > 0 {
		report.AvgRoi = round2((report.TotalRevenue - report.TotalOperationalCost) / report.TotalAcquisitionCost * 100)
	}

	sixMonthsAgo := s.now().AddDate(0, -6, 0)
	monthlyExpense, err := s.store.MonthlyExpenseCost(ctx, sixMonthsAgo)
	if err != nil {
		return nil, err
	}
	monthlyMaintenance, err := s.store.MonthlyMaintenanceCost(ctx, sixMonthsAgo)
	if err != nil {
		return nil, err
	}
	monthlyRevenue, err := s.store.MonthlyTripRevenue(ctx, sixMonthsAgo)
	if err != nil {
		return nil, err
	}
	report.RoiData = mergeMonthly(monthlyExpense, monthlyMaintenance, monthlyRevenue)

	return report, nil
}

// mergeMonthly folds fuel and maintenance cost plus revenue into one point
// per calendar month, sorted ascending by month key.
func mergeMonthly(expenseCost, maintenanceCost, revenue []MonthlyAmount) []RoiPoint {
	byMonth := map[string]*RoiPoint{}
	point := func(month string) *RoiPoint {
		p, ok := byMonth[month]
		if !ok {
			p = &RoiPoint{Month: month}
			byMonth[month] = p
		}
		return p
	}
	for _, m := range expenseCost {
		point(m.Month).Cost += m.Amount
	}
	for _, m := range maintenanceCost {
		point(m.Month).Cost += m.Amount
	}
	for _, m := range revenue {
		point(m.Month).Revenue += m.Amount
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]RoiPoint, 0, len(months))
	for _, m := range months {
		out = append(out, *byMonth[m])
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package models

import (
	"testing"
	"time"
)

func TestStatusValid(t *testing.T) {
	if !VehicleAvailable.Valid() || !VehicleOutOfService.Valid() {
		t.Fatalf("known vehicle statuses must be valid")
	}
	if VehicleStatus("Parked").Valid() {
		t.Fatalf("unknown vehicle status must be invalid")
	}
	if !DriverSuspended.Valid() {
		t.Fatalf("known driver statuses must be valid")
	}
	if DriverStatus("on trip").Valid() {
		t.Fatalf("driver status matching is case sensitive")
	}
	if !TripCancelled.Valid() {
		t.Fatalf("known trip statuses must be valid")
	}
	if TripStatus("Pending").Valid() {
		t.Fatalf("unknown trip status must be invalid")
	}
	if !CategoryHeavyTruck.Valid() {
		t.Fatalf("known categories must be valid")
	}
	if VehicleCategory("Bus").Valid() {
		t.Fatalf("unknown category must be invalid")
	}
}

func TestAssignable(t *testing.T) {
	v := Vehicle{Status: VehicleAvailable}
	if !v.Assignable() {
		t.Fatalf("available vehicle must be assignable")
	}
	for _, s := range []VehicleStatus{VehicleOnTrip, VehicleInShop, VehicleOutOfService} {
		v.Status = s
		if v.Assignable() {
			t.Fatalf("%s vehicle must not be assignable", s)
		}
	}

	d := Driver{Status: DriverOnDuty}
	if !d.Assignable() {
		t.Fatalf("on-duty driver must be assignable")
	}
	for _, s := range []DriverStatus{DriverOffDuty, DriverOnTrip, DriverSuspended} {
		d.Status = s
		if d.Assignable() {
			t.Fatalf("%s driver must not be assignable", s)
		}
	}
}

func TestLicenseExpiredBoundary(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	d := Driver{LicenseExpiry: now}
	if d.LicenseExpired(now) {
		t.Fatalf("expiry equal to now must not count as expired")
	}
	d.LicenseExpiry = now.Add(-time.Nanosecond)
	if !d.LicenseExpired(now) {
		t.Fatalf("expiry before now must count as expired")
	}
}

func TestApplySafetyPenaltyFloor(t *testing.T) {
	d := Driver{SafetyScore: 100}
	d.ApplySafetyPenalty(5)
	if d.SafetyScore != 95 {
		t.Fatalf("expected 95, got %v", d.SafetyScore)
	}

	d.SafetyScore = 3
	d.ApplySafetyPenalty(5)
	if d.SafetyScore != 0 {
		t.Fatalf("expected floor at 0, got %v", d.SafetyScore)
	}
}

package cars

import (
	"testing"
	"time"

	"github.com/takagi3/weekender/internal/trip"
)

func samplePeriod() trip.Period {
	anchor := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	return trip.Generate([]time.Time{anchor}, []trip.LengthOption{trip.LengthNone})[0]
}

func TestFind(t *testing.T) {
	rentals := Find(samplePeriod(), []string{"LAS", "PHX"})

	if len(rentals) != 1 {
		t.Fatalf("Find() returned %d rentals, want 1", len(rentals))
	}
	r := rentals[0]
	if r.PickupLocation != "LAS" {
		t.Errorf("pickup = %s, want the first destination airport", r.PickupLocation)
	}
	if r.PickupDate != "2025-07-04" || r.DropoffDate != "2025-07-06" {
		t.Errorf("dates = %s to %s, want period dates", r.PickupDate, r.DropoffDate)
	}
}

func TestFindNoAirports(t *testing.T) {
	if rentals := Find(samplePeriod(), nil); len(rentals) != 0 {
		t.Errorf("Find() with no airports returned %d rentals, want 0", len(rentals))
	}
}

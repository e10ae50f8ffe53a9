package planner

import (
	"testing"
	"time"

	"github.com/takagi3/weekender/internal/cars"
	"github.com/takagi3/weekender/internal/config"
	"github.com/takagi3/weekender/internal/flights"
	"github.com/takagi3/weekender/internal/hotels"
	"github.com/takagi3/weekender/internal/trip"
)

func samplePeriod() trip.Period {
	anchor := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	return trip.Generate([]time.Time{anchor}, []trip.LengthOption{trip.LengthNone})[0]
}

func TestRequests(t *testing.T) {
	traveler := config.Traveler{
		Name:           "Sam",
		OriginAirports: []string{"SFO", "OAK"},
		MaxBudgetUSD:   450,
		PreferredTimes: &config.TimeWindow{EarliestDepartureHour: 8, LatestArrivalHour: 23},
	}

	reqs := Requests(samplePeriod(), traveler, []string{"LAS", "PHX"})

	if len(reqs) != 4 {
		t.Fatalf("got %d requests, want 4 (2 origins x 2 destinations)", len(reqs))
	}
	first := reqs[0]
	if first.Origin != "SFO" || first.Destination != "LAS" {
		t.Errorf("first request = %s -> %s, want SFO -> LAS", first.Origin, first.Destination)
	}
	if first.MaxBudgetUSD != 450 {
		t.Errorf("budget = %v, want 450", first.MaxBudgetUSD)
	}
	if first.Times == nil || first.Times.EarliestDepartureHour != 8 {
		t.Errorf("time window not carried over: %+v", first.Times)
	}
	if !first.Depart.Equal(samplePeriod().Start) || !first.Return.Equal(samplePeriod().End) {
		t.Errorf("dates = %s / %s", first.Depart, first.Return)
	}
	// origins outer, destinations inner
	if reqs[1].Origin != "SFO" || reqs[1].Destination != "PHX" {
		t.Errorf("second request = %s -> %s, want SFO -> PHX", reqs[1].Origin, reqs[1].Destination)
	}
}

func TestRequestsNoTimeWindow(t *testing.T) {
	traveler := config.Traveler{Name: "Dana", OriginAirports: []string{"JFK"}}
	reqs := Requests(samplePeriod(), traveler, []string{"LAS"})
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	if reqs[0].Times != nil {
		t.Error("time window should be nil when the traveler has none")
	}
}

func TestSummaryRows(t *testing.T) {
	period := samplePeriod()
	s := Summary{
		Period: period,
		Flights: []flights.Result{{
			Request: flights.Request{TravelerName: "Sam", Origin: "SFO", Destination: "LAS"},
			Status:  flights.StatusOK,
			Message: "results ready",
		}},
		Cars:   cars.Find(period, []string{"LAS"}),
		Hotels: hotels.Find(period, hotels.SearchLocations([]string{"LAS"}, nil), []string{"Hyatt"}, "Any"),
	}

	rows := s.Rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (flight + car + hotel)", len(rows))
	}
	for i, row := range rows {
		if len(row) != len(HeaderRow()) {
			t.Errorf("row %d has %d cells, header has %d", i, len(row), len(HeaderRow()))
		}
		if row[0] != period.Description {
			t.Errorf("row %d trip cell = %v", i, row[0])
		}
	}
	if rows[0][3] != "flight" || rows[1][3] != "car" || rows[2][3] != "hotel" {
		t.Errorf("row kinds = %v, %v, %v", rows[0][3], rows[1][3], rows[2][3])
	}
	if rows[0][5] != "SFO -> LAS" {
		t.Errorf("flight route cell = %v", rows[0][5])
	}
}

func TestSummaryRowsEmpty(t *testing.T) {
	s := Summary{Period: samplePeriod()}
	if rows := s.Rows(); len(rows) != 0 {
		t.Errorf("empty summary produced %d rows", len(rows))
	}
}

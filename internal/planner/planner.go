// Package planner holds the data shapes shared by the plan pipeline: the
// per-period summary that feeds the spreadsheet and the PDF report, and the
// expansion of travelers into concrete flight search requests.
package planner

import (
	"fmt"

	"github.com/takagi3/weekender/internal/cars"
	"github.com/takagi3/weekender/internal/config"
	"github.com/takagi3/weekender/internal/flights"
	"github.com/takagi3/weekender/internal/hotels"
	"github.com/takagi3/weekender/internal/trip"
)

// Summary collects everything found for one trip period.
type Summary struct {
	Period  trip.Period
	Flights []flights.Result
	Cars    []cars.Rental
	Hotels  []hotels.Option
}

// Requests expands one traveler into the flight searches to run for a period:
// every origin airport crossed with every destination airport, in input order.
func Requests(period trip.Period, traveler config.Traveler, destinations []string) []flights.Request {
	var reqs []flights.Request
	for _, origin := range traveler.OriginAirports {
		for _, dest := range destinations {
			req := flights.Request{
				TravelerName: traveler.Name,
				Origin:       origin,
				Destination:  dest,
				Depart:       period.Start,
				Return:       period.End,
				MaxBudgetUSD: traveler.MaxBudgetUSD,
			}
			if traveler.PreferredTimes != nil {
				req.Times = &flights.TimeWindow{
					EarliestDepartureHour: traveler.PreferredTimes.EarliestDepartureHour,
					LatestArrivalHour:     traveler.PreferredTimes.LatestArrivalHour,
				}
			}
			reqs = append(reqs, req)
		}
	}
	return reqs
}

// HeaderRow is the first spreadsheet row.
func HeaderRow() []interface{} {
	return []interface{}{
		"Trip", "Start", "End",
		"Kind", "Who/Where", "Route/Location", "Status/Price", "Details",
	}
}

// Rows flattens the summary into spreadsheet rows, one per found option.
func (s Summary) Rows() [][]interface{} {
	var rows [][]interface{}

	base := func() []interface{} {
		return []interface{}{s.Period.Description, s.Period.StartDate(), s.Period.EndDate()}
	}

	for _, fr := range s.Flights {
		rows = append(rows, append(base(),
			"flight",
			fr.Request.TravelerName,
			fmt.Sprintf("%s -> %s", fr.Request.Origin, fr.Request.Destination),
			string(fr.Status),
			fmt.Sprintf("%s (stops=%s price=%s times=%s)",
				fr.Message, fr.StopsFilter, fr.PriceFilter, fr.TimesFilter),
		))
	}
	for _, cr := range s.Cars {
		rows = append(rows, append(base(),
			"car",
			cr.Company,
			cr.PickupLocation,
			cr.PriceTotal,
			fmt.Sprintf("%s, %s/day, %s", cr.CarType, cr.PricePerDay, cr.BookingLink),
		))
	}
	for _, h := range s.Hotels {
		rows = append(rows, append(base(),
			"hotel",
			h.HotelName,
			fmt.Sprintf("%s (%s)", h.SearchedAt, h.LocationType),
			h.PriceTotal,
			fmt.Sprintf("%s/night, %s", h.PricePerNight, h.BookingLink),
		))
	}
	return rows
}

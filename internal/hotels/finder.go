// Package hotels finds hotel options for a trip period. Like the car rental
// finder this is a placeholder: it assembles real search locations from the
// config but returns a fixed sample record.
package hotels

import (
	"fmt"
	"log"

	"github.com/takagi3/weekender/internal/config"
	"github.com/takagi3/weekender/internal/trip"
)

// Location types searched for hotels.
const (
	LocationAirport  = "airport"
	LocationParkArea = "park_area"
)

// Location is one place to search for hotels.
type Location struct {
	Type string
	Name string
	// Park is set for park_area locations.
	Park string
}

// Option is one hotel option.
type Option struct {
	LocationType  string
	SearchedAt    string
	HotelName     string
	Brand         string
	CheckInDate   string
	CheckOutDate  string
	PriceTotal    string
	PricePerNight string
	BookingLink   string
}

// SearchLocations builds the hotel search list: every destination airport,
// then every park that declares a hotel search area.
func SearchLocations(airports []string, parks []config.Park) []Location {
	var locations []Location
	for _, code := range airports {
		locations = append(locations, Location{Type: LocationAirport, Name: code})
	}
	for _, park := range parks {
		if park.HotelSearchArea == "" {
			continue
		}
		locations = append(locations, Location{
			Type: LocationParkArea,
			Name: park.HotelSearchArea,
			Park: park.Name,
		})
	}
	return locations
}

// Find returns hotel options for the period. It needs at least one location
// and one preferred brand to produce its sample record.
func Find(period trip.Period, locations []Location, preferredBrands []string, fallback string) []Option {
	log.Printf("  [hotels] searching %d locations, brands %v (fallback %q), %s to %s",
		len(locations), preferredBrands, fallback, period.StartDate(), period.EndDate())

	if len(locations) == 0 || len(preferredBrands) == 0 {
		log.Printf("Warning: not enough info to search hotels (need a location and a brand).")
		return nil
	}

	loc := locations[0]
	brand := preferredBrands[0]
	return []Option{{
		LocationType:  loc.Type,
		SearchedAt:    loc.Name,
		HotelName:     fmt.Sprintf("Dummy %s %s", brand, loc.Name),
		Brand:         brand,
		CheckInDate:   period.StartDate(),
		CheckOutDate:  period.EndDate(),
		PriceTotal:    "$400 - $700",
		PricePerNight: "$200 - $350",
		BookingLink:   "https://hotels.example.com/dummy_link",
	}}
}

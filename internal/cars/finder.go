// Package cars finds car rental options for a trip period. Real inventory
// lookup is not implemented; Find returns a fixed sample record so the rest
// of the pipeline has data to carry.
package cars

import (
	"log"

	"github.com/takagi3/weekender/internal/trip"
)

// Rental is one car rental option.
type Rental struct {
	PickupLocation string
	PickupDate     string
	DropoffDate    string
	CarType        string
	Company        string
	PriceTotal     string
	PricePerDay    string
	BookingLink    string
}

// Find returns rental options for the period at the given airports. Pickup is
// assumed at the first destination airport.
func Find(period trip.Period, destinationAirports []string) []Rental {
	log.Printf("  [cars] searching rentals at %v, %s to %s",
		destinationAirports, period.StartDate(), period.EndDate())

	if len(destinationAirports) == 0 {
		log.Printf("Warning: no destination airports specified for car rental search.")
		return nil
	}

	return []Rental{{
		PickupLocation: destinationAirports[0],
		PickupDate:     period.StartDate(),
		DropoffDate:    period.EndDate(),
		CarType:        "Mid-size SUV",
		Company:        "DummyRentals",
		PriceTotal:     "$200 - $350",
		PricePerDay:    "$50 - $70",
		BookingLink:    "https://cars.example.com/dummy_link",
	}}
}

// Package config loads the trip configuration (YAML) and the application
// settings (TOML). The trip config describes what to plan; the settings file
// describes how to run (browser binary, redis address, credential paths).
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/takagi3/weekender/internal/trip"
)

// TimeWindow restricts flight times for a traveler, in local clock hours.
type TimeWindow struct {
	EarliestDepartureHour int `yaml:"earliest_departure_hour"`
	LatestArrivalHour     int `yaml:"latest_arrival_hour"`
}

// Traveler is one person whose flights are searched separately.
type Traveler struct {
	Name           string      `yaml:"name"`
	OriginAirports []string    `yaml:"origin_airport_options"`
	MaxBudgetUSD   float64     `yaml:"max_budget_usd"`
	PreferredTimes *TimeWindow `yaml:"preferred_times"`
}

// Park is a destination park with an optional hotel search area nearby.
type Park struct {
	Name            string `yaml:"name"`
	HotelSearchArea string `yaml:"hotel_search_area"`
}

// Trip is the planning input loaded from trip_config.yaml.
type Trip struct {
	WeekendDates         []string   `yaml:"weekend_dates"`
	TripLengthOptions    []string   `yaml:"trip_length_options"`
	Travelers            []Traveler `yaml:"travelers"`
	DestinationAirports  []string   `yaml:"destination_airport_options"`
	DestinationParks     []Park     `yaml:"destination_parks"`
	PreferredHotelBrands []string   `yaml:"preferred_hotel_brands"`
	FallbackHotelOptions string     `yaml:"fallback_hotel_options"`
	OutputSheetName      string     `yaml:"output_sheet_name"`
}

// LoadTrip reads and parses the trip configuration file.
func LoadTrip(path string) (*Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Trip
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.OutputSheetName == "" {
		cfg.OutputSheetName = "Default Trip Planning Sheet"
	}
	if cfg.FallbackHotelOptions == "" {
		cfg.FallbackHotelOptions = "Any"
	}

	log.Printf("Successfully loaded configuration from %s", path)
	return &cfg, nil
}

// WeekendAnchors parses weekend_dates into anchor dates. Entries that do not
// parse as YYYY-MM-DD are skipped with a warning; entries that are not
// Saturdays are kept but warned about, since the day offsets assume one.
func (c *Trip) WeekendAnchors() []time.Time {
	var anchors []time.Time
	for _, s := range c.WeekendDates {
		d, err := time.Parse(trip.DateLayout, s)
		if err != nil {
			log.Printf("Warning: invalid date format %q in config. Skipping.", s)
			continue
		}
		if d.Weekday() != time.Saturday {
			log.Printf("Warning: weekend date %s is a %s, not a Saturday.", s, d.Weekday())
		}
		anchors = append(anchors, d)
	}
	return anchors
}

// LengthOptions returns trip_length_options as typed tags. Validation of
// unknown tags happens in the generator, which warns and skips them.
func (c *Trip) LengthOptions() []trip.LengthOption {
	opts := make([]trip.LengthOption, 0, len(c.TripLengthOptions))
	for _, s := range c.TripLengthOptions {
		opts = append(opts, trip.LengthOption(s))
	}
	return opts
}

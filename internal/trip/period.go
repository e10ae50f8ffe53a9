// Package trip turns anchor weekend dates into concrete trip date ranges.
// Each anchor is expected to be a Saturday; a length option decides which of
// the surrounding days are included.
package trip

import (
	"fmt"
	"log"
	"time"
)

// DateLayout is the date format used throughout the planner.
const DateLayout = "2006-01-02"

// LengthOption selects which days around the anchor are part of the trip.
type LengthOption string

const (
	// LengthNone is the plain weekend, Friday through Sunday.
	LengthNone LengthOption = "none"
	// LengthFridayOff extends the weekend back to Thursday.
	LengthFridayOff LengthOption = "friday_off"
	// LengthMondayOff extends the weekend forward to Monday.
	LengthMondayOff LengthOption = "monday_off"
)

// Period is one concrete trip date range derived from an anchor date.
// Start is always before the anchor and End on or after it.
type Period struct {
	Description string
	Start       time.Time
	End         time.Time
	Anchor      time.Time
	Option      LengthOption
}

// StartDate returns the start date formatted as YYYY-MM-DD.
func (p Period) StartDate() string { return p.Start.Format(DateLayout) }

// EndDate returns the end date formatted as YYYY-MM-DD.
func (p Period) EndDate() string { return p.End.Format(DateLayout) }

// Nights returns the number of nights covered by the period.
func (p Period) Nights() int { return int(p.End.Sub(p.Start).Hours() / 24) }

type lengthSpec struct {
	before, after int
	label         string
}

var lengthSpecs = map[LengthOption]lengthSpec{
	LengthNone:      {1, 1, "Weekend (Fri-Sun)"},
	LengthFridayOff: {2, 1, "Friday Off (Thu-Sun)"},
	LengthMondayOff: {1, 2, "Monday Off (Fri-Mon)"},
}

// Generate produces the cross product of anchors and length options, with
// anchors in the outer loop so output order matches input order. Unknown
// options are skipped with a warning and nothing is deduplicated.
func Generate(anchors []time.Time, options []LengthOption) []Period {
	var periods []Period
	for _, anchor := range anchors {
		for _, opt := range options {
			spec, ok := lengthSpecs[opt]
			if !ok {
				log.Printf("Warning: unknown trip length option %q. Skipping.", opt)
				continue
			}
			start := anchor.AddDate(0, 0, -spec.before)
			end := anchor.AddDate(0, 0, spec.after)
			periods = append(periods, Period{
				Description: fmt.Sprintf("%s: %s to %s",
					spec.label, start.Format(DateLayout), end.Format(DateLayout)),
				Start:  start,
				End:    end,
				Anchor: anchor,
				Option: opt,
			})
		}
	}
	return periods
}

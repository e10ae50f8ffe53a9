package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/takagi3/weekender/internal/cars"
	"github.com/takagi3/weekender/internal/flights"
	"github.com/takagi3/weekender/internal/planner"
	"github.com/takagi3/weekender/internal/trip"
)

func TestWritePDF(t *testing.T) {
	anchor := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
	period := trip.Generate([]time.Time{anchor}, []trip.LengthOption{trip.LengthNone})[0]

	summaries := []planner.Summary{
		{
			Period: period,
			Flights: []flights.Result{{
				Request: flights.Request{TravelerName: "Sam", Origin: "SFO", Destination: "LAS"},
				Status:  flights.StatusOK,
				Message: "results ready",
			}},
			Cars: cars.Find(period, []string{"LAS"}),
		},
		{Period: period}, // a period with nothing found still renders
	}

	path := filepath.Join(t.TempDir(), "trips.pdf")
	if err := WritePDF(path, summaries); err != nil {
		t.Fatalf("WritePDF() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestWritePDFBadPath(t *testing.T) {
	if err := WritePDF(filepath.Join(t.TempDir(), "no", "such", "dir", "x.pdf"), nil); err == nil {
		t.Error("WritePDF() should fail for an unwritable path")
	}
}

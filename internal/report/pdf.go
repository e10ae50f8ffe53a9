// Package report renders the collected trip summaries as a PDF, for sharing
// with travelers who will never open the spreadsheet.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/takagi3/weekender/internal/planner"
)

// WritePDF renders one page section per trip period into path.
func WritePDF(path string, summaries []planner.Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Options", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Trip Options")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	for _, s := range summaries {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, s.Period.Description)
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "", 11)
		for _, fr := range s.Flights {
			line := fmt.Sprintf("Flight  %s: %s -> %s  [%s]",
				fr.Request.TravelerName, fr.Request.Origin, fr.Request.Destination, fr.Status)
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
			if fr.Message != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.Cell(0, 5, "        "+fr.Message)
				pdf.Ln(6)
				pdf.SetFont("Helvetica", "", 11)
			}
		}
		for _, cr := range s.Cars {
			pdf.Cell(0, 6, fmt.Sprintf("Car     %s at %s, %s (%s/day)",
				cr.CarType, cr.PickupLocation, cr.PriceTotal, cr.PricePerDay))
			pdf.Ln(6)
		}
		for _, h := range s.Hotels {
			pdf.Cell(0, 6, fmt.Sprintf("Hotel   %s at %s, %s (%s/night)",
				h.HotelName, h.SearchedAt, h.PriceTotal, h.PricePerNight))
			pdf.Ln(6)
		}
		if len(s.Flights) == 0 && len(s.Cars) == 0 && len(s.Hotels) == 0 {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.Cell(0, 6, "Nothing found for this period.")
			pdf.Ln(6)
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.Ln(6)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := pdf.Output(f); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

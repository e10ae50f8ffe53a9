// Package main is the entry point for the weekender tool.
// weekender plans weekend trip options (flights, car rentals, hotels) across
// candidate dates and writes the results to a Google spreadsheet.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/takagi3/weekender/internal/browser"
	"github.com/takagi3/weekender/internal/cache"
	"github.com/takagi3/weekender/internal/cars"
	"github.com/takagi3/weekender/internal/config"
	"github.com/takagi3/weekender/internal/flights"
	"github.com/takagi3/weekender/internal/hotels"
	"github.com/takagi3/weekender/internal/iata"
	"github.com/takagi3/weekender/internal/planner"
	"github.com/takagi3/weekender/internal/report"
	"github.com/takagi3/weekender/internal/sheets"
	"github.com/takagi3/weekender/internal/trip"
)

var (
	colorHeader  = color.New(color.FgHiMagenta, color.Bold)
	colorBold    = color.New(color.Bold)
	colorGood    = color.New(color.FgGreen)
	colorWarning = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	config.LoadEnv()

	subcommand := os.Args[1]
	switch subcommand {
	case "plan":
		runPlan(os.Args[2:])
	case "iata":
		runIata(os.Args[2:])
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `weekender - Plan weekend trip options across candidate dates

weekender expands your candidate weekends into trip periods, runs a browser
search for flights per traveler and route, adds car rental and hotel options,
and writes everything to a Google spreadsheet.

Usage:
  weekender plan [CONFIG_FILE] [options]
  weekender iata <PLACE>
  weekender help

Commands:
  plan        Plan trip options from a trip config file
  iata        Look up the IATA airport code for a city or place
  help        Show this help message

Examples:
  weekender plan trip_config.yaml
  weekender plan trip_config.yaml --dry-run
  weekender plan trip_config.yaml --pdf trips.pdf --no-sheet
  weekender iata "Las Vegas"

For more information on a command, use:
  weekender <command> -h
`)
}

func runPlan(args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)

	var (
		configPath string
		dryRun     bool
		pdfPath    string
		noSheet    bool
	)

	fs.StringVar(&configPath, "config", "trip_config.yaml", "Path to the trip config file")
	fs.BoolVar(&dryRun, "dry-run", false, "Run against canned pages instead of a real browser (implies --no-sheet)")
	fs.StringVar(&pdfPath, "pdf", "", "Also write a PDF summary to this path")
	fs.BoolVar(&noSheet, "no-sheet", false, "Skip writing the spreadsheet")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: weekender plan [CONFIG_FILE] [options]

Plan trip options from a trip config file.

Options:
`)
		fs.PrintDefaults()
	}

	fs.Parse(args)

	if fs.NArg() >= 1 {
		configPath = fs.Arg(0)
	}
	if dryRun {
		noSheet = true
	}

	executePlan(configPath, dryRun, noSheet, pdfPath)
}

func executePlan(configPath string, dryRun, noSheet bool, pdfPath string) {
	ctx := context.Background()

	settings, _, err := config.LoadSettings()
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	// Step 1: Load configuration
	log.Printf("=== Step 1: Loading %s ===", configPath)
	cfg, err := config.LoadTrip(configPath)
	if err != nil {
		log.Fatalf("Failed to load trip config: %v", err)
	}

	// Step 2: Generate trip periods
	log.Printf("=== Step 2: Generating trip periods ===")
	periods := trip.Generate(cfg.WeekendAnchors(), cfg.LengthOptions())
	if len(periods) == 0 {
		log.Fatalf("No valid trip periods generated. Check weekend_dates and trip_length_options.")
	}
	for _, p := range periods {
		log.Printf("Generated trip option: %s", p.Description)
	}
	log.Printf("Total trip options generated: %d", len(periods))

	store := openCache(ctx, settings)
	finder := newFinder(settings, dryRun)

	// Step 3: Search, one period and one traveler at a time
	log.Printf("=== Step 3: Searching flights, cars and hotels ===")
	summaries := make([]planner.Summary, 0, len(periods))
	for i, period := range periods {
		log.Printf("Processing trip option %d/%d: %s", i+1, len(periods), period.Description)

		var results []flights.Result
		for _, traveler := range cfg.Travelers {
			for _, req := range planner.Requests(period, traveler, cfg.DestinationAirports) {
				results = append(results, searchCached(ctx, finder, store, req))
			}
		}

		locations := hotels.SearchLocations(cfg.DestinationAirports, cfg.DestinationParks)
		summaries = append(summaries, planner.Summary{
			Period:  period,
			Flights: results,
			Cars:    cars.Find(period, cfg.DestinationAirports),
			Hotels:  hotels.Find(period, locations, cfg.PreferredHotelBrands, cfg.FallbackHotelOptions),
		})
	}

	// Step 4: Write spreadsheet
	if noSheet {
		log.Printf("=== Step 4: Skipped spreadsheet ===")
	} else {
		log.Printf("=== Step 4: Writing spreadsheet %q ===", cfg.OutputSheetName)
		writeSheet(ctx, settings, cfg.OutputSheetName, summaries)
	}

	// Step 5: PDF summary
	if pdfPath != "" {
		log.Printf("=== Step 5: Writing PDF %s ===", pdfPath)
		if err := report.WritePDF(pdfPath, summaries); err != nil {
			log.Fatalf("Failed to write PDF: %v", err)
		}
	}

	log.Printf("=== Done! ===")
	printSummary(summaries)
}

// openCache picks a redis-backed cache when an address is configured and the
// server is reachable, and an in-process map otherwise.
func openCache(ctx context.Context, settings config.Settings) cache.Cache {
	if settings.Redis.Addr == "" {
		return cache.NewMemory()
	}
	r := cache.NewRedis(settings.Redis.Addr)
	if err := r.Ping(ctx); err != nil {
		log.Printf("Warning: redis at %s is unreachable (%v), caching in memory only.", settings.Redis.Addr, err)
		return cache.NewMemory()
	}
	log.Printf("Using redis cache at %s", settings.Redis.Addr)
	return r
}

func newFinder(settings config.Settings, dryRun bool) *flights.Finder {
	if dryRun {
		log.Printf("Dry run: searches use canned pages, no browser is started.")
		return flights.New(func(ctx context.Context) (browser.Session, error) {
			return flights.NewDemoSession(), nil
		}, flights.Config{Settle: time.Millisecond})
	}

	opts := browser.ChromeOptions{
		ExecPath: settings.Browser.ChromePath,
		Headless: settings.HeadlessEnabled(),
	}
	return flights.New(func(ctx context.Context) (browser.Session, error) {
		return browser.NewChromeSession(ctx, opts)
	}, flights.Config{})
}

// searchCached returns a cached result when one exists, otherwise runs the
// search and caches it on success.
func searchCached(ctx context.Context, finder *flights.Finder, store cache.Cache, req flights.Request) flights.Result {
	key := cache.Key(req.TravelerName, req.Origin, req.Destination,
		req.Depart.Format(trip.DateLayout), req.Return.Format(trip.DateLayout))

	if raw, ok := store.Get(ctx, key); ok {
		var cached flights.Result
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			log.Printf("  [flights] cache hit: %s %s -> %s", req.TravelerName, req.Origin, req.Destination)
			return cached
		}
		log.Printf("Warning: discarding unreadable cache entry for %s", key)
	}

	log.Printf("  [flights] searching for %s: %s -> %s", req.TravelerName, req.Origin, req.Destination)
	res := finder.Search(ctx, req)

	if res.Status == flights.StatusOK {
		if raw, err := json.Marshal(res); err == nil {
			if err := store.Set(ctx, key, string(raw)); err != nil {
				log.Printf("Warning: could not cache search result: %v", err)
			}
		}
	}
	return res
}

func writeSheet(ctx context.Context, settings config.Settings, title string, summaries []planner.Summary) {
	credFile := settings.Google.CredentialsFile
	if credFile == "" {
		credFile = "credentials.json"
	}
	tokenFile := settings.Google.TokenFile
	if tokenFile == "" {
		tokenFile = "token.json"
	}

	client, err := sheets.NewClient(ctx, credFile, tokenFile)
	if err != nil {
		log.Fatalf("Failed to authenticate with Google Sheets: %v", err)
	}

	sheet, err := client.CreateOrOpen(ctx, title, settings.Google.DriveFolderID)
	if err != nil {
		log.Fatalf("Failed to create or open spreadsheet: %v", err)
	}

	rows := [][]interface{}{planner.HeaderRow()}
	for _, s := range summaries {
		rows = append(rows, s.Rows()...)
	}
	if err := client.AppendRows(ctx, sheet.ID, rows); err != nil {
		log.Fatalf("Failed to write rows: %v", err)
	}
	log.Printf("Wrote %d rows. View the sheet at: %s", len(rows), sheet.URL)
}

func printSummary(summaries []planner.Summary) {
	colorHeader.Printf("\nTrip options\n")
	for _, s := range summaries {
		colorBold.Printf("%s\n", s.Period.Description)

		ok, failed := 0, 0
		for _, fr := range s.Flights {
			if fr.Status.Failed() {
				failed++
			} else {
				ok++
			}
		}
		if failed > 0 {
			colorWarning.Printf("  flights: %d ok, %d failed\n", ok, failed)
		} else {
			colorGood.Printf("  flights: %d ok\n", ok)
		}
		fmt.Printf("  cars: %d option(s), hotels: %d option(s)\n", len(s.Cars), len(s.Hotels))
	}
}

func runIata(args []string) {
	fs := flag.NewFlagSet("iata", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: weekender iata <PLACE>

Look up the IATA airport or city code for a place name.
Requires GEMINI_API_KEY in the environment or a .env file.

Examples:
  weekender iata "Las Vegas"
  weekender iata Springdale
`)
	}

	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: place name is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	code, err := iata.Lookup(context.Background(), os.Getenv("GEMINI_API_KEY"), fs.Arg(0))
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}
	if code == iata.Unknown {
		colorWarning.Printf("Could not identify an airport for %q\n", fs.Arg(0))
		return
	}
	fmt.Println(code)
}

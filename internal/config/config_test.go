package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `
weekend_dates:
  - "2025-07-05"
  - "2025-07-12"
trip_length_options:
  - none
  - friday_off
travelers:
  - name: Sam
    origin_airport_options: [SFO, OAK]
    max_budget_usd: 450
    preferred_times:
      earliest_departure_hour: 8
      latest_arrival_hour: 23
  - name: Dana
    origin_airport_options: [JFK]
destination_airport_options: [LAS, PHX]
destination_parks:
  - name: Zion National Park
    hotel_search_area: Springdale, UT
  - name: Grand Canyon
preferred_hotel_brands: [Hyatt]
output_sheet_name: Summer Trip Planning
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trip_config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTrip(t *testing.T) {
	cfg, err := LoadTrip(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadTrip() error: %v", err)
	}

	if len(cfg.Travelers) != 2 {
		t.Fatalf("got %d travelers, want 2", len(cfg.Travelers))
	}
	if cfg.Travelers[0].MaxBudgetUSD != 450 {
		t.Errorf("traveler budget = %v, want 450", cfg.Travelers[0].MaxBudgetUSD)
	}
	if cfg.Travelers[0].PreferredTimes == nil || cfg.Travelers[0].PreferredTimes.EarliestDepartureHour != 8 {
		t.Errorf("preferred times not parsed: %+v", cfg.Travelers[0].PreferredTimes)
	}
	if cfg.Travelers[1].PreferredTimes != nil {
		t.Errorf("traveler without preferred_times should have nil window")
	}
	if cfg.OutputSheetName != "Summer Trip Planning" {
		t.Errorf("output sheet name = %q", cfg.OutputSheetName)
	}
	if cfg.FallbackHotelOptions != "Any" {
		t.Errorf("fallback hotel options default = %q, want Any", cfg.FallbackHotelOptions)
	}
}

func TestLoadTripMissingFile(t *testing.T) {
	if _, err := LoadTrip(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadTrip() should fail for a missing file")
	}
}

func TestLoadTripInvalidYAML(t *testing.T) {
	if _, err := LoadTrip(writeConfig(t, "weekend_dates: [unclosed")); err == nil {
		t.Error("LoadTrip() should fail for invalid YAML")
	}
}

func TestWeekendAnchorsSkipsInvalidDates(t *testing.T) {
	cfg := &Trip{WeekendDates: []string{"2025-07-05", "not-a-date", "2025/07/12", "2025-08-02"}}

	anchors := cfg.WeekendAnchors()
	if len(anchors) != 2 {
		t.Fatalf("got %d anchors, want 2 (invalid entries skipped)", len(anchors))
	}
	if anchors[0].Format("2006-01-02") != "2025-07-05" {
		t.Errorf("first anchor = %s", anchors[0])
	}
}

func TestLengthOptions(t *testing.T) {
	cfg := &Trip{TripLengthOptions: []string{"none", "friday_off", "bogus"}}
	opts := cfg.LengthOptions()
	if len(opts) != 3 {
		t.Fatalf("got %d options, want 3 (unknown tags pass through to the generator)", len(opts))
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	t.Setenv("WEEKENDER_HOME", t.TempDir())

	settings, exists, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if exists {
		t.Error("LoadSettings() reported a settings file that does not exist")
	}
	if !settings.HeadlessEnabled() {
		t.Error("headless should default to true")
	}
}

func TestLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WEEKENDER_HOME", home)

	content := `
[browser]
chrome_path = "/usr/bin/chromium"
headless = false

[redis]
addr = "localhost:6379"

[google]
drive_folder_id = "folder123"
`
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, exists, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if !exists {
		t.Fatal("LoadSettings() did not find the settings file")
	}
	if settings.Browser.ChromePath != "/usr/bin/chromium" {
		t.Errorf("chrome_path = %q", settings.Browser.ChromePath)
	}
	if settings.HeadlessEnabled() {
		t.Error("headless = false in file, HeadlessEnabled() returned true")
	}
	if settings.Redis.Addr != "localhost:6379" {
		t.Errorf("redis addr = %q", settings.Redis.Addr)
	}
	if settings.Google.DriveFolderID != "folder123" {
		t.Errorf("drive folder id = %q", settings.Google.DriveFolderID)
	}
}

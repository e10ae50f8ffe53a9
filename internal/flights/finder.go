package flights

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/takagi3/weekender/internal/browser"
)

// DefaultBaseURL is the flight search page the finder drives.
const DefaultBaseURL = "https://www.google.com/travel/flights"

const (
	defaultWaitTimeout = 15 * time.Second
	// defaultSettle is a fixed pause after actions for client-side rendering.
	// A known fragility: there is no page signal to wait on after typing.
	defaultSettle = 500 * time.Millisecond
)

// TimeWindow restricts departure and arrival clock hours for a search.
type TimeWindow struct {
	EarliestDepartureHour int
	LatestArrivalHour     int
}

// Request is one traveler/route/date combination to search.
type Request struct {
	TravelerName string
	Origin       string
	Destination  string
	Depart       time.Time
	Return       time.Time
	// MaxBudgetUSD enables the price filter when positive.
	MaxBudgetUSD float64
	// Times enables the times filter when set.
	Times *TimeWindow
}

// Result is the outcome of one search: an overall status plus the status of
// each filter step. Filter failures do not fail the search.
type Result struct {
	Request     Request `json:"request"`
	Status      Status  `json:"status"`
	Message     string  `json:"message"`
	StopsFilter Status  `json:"stops_filter"`
	PriceFilter Status  `json:"price_filter"`
	TimesFilter Status  `json:"times_filter"`
}

// SessionFactory opens a fresh automation session for one search.
type SessionFactory func(ctx context.Context) (browser.Session, error)

// Config tunes the finder. Zero values select the defaults above.
type Config struct {
	BaseURL     string
	WaitTimeout time.Duration
	Settle      time.Duration
}

// Finder runs flight searches, one session per search, strictly sequentially.
type Finder struct {
	cfg        Config
	newSession SessionFactory
}

// New creates a Finder that opens sessions through newSession.
func New(newSession SessionFactory, cfg Config) *Finder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = defaultWaitTimeout
	}
	if cfg.Settle <= 0 {
		cfg.Settle = defaultSettle
	}
	return &Finder{cfg: cfg, newSession: newSession}
}

// Search runs the full search sequence for one request. The session is always
// closed, whichever step aborted. Nothing is ever retried; every failure is
// reported once through the result status.
func (f *Finder) Search(ctx context.Context, req Request) Result {
	res := Result{
		Request:     req,
		StopsFilter: StatusSkipped,
		PriceFilter: StatusSkipped,
		TimesFilter: StatusSkipped,
	}

	if req.Origin == "" || req.Destination == "" {
		res.Status = StatusMissingInputs
		res.Message = "origin and destination airports are required"
		return res
	}

	sess, err := f.newSession(ctx)
	if err != nil {
		res.Status = StatusDriverInit
		res.Message = fmt.Sprintf("failed to open browser session: %v", err)
		return res
	}
	defer func() {
		if err := sess.Close(); err != nil {
			log.Printf("Warning: failed to close browser session: %v", err)
		}
	}()

	if err := f.run(ctx, sess, req, &res); err != nil {
		res.Status = statusFor(err)
		res.Message = err.Error()
		return res
	}

	res.Status = StatusOK
	res.Message = fmt.Sprintf("results ready for %s -> %s (%s to %s)",
		req.Origin, req.Destination,
		req.Depart.Format("2006-01-02"), req.Return.Format("2006-01-02"))
	return res
}

// run walks the search states in order:
// navigate, consent dialog, origin, destination, dates, submit, wait for
// results, then the stops/price/times filters. Form errors abort; filter
// errors only degrade their own status.
func (f *Finder) run(ctx context.Context, sess browser.Session, req Request, res *Result) error {
	if err := sess.Navigate(ctx, f.cfg.BaseURL); err != nil {
		return fmt.Errorf("navigate: %w", err)
	}
	f.settle()

	// The consent dialog only shows up on fresh sessions; a short wait that
	// times out means there was none to dismiss.
	if el, err := sess.Find(ctx, locatorConsentAccept, f.cfg.WaitTimeout/5); err == nil {
		if err := el.Click(ctx); err != nil {
			return fmt.Errorf("consent dialog: %w", err)
		}
		f.settle()
	}

	if err := f.fillAirport(ctx, sess, locatorOriginField, req.Origin); err != nil {
		return fmt.Errorf("origin field: %w", err)
	}
	if err := f.fillAirport(ctx, sess, locatorDestinationField, req.Destination); err != nil {
		return fmt.Errorf("destination field: %w", err)
	}
	if err := f.fillDates(ctx, sess, req.Depart, req.Return); err != nil {
		return fmt.Errorf("date fields: %w", err)
	}

	submit, err := sess.Find(ctx, locatorSearchButton, f.cfg.WaitTimeout)
	if err != nil {
		return fmt.Errorf("search button: %w", err)
	}
	if err := submit.Click(ctx); err != nil {
		return fmt.Errorf("search button: %w", err)
	}

	if _, err := sess.Find(ctx, locatorResultsList, f.cfg.WaitTimeout); err != nil {
		return fmt.Errorf("results list: %w", err)
	}

	res.StopsFilter = f.applyStopsFilter(ctx, sess)
	if req.MaxBudgetUSD > 0 {
		res.PriceFilter = f.applyPriceFilter(ctx, sess, req.MaxBudgetUSD)
	}
	if req.Times != nil {
		res.TimesFilter = f.applyTimesFilter(ctx, sess, *req.Times)
	}

	return nil
}

// fillAirport types an airport code into a form field and picks the first
// suggestion from the dropdown.
func (f *Finder) fillAirport(ctx context.Context, sess browser.Session, loc browser.Locator, code string) error {
	field, err := sess.Find(ctx, loc, f.cfg.WaitTimeout)
	if err != nil {
		return err
	}
	if err := field.Click(ctx); err != nil {
		return err
	}
	if err := field.Type(ctx, code); err != nil {
		return err
	}
	f.settle()

	suggestion, err := sess.Find(ctx, locatorSuggestion, f.cfg.WaitTimeout)
	if err != nil {
		return fmt.Errorf("suggestion for %q: %w", code, err)
	}
	if err := suggestion.Click(ctx); err != nil {
		return err
	}
	f.settle()
	return nil
}

func (f *Finder) fillDates(ctx context.Context, sess browser.Session, depart, ret time.Time) error {
	fields := []struct {
		loc  browser.Locator
		date time.Time
	}{
		{locatorDepartureField, depart},
		{locatorReturnField, ret},
	}
	for _, fd := range fields {
		field, err := sess.Find(ctx, fd.loc, f.cfg.WaitTimeout)
		if err != nil {
			return err
		}
		if err := field.Type(ctx, fd.date.Format("2006-01-02")); err != nil {
			return err
		}
		if err := field.SendKey(ctx, browser.KeyEnter); err != nil {
			return err
		}
		f.settle()
	}
	return nil
}

// applyStopsFilter restricts results to nonstop flights. A failure leaves the
// unfiltered results in place and only marks this filter's status.
func (f *Finder) applyStopsFilter(ctx context.Context, sess browser.Session) Status {
	button, err := sess.Find(ctx, locatorStopsButton, f.cfg.WaitTimeout)
	if err != nil {
		return f.filterFailed("stops", err)
	}
	if err := button.Click(ctx); err != nil {
		return f.filterFailed("stops", err)
	}
	f.settle()

	nonstop, err := sess.Find(ctx, locatorNonstopOption, f.cfg.WaitTimeout)
	if err != nil {
		return f.filterFailed("stops", err)
	}
	if err := nonstop.Click(ctx); err != nil {
		return f.filterFailed("stops", err)
	}
	f.settle()

	f.dismissFilter(ctx, sess)
	return StatusOK
}

// applyPriceFilter drags the maximum-price slider to the traveler's budget.
func (f *Finder) applyPriceFilter(ctx context.Context, sess browser.Session, budget float64) Status {
	button, err := sess.Find(ctx, locatorPriceButton, f.cfg.WaitTimeout)
	if err != nil {
		return f.filterFailed("price", err)
	}
	if err := button.Click(ctx); err != nil {
		return f.filterFailed("price", err)
	}
	f.settle()

	status := f.dragSliderTo(ctx, sess, locatorPriceSlider, budget)
	f.dismissFilter(ctx, sess)
	return status
}

// applyTimesFilter drags the departure and arrival time sliders. Both sliders
// are attempted; the worse of the two statuses is reported.
func (f *Finder) applyTimesFilter(ctx context.Context, sess browser.Session, w TimeWindow) Status {
	button, err := sess.Find(ctx, locatorTimesButton, f.cfg.WaitTimeout)
	if err != nil {
		return f.filterFailed("times", err)
	}
	if err := button.Click(ctx); err != nil {
		return f.filterFailed("times", err)
	}
	f.settle()

	depart := f.dragSliderTo(ctx, sess, locatorDepartSlider, float64(w.EarliestDepartureHour))
	arrive := f.dragSliderTo(ctx, sess, locatorArriveSlider, float64(w.LatestArrivalHour))
	f.dismissFilter(ctx, sess)

	if depart.Failed() {
		return depart
	}
	return arrive
}

// dragSliderTo reads the slider's declared range, computes the pixel offset to
// reach target, performs one drag and verifies the landed value. An off-target
// landing is flagged as not applied; there is no second attempt.
func (f *Finder) dragSliderTo(ctx context.Context, sess browser.Session, loc browser.Locator, target float64) Status {
	slider, err := sess.Find(ctx, loc, f.cfg.WaitTimeout)
	if err != nil {
		return f.filterFailed(string(loc), err)
	}

	spec, err := sliderSpecOf(ctx, slider)
	if err != nil {
		log.Printf("Warning: could not read slider %q: %v", loc, err)
		return StatusNotApplied
	}

	width, err := slider.Width(ctx)
	if err != nil {
		log.Printf("Warning: could not measure slider %q: %v", loc, err)
		return StatusNotApplied
	}

	offset, err := spec.DragOffset(target, width)
	if err != nil {
		log.Printf("Warning: slider %q is degenerate, leaving it alone: %v", loc, err)
		return StatusNotApplied
	}
	if offset == 0 {
		return StatusOK
	}

	if err := slider.DragByOffset(ctx, offset, 0); err != nil {
		return f.filterFailed(string(loc), err)
	}
	f.settle()

	achieved, err := readSliderValue(ctx, slider)
	if err != nil {
		log.Printf("Warning: could not re-read slider %q after drag: %v", loc, err)
		return StatusNotApplied
	}
	if !spec.WithinTolerance(achieved, spec.Clamp(target)) {
		log.Printf("Warning: slider %q landed at %v, wanted %v. Not re-attempting.",
			loc, achieved, spec.Clamp(target))
		return StatusNotApplied
	}
	return StatusOK
}

// dismissFilter closes an open filter panel. Best effort: a panel that will
// not close does not change any filter's status.
func (f *Finder) dismissFilter(ctx context.Context, sess browser.Session) {
	dismiss, err := sess.Find(ctx, locatorFilterDismiss, f.cfg.WaitTimeout/5)
	if err != nil {
		return
	}
	if err := dismiss.Click(ctx); err != nil {
		log.Printf("Warning: failed to dismiss filter panel: %v", err)
	}
	f.settle()
}

func (f *Finder) filterFailed(step string, err error) Status {
	log.Printf("Warning: %s filter failed: %v", step, err)
	return statusFor(err)
}

func (f *Finder) settle() {
	time.Sleep(f.cfg.Settle)
}

func statusFor(err error) Status {
	switch {
	case errors.Is(err, browser.ErrTimeout):
		return StatusTimeout
	case errors.Is(err, browser.ErrNotFound):
		return StatusNotFound
	default:
		return StatusAutomationError
	}
}

// sliderSpecOf reads the slider's declared range from its ARIA attributes.
// Step comes from data-step and defaults to 1 when absent.
func sliderSpecOf(ctx context.Context, el browser.Element) (SliderSpec, error) {
	var spec SliderSpec
	var err error

	if spec.Min, err = floatAttr(ctx, el, "aria-valuemin"); err != nil {
		return spec, err
	}
	if spec.Max, err = floatAttr(ctx, el, "aria-valuemax"); err != nil {
		return spec, err
	}
	if spec.Current, err = floatAttr(ctx, el, "aria-valuenow"); err != nil {
		return spec, err
	}

	spec.Step = 1
	if raw, _ := el.Attr(ctx, "data-step"); raw != "" {
		if spec.Step, err = strconv.ParseFloat(raw, 64); err != nil {
			return spec, fmt.Errorf("bad data-step %q: %w", raw, err)
		}
	}
	return spec, nil
}

func readSliderValue(ctx context.Context, el browser.Element) (float64, error) {
	return floatAttr(ctx, el, "aria-valuenow")
}

func floatAttr(ctx context.Context, el browser.Element, name string) (float64, error) {
	raw, err := el.Attr(ctx, name)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, fmt.Errorf("attribute %s is missing", name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q: %w", name, raw, err)
	}
	return value, nil
}

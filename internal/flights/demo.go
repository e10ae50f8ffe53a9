package flights

import (
	"context"
	"math"
	"strconv"

	"github.com/takagi3/weekender/internal/browser"
)

// demoPage is a canned search page matching the locators above. It backs the
// --dry-run mode and the finder tests.
const demoPage = `<html><body>
<button aria-label="Accept all">Accept all</button>
<input aria-label="Where from?" value="">
<input aria-label="Where to?" value="">
<ul role="listbox"><li role="option">First suggestion</li></ul>
<input aria-label="Departure" value="">
<input aria-label="Return" value="">
<button aria-label="Search">Search</button>
<ul role="list" class="flight-results"><li>result placeholder</li></ul>
<button aria-label="Stops">Stops</button>
<input type="checkbox" aria-label="Nonstop only">
<button aria-label="Price">Price</button>
<div role="slider" aria-label="Maximum price"
     aria-valuemin="0" aria-valuemax="1000" aria-valuenow="1000"
     data-step="50" data-track-width="500"></div>
<button aria-label="Times">Times</button>
<div role="slider" aria-label="Earliest departure"
     aria-valuemin="0" aria-valuemax="23" aria-valuenow="0"
     data-step="1" data-track-width="276"></div>
<div role="slider" aria-label="Latest arrival"
     aria-valuemin="0" aria-valuemax="23" aria-valuenow="23"
     data-step="1" data-track-width="276"></div>
<button aria-label="Close">Close</button>
</body></html>`

// DemoPages returns the canned page keyed by the default search URL.
func DemoPages() map[string]string {
	return map[string]string{DefaultBaseURL: demoPage}
}

// NewDemoSession returns a static session over DemoPages whose sliders follow
// drags: the landed value is the dragged distance converted back through the
// slider's declared range, snapped to the nearest step.
func NewDemoSession() *browser.StaticSession {
	s := browser.NewStaticSession(DemoPages())
	s.OnDrag = func(loc browser.Locator, dx, _ int) {
		ctx := context.Background()
		el, err := s.Find(ctx, loc, 0)
		if err != nil {
			return
		}
		spec, err := sliderSpecOf(ctx, el)
		if err != nil {
			return
		}
		width, err := el.Width(ctx)
		if err != nil || width <= 0 {
			return
		}
		steps := (spec.Max - spec.Min) / spec.Step
		delta := float64(dx) / (width / steps) * spec.Step
		achieved := spec.Clamp(spec.Current + math.Round(delta/spec.Step)*spec.Step)
		s.SetAttr(loc, "aria-valuenow", strconv.FormatFloat(achieved, 'f', -1, 64))
	}
	return s
}

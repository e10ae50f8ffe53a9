package flights

import "github.com/takagi3/weekender/internal/browser"

// CSS locators for the flight search page. The page is a third-party UI, so
// these are the single place to touch when it changes.
const (
	locatorConsentAccept browser.Locator = `button[aria-label="Accept all"]`

	// Search form
	locatorOriginField      browser.Locator = `input[aria-label="Where from?"]`
	locatorDestinationField browser.Locator = `input[aria-label="Where to?"]`
	locatorSuggestion       browser.Locator = `li[role="option"]`
	locatorDepartureField   browser.Locator = `input[aria-label="Departure"]`
	locatorReturnField      browser.Locator = `input[aria-label="Return"]`
	locatorSearchButton     browser.Locator = `button[aria-label="Search"]`

	// Results and filters
	locatorResultsList   browser.Locator = `ul[role="list"].flight-results`
	locatorStopsButton   browser.Locator = `button[aria-label="Stops"]`
	locatorNonstopOption browser.Locator = `input[aria-label="Nonstop only"]`
	locatorPriceButton   browser.Locator = `button[aria-label="Price"]`
	locatorPriceSlider   browser.Locator = `div[role="slider"][aria-label="Maximum price"]`
	locatorTimesButton   browser.Locator = `button[aria-label="Times"]`
	locatorDepartSlider  browser.Locator = `div[role="slider"][aria-label="Earliest departure"]`
	locatorArriveSlider  browser.Locator = `div[role="slider"][aria-label="Latest arrival"]`
	locatorFilterDismiss browser.Locator = `button[aria-label="Close"]`
)

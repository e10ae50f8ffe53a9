// Package flights runs the browser-driven flight search. It fills the search
// form, submits it and applies result filters, reporting a status per search
// and per filter. No fare data is extracted yet; the status and message pair
// is the entire result surface.
package flights

// Status classifies the outcome of a search or of a single filter step.
type Status string

const (
	// StatusOK means the step completed.
	StatusOK Status = "ok"
	// StatusMissingInputs means origin or destination was absent; nothing ran.
	StatusMissingInputs Status = "missing_inputs"
	// StatusDriverInit means the automation session could not be started.
	StatusDriverInit Status = "driver_init_failure"
	// StatusTimeout means a precondition element never appeared in time.
	StatusTimeout Status = "timeout"
	// StatusNotFound means a locator matched nothing on the page.
	StatusNotFound Status = "element_not_found"
	// StatusAutomationError covers any other session failure.
	StatusAutomationError Status = "automation_error"
	// StatusSkipped means the step was not attempted (filter without input).
	StatusSkipped Status = "skipped"
	// StatusNotApplied means a slider drag landed a full step or more away
	// from its target. The drag is never re-attempted.
	StatusNotApplied Status = "not_applied"
)

// Failed reports whether the status represents a failed step.
func (s Status) Failed() bool {
	switch s {
	case StatusOK, StatusSkipped:
		return false
	}
	return true
}

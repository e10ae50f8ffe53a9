package flights

import (
	"fmt"
	"math"
)

// SliderSpec describes a range-valued control as declared by the page.
type SliderSpec struct {
	Min     float64
	Max     float64
	Step    float64
	Current float64
}

// Clamp returns target limited to the slider's [Min, Max] range.
func (s SliderSpec) Clamp(target float64) float64 {
	if target < s.Min {
		return s.Min
	}
	if target > s.Max {
		return s.Max
	}
	return target
}

// DragOffset returns the horizontal pixel offset that moves the control from
// its current value to target on a track of trackWidth pixels. The target is
// clamped to the declared range first; a zero offset means no drag is needed.
// A degenerate slider (step <= 0 or an empty range) is an error, which the
// caller treats as a no-op with a warning.
func (s SliderSpec) DragOffset(target, trackWidth float64) (int, error) {
	if s.Step <= 0 {
		return 0, fmt.Errorf("slider step must be positive, got %v", s.Step)
	}
	if s.Max <= s.Min {
		return 0, fmt.Errorf("slider range [%v, %v] is empty", s.Min, s.Max)
	}
	if trackWidth <= 0 {
		return 0, fmt.Errorf("slider track width must be positive, got %v", trackWidth)
	}

	target = s.Clamp(target)
	if target == s.Current {
		return 0, nil
	}

	steps := (s.Max - s.Min) / s.Step
	pixelsPerStep := trackWidth / steps
	offset := math.Ceil((target - s.Current) / s.Step * pixelsPerStep)
	return int(offset), nil
}

// WithinTolerance reports whether achieved is within one step of target.
// An off-target landing is flagged, never re-dragged.
func (s SliderSpec) WithinTolerance(achieved, target float64) bool {
	return math.Abs(achieved-target) < s.Step
}

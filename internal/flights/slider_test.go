package flights

import "testing"

func TestDragOffset(t *testing.T) {
	tests := []struct {
		name       string
		spec       SliderSpec
		target     float64
		trackWidth float64
		want       int
	}{
		{
			name:       "forward drag",
			spec:       SliderSpec{Min: 0, Max: 1000, Step: 50, Current: 0},
			target:     300,
			trackWidth: 500,
			want:       150, // ceil((300/50) * (500/20))
		},
		{
			name:       "backward drag",
			spec:       SliderSpec{Min: 0, Max: 1000, Step: 50, Current: 1000},
			target:     500,
			trackWidth: 500,
			want:       -250,
		},
		{
			name:       "target equals current",
			spec:       SliderSpec{Min: 0, Max: 1000, Step: 50, Current: 300},
			target:     300,
			trackWidth: 500,
			want:       0,
		},
		{
			name:       "target above range clamps to max",
			spec:       SliderSpec{Min: 0, Max: 1000, Step: 50, Current: 0},
			target:     5000,
			trackWidth: 500,
			want:       500,
		},
		{
			name:       "target below range clamps to min",
			spec:       SliderSpec{Min: 100, Max: 1000, Step: 50, Current: 100},
			target:     -50,
			trackWidth: 500,
			want:       0,
		},
		{
			name:       "fractional offset rounds up",
			spec:       SliderSpec{Min: 0, Max: 23, Step: 1, Current: 0},
			target:     8,
			trackWidth: 300,
			want:       105, // ceil(8 * 300/23) = ceil(104.34...)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.DragOffset(tt.target, tt.trackWidth)
			if err != nil {
				t.Fatalf("DragOffset() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DragOffset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDragOffsetDegenerateSliders(t *testing.T) {
	tests := []struct {
		name string
		spec SliderSpec
	}{
		{name: "zero step", spec: SliderSpec{Min: 0, Max: 100, Step: 0, Current: 0}},
		{name: "negative step", spec: SliderSpec{Min: 0, Max: 100, Step: -5, Current: 0}},
		{name: "empty range", spec: SliderSpec{Min: 100, Max: 100, Step: 10, Current: 100}},
		{name: "inverted range", spec: SliderSpec{Min: 200, Max: 100, Step: 10, Current: 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.spec.DragOffset(50, 500); err == nil {
				t.Error("DragOffset() should error for a degenerate slider")
			}
		})
	}
}

func TestDragOffsetZeroTrackWidth(t *testing.T) {
	spec := SliderSpec{Min: 0, Max: 100, Step: 10, Current: 0}
	if _, err := spec.DragOffset(50, 0); err == nil {
		t.Error("DragOffset() should error for zero track width")
	}
}

func TestWithinTolerance(t *testing.T) {
	spec := SliderSpec{Min: 0, Max: 1000, Step: 50}

	if !spec.WithinTolerance(310, 300) {
		t.Error("310 should be within one step of 300")
	}
	if spec.WithinTolerance(350, 300) {
		t.Error("a full step away should be flagged")
	}
	if !spec.WithinTolerance(300, 300) {
		t.Error("exact landing should be within tolerance")
	}
}

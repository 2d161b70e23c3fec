package ui2d

import "testing"

func TestSliderValueAt(t *testing.T) {
	tests := []struct {
		name             string
		mouseX, x, width float32
		min, max, step   float32
		want             float32
	}{
		{"left edge", 100, 100, 200, -360, 360, 1, -360},
		{"right edge", 300, 100, 200, -360, 360, 1, 360},
		{"middle", 200, 100, 200, -360, 360, 1, 0},
		{"left of track clamps", 0, 100, 200, -200, 200, 1, -200},
		{"right of track clamps", 900, 100, 200, -200, 200, 1, 200},
		{"snaps to step", 101, 100, 200, -200, 200, 1, -198},
		{"coarse step", 160, 100, 200, 0, 100, 25, 25},
		{"no step", 150, 100, 200, 0, 1, 0, 0.25},
		{"empty range", 150, 100, 200, 5, 5, 1, 5},
		{"zero width", 150, 100, 0, -1, 1, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SliderValueAt(tt.mouseX, tt.x, tt.width, tt.min, tt.max, tt.step)
			if d := got - tt.want; d > 1e-4 || d < -1e-4 {
				t.Errorf("SliderValueAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSliderFraction(t *testing.T) {
	tests := []struct {
		value, min, max, want float32
	}{
		{0, -360, 360, 0.5},
		{-360, -360, 360, 0},
		{360, -360, 360, 1},
		{500, -200, 200, 1},
		{-500, -200, 200, 0},
		{3, 3, 3, 0},
	}
	for _, tt := range tests {
		if got := SliderFraction(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("SliderFraction(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestFormatSliderValue(t *testing.T) {
	if got := formatSliderValue(-45, 1); got != "-45" {
		t.Errorf("integer step: got %q", got)
	}
	if got := formatSliderValue(0.5, 0.1); got != "0.50" {
		t.Errorf("fractional step: got %q", got)
	}
}

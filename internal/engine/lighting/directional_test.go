package lighting

import (
	"testing"

	"github.com/Faultbox/dirlight/pkg/math"
)

func TestReverseIsUnit(t *testing.T) {
	l := NewDirectional([3]float32{0.5, 0.7, 1})
	r := l.Reverse()
	if n := r.Length(); n < 0.999 || n > 1.001 {
		t.Errorf("Reverse().Length() = %v, want 1", n)
	}
	if r.X <= 0 || r.Y <= 0 || r.Z <= 0 {
		t.Errorf("Reverse() = %v changed direction", r)
	}
}

func TestIntensity(t *testing.T) {
	l := NewDirectional([3]float32{0, 0, 1})

	tests := []struct {
		name   string
		normal math.Vec3
		want   float32
	}{
		{"facing light", math.Vec3{Z: 1}, 1},
		{"facing away", math.Vec3{Z: -1}, -1},
		{"edge on", math.Vec3{X: 1}, 0},
		{"unnormalized", math.Vec3{Z: 5}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Intensity(tt.normal)
			if d := got - tt.want; d > 1e-5 || d < -1e-5 {
				t.Errorf("Intensity(%v) = %v, want %v", tt.normal, got, tt.want)
			}
		})
	}
}

func TestFromAngles(t *testing.T) {
	up := FromAngles(0, 90).Reverse()
	if up.Y < 0.999 {
		t.Errorf("elevation 90 = %v, want straight up", up)
	}

	ahead := FromAngles(0, 0).Reverse()
	if ahead.Z < 0.999 {
		t.Errorf("azimuth 0 elevation 0 = %v, want +Z", ahead)
	}

	right := FromAngles(90, 0).Reverse()
	if right.X < 0.999 {
		t.Errorf("azimuth 90 = %v, want +X", right)
	}
}

func TestShade(t *testing.T) {
	l := NewDirectional([3]float32{0, 0, 1})
	color := [4]float32{1, 0.1, 0.5, 1}

	tests := []struct {
		name   string
		normal math.Vec3
		want   [4]float32
	}{
		{"facing light", math.Vec3{Z: 1}, [4]float32{1, 0.1, 0.5, 1}},
		{"edge on", math.Vec3{Y: 1}, [4]float32{0, 0, 0, 1}},
		{"facing away", math.Vec3{Z: -1}, [4]float32{-1, -0.1, -0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Shade(color, tt.normal)
			for i := range got {
				if d := got[i] - tt.want[i]; d > 1e-5 || d < -1e-5 {
					t.Fatalf("Shade(%v) = %v, want %v", tt.normal, got, tt.want)
				}
			}
		})
	}
}

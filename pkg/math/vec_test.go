package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []Vec3{
		{3, 4, 0},
		{0.5, 0.7, 1},
		{-100, 150, 200},
		{1e-3, 0, 0},
	}
	for _, v := range tests {
		l := v.Normalize().Length()
		if l < 0.999 || l > 1.001 {
			t.Errorf("Vec3%v.Normalize().Length() = %v, want ~1", v, l)
		}
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalized to %v, want zero", got)
	}
}

func TestVec3Dot(t *testing.T) {
	got := Vec3{1, 2, 3}.Dot(Vec3{4, -5, 6})
	if got != 12 {
		t.Errorf("Vec3.Dot() = %v, want 12", got)
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); abs(got-math.Pi) > 1e-6 {
		t.Errorf("DegToRad(180) = %v, want pi", got)
	}
	if got := RadToDeg(DegToRad(-360)); abs(got+360) > 1e-3 {
		t.Errorf("round trip of -360 degrees = %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{-200, -200, 200, -200},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestVec3AddSub(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 0.5}

	if got := a.Add(b); got != (Vec3{5, -3, 3.5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("Add then Sub = %v, want %v", got, a)
	}
}

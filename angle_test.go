package diffgeom

import (
	"math"
	"testing"
)

func TestAngleNormalize(t *testing.T) {
	tests := []struct {
		in   Angle
		want Angle
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
	}
	for _, tt := range tests {
		got := tt.in.Normalize()
		if math.Abs(float64(got-tt.want)) > 1e-12 {
			t.Errorf("%v.Normalize() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngleEquivalent(t *testing.T) {
	if !Angle(math.Pi).Equivalent(-math.Pi, 1e-12) {
		t.Error("π and -π should be equivalent")
	}
	if !Angle(0.1).Equivalent(0.1+4*math.Pi, 1e-9) {
		t.Error("angles two turns apart should be equivalent")
	}
	if Angle(0.1).Equivalent(0.2, 1e-3) {
		t.Error("0.1 and 0.2 should not be equivalent")
	}
}

func TestAngleDegrees(t *testing.T) {
	diff(t, AngleFromDegrees(90), Angle(math.Pi/2), approx)
	diff(t, Angle(math.Pi).Degrees(), 180.0, approx)
	if r := Angle(1.5).Radians(); r != 1.5 {
		t.Errorf("got %v radians, want 1.5", r)
	}
}

package diffgeom

import (
	"math"
	"testing"
)

func TestPolarRoundTrip(t *testing.T) {
	p := Pt(2, 2).Polar()
	diff(t, p.Radius, 2.828427, approx)
	diff(t, p.Azimuth, Angle(math.Pi/4), approx)
	diff(t, p.Cartesian(), Pt(2, 2), approx)

	for _, pt := range []Point{
		Pt(1, 0), Pt(0, 1), Pt(-1, 0), Pt(0, -1),
		Pt(-3, 4), Pt(3, -4), Pt(-0.5, -7), Pt(1e3, 1e-3),
	} {
		got := pt.Polar().Cartesian()
		diff(t, pt, got, approx)
	}
}

func TestPolarAzimuthRange(t *testing.T) {
	if az := Pt(-1, 0).Polar().Azimuth; az != Angle(math.Pi) {
		t.Errorf("got azimuth %v, want π", az)
	}
	if az := Pt(-1, math.Copysign(0, -1)).Polar().Azimuth; az != Angle(math.Pi) {
		t.Errorf("got azimuth %v for negative zero y, want π", az)
	}
	if az := Pt(0, -2).Polar().Azimuth; az != Angle(-math.Pi/2) {
		t.Errorf("got azimuth %v, want -π/2", az)
	}
}

func TestPolarOrigin(t *testing.T) {
	diff(t, PolarPoint{}, Pt(0, 0).Polar())
	diff(t, Point{}, Polar(0, Angle(1.2)).Cartesian())
}

func TestConverterInterface(t *testing.T) {
	var conv Converter = TrigConverter{}
	diff(t, Pt(0, 3), conv.ToCartesian(Polar(3, Angle(math.Pi/2))), approx)
	diff(t, Polar(5, Angle(math.Atan2(4, 3))), conv.ToPolar(Pt(3, 4)), approx)
}

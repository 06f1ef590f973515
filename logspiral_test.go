package diffgeom

import (
	"math"
	"testing"
)

var spirals = []LogSpiral{
	{A: 1, B: 1},
	{A: 2, B: 0.3},
	{A: 0.5, B: -0.75},
	{A: 3, B: 0},
}

var angles = []float64{-2, -0.5, 0, 0.7, math.Pi / 2, 2.4}

func TestLogSpiralDerivatives(t *testing.T) {
	for _, s := range spirals {
		p := NewLogSpiral(s)
		checkDerivatives(t, p.X(), angles)
		checkDerivatives(t, p.Y(), angles)

		pp := NewLogSpiralPolar(s)
		checkDerivatives(t, pp.Radius(), angles)
		checkDerivatives(t, pp.Azimuth(), angles)
	}
}

func TestLogSpiralUnitGrowth(t *testing.T) {
	// With B = 1, x′ = e^θ (cos θ − sin θ).
	p := NewLogSpiral(LogSpiral{A: 1, B: 1})
	for _, th := range angles {
		want := math.Exp(th) * (math.Cos(th) - math.Sin(th))
		diff(t, want, p.X().PrimeAt(th), approx)
	}
}

func TestLogSpiralEval(t *testing.T) {
	s := LogSpiral{A: 2, B: 0.3}
	p := NewLogSpiral(s)
	pp := NewLogSpiralPolar(s)
	for _, th := range angles {
		want := s.Eval(th)
		diff(t, want, p.Eval(th), approx)
		diff(t, want, pp.Eval(th), approx)
		diff(t, s.Radius(th), p.Eval(th).Distance(Point{}), approx)
	}
	diff(t, Pt(2, 0), p.Eval(0), approx)
}

func TestLogSpiralCurvature(t *testing.T) {
	for _, s := range spirals {
		p := NewLogSpiral(s)
		pp := NewLogSpiralPolar(s)
		for _, th := range angles {
			want := s.Curvature(th)

			got, err := p.Curvature(th)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, want, got, approx)

			got, err = pp.Curvature(th)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, want, got, approx)
		}
	}
}

func TestLogSpiralSlope(t *testing.T) {
	s := LogSpiral{A: 2, B: 0.3}
	p := NewLogSpiral(s)
	pp := NewLogSpiralPolar(s)
	for _, th := range angles {
		want, err := p.Slope(th)
		if err != nil {
			t.Fatal(err)
		}
		got, err := pp.Slope(th)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got, approx)
	}
}

func TestLogSpiralScaled(t *testing.T) {
	s := LogSpiral{A: 1, B: 0.2}
	p := NewLogSpiral(s)
	scaled := p.ScaledBy(3)
	for _, th := range angles {
		diff(t, p.Eval(th).Lerp(Point{}, -2), scaled.Eval(th), approx)
		// Uniform scaling divides curvature by the scale factor.
		want, err := p.Curvature(th)
		if err != nil {
			t.Fatal(err)
		}
		got, err := scaled.Curvature(th)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want/3, got, approx)
	}
	if f := scaled.Y().Clone().Curve().Family(); f != LogSpiralFamily {
		t.Errorf("got family %v, want %v", f, LogSpiralFamily)
	}
}

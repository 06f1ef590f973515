package diffgeom

import "math"

// LogSpiral is the logarithmic spiral r(θ) = A·e^(B·θ), where A is the radius at
// θ = 0 and B is the rate of change of the logarithm of the radius per radian.
// A spiral with B = 0 is a circle.
type LogSpiral struct {
	A float64
	B float64
}

var _ Definition = LogSpiral{}

func (s LogSpiral) Family() Family { return LogSpiralFamily }

// Radius returns the spiral's radius at angle th.
func (s LogSpiral) Radius(th float64) float64 {
	return s.A * math.Exp(s.B*th)
}

// Eval returns the Cartesian point at angle th.
func (s LogSpiral) Eval(th float64) Point {
	return Polar(s.Radius(th), Angle(th)).Cartesian()
}

// Curvature returns the spiral's curvature at angle th, which is
// 1 / (r·sqrt(1 + B²)).
func (s LogSpiral) Curvature(th float64) float64 {
	return 1 / (s.Radius(th) * math.Sqrt(1+s.B*s.B))
}

// NewLogSpiral returns the spiral in Cartesian parametric form, parametrized by
// the angle θ.
//
// With r = A·e^(Bθ), the product rule gives
//
//	x  = r cos θ
//	x′ = r (B cos θ − sin θ)
//	x″ = r ((B²−1) cos θ − 2B sin θ)
//	y  = r sin θ
//	y′ = r (B sin θ + cos θ)
//	y″ = r ((B²−1) sin θ + 2B cos θ)
func NewLogSpiral(s LogSpiral) Parametric {
	b := s.B
	b2 := b*b - 1
	x := NewComponent[float64](s,
		func(th float64) float64 {
			return s.Radius(th) * math.Cos(th)
		},
		func(th float64) float64 {
			sin, cos := math.Sincos(th)
			return s.Radius(th) * (b*cos - sin)
		},
		func(th float64) float64 {
			sin, cos := math.Sincos(th)
			return s.Radius(th) * (b2*cos - 2*b*sin)
		},
	)
	y := NewComponent[float64](s,
		func(th float64) float64 {
			return s.Radius(th) * math.Sin(th)
		},
		func(th float64) float64 {
			sin, cos := math.Sincos(th)
			return s.Radius(th) * (b*sin + cos)
		},
		func(th float64) float64 {
			sin, cos := math.Sincos(th)
			return s.Radius(th) * (b2*sin + 2*b*cos)
		},
	)
	return NewParametric(s, x, y)
}

// NewLogSpiralPolar returns the spiral in polar form, with r(θ) = A·e^(Bθ) and
// the azimuth equal to the parameter.
func NewLogSpiralPolar(s LogSpiral) PolarParametric {
	b := s.B
	r := NewComponent[float64](s,
		s.Radius,
		func(th float64) float64 { return b * s.Radius(th) },
		func(th float64) float64 { return b * b * s.Radius(th) },
	)
	az := NewComponent[Angle](s,
		func(th float64) float64 { return th },
		func(float64) float64 { return 1 },
		func(float64) float64 { return 0 },
	)
	return NewPolarParametric(s, r, az)
}

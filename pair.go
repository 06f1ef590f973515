package diffgeom

import (
	"fmt"
	"math"

	"honnef.co/go/diffgeom/formula"
)

// Pair binds two components to the curve definition they were built from.
// Both components are meant to be evaluated at the same parameter value.
type Pair[A, B ~float64] struct {
	curve  Definition
	names  [2]string
	first  Differentiable[A]
	second Differentiable[B]
}

// NewPair returns a pair of the named components first and second.
func NewPair[A, B ~float64](curve Definition, names [2]string, first Differentiable[A], second Differentiable[B]) Pair[A, B] {
	return Pair[A, B]{
		curve:  curve,
		names:  names,
		first:  first,
		second: second,
	}
}

func (p Pair[A, B]) Curve() Definition         { return p.curve }
func (p Pair[A, B]) Names() [2]string          { return p.names }
func (p Pair[A, B]) First() Differentiable[A]  { return p.first }
func (p Pair[A, B]) Second() Differentiable[B] { return p.second }

// ValueAt evaluates both components at t.
func (p Pair[A, B]) ValueAt(t float64) (A, B) {
	return p.first.ValueAt(t), p.second.ValueAt(t)
}

// PrimeAt evaluates the first derivatives of both components at t.
func (p Pair[A, B]) PrimeAt(t float64) (A, B) {
	return p.first.PrimeAt(t), p.second.PrimeAt(t)
}

// PrimeDoubleAt evaluates the second derivatives of both components at t.
func (p Pair[A, B]) PrimeDoubleAt(t float64) (A, B) {
	return p.first.PrimeDoubleAt(t), p.second.PrimeDoubleAt(t)
}

// Clone returns a pair of cloned components, bound to the same definition.
func (p Pair[A, B]) Clone() Pair[A, B] {
	return Pair[A, B]{
		curve:  p.curve,
		names:  p.names,
		first:  p.first.Clone(),
		second: p.second.Clone(),
	}
}

// ScaledBy returns a pair whose components are each scaled by k.
func (p Pair[A, B]) ScaledBy(k float64) Pair[A, B] {
	return Pair[A, B]{
		curve:  p.curve,
		names:  p.names,
		first:  p.first.ScaledBy(k),
		second: p.second.ScaledBy(k),
	}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("%v(%s, %s)", familyOf(p.curve), p.names[0], p.names[1])
}

// Parametric is a curve (x(t), y(t)) in the Cartesian plane.
type Parametric struct {
	Pair[float64, float64]
}

// NewParametric returns the parametric curve with the components x and y.
func NewParametric(curve Definition, x, y Differentiable[float64]) Parametric {
	return Parametric{NewPair(curve, [2]string{"x", "y"}, x, y)}
}

func (p Parametric) X() Differentiable[float64] { return p.first }
func (p Parametric) Y() Differentiable[float64] { return p.second }

// Eval returns the point at parameter t.
func (p Parametric) Eval(t float64) Point {
	return Pt(p.ValueAt(t))
}

// Tangent returns the first derivative ⟨x′(t), y′(t)⟩.
func (p Parametric) Tangent(t float64) Vec2 {
	return Vec(p.PrimeAt(t))
}

// Acceleration returns the second derivative ⟨x″(t), y″(t)⟩.
func (p Parametric) Acceleration(t float64) Vec2 {
	return Vec(p.PrimeDoubleAt(t))
}

// Slope returns dy/dx at parameter t. It returns a
// [*formula.DegenerateInputError] if x′(t) = 0.
func (p Parametric) Slope(t float64) (float64, error) {
	d := p.Tangent(t)
	m, err := formula.SlopeParametric(d.X, d.Y)
	if err != nil {
		logDegenerate("slope", p.curve, t, err)
		return 0, fmt.Errorf("%v at t=%g: %w", familyOf(p.curve), t, err)
	}
	return m, nil
}

// Curvature returns the signed curvature at parameter t. It is positive where
// the curve turns counterclockwise (in a y-up coordinate system).
func (p Parametric) Curvature(t float64) (float64, error) {
	d := p.Tangent(t)
	dd := p.Acceleration(t)
	k, err := formula.CurvatureParametric(d.X, d.Y, dd.X, dd.Y)
	if err != nil {
		logDegenerate("curvature", p.curve, t, err)
		return 0, fmt.Errorf("%v at t=%g: %w", familyOf(p.curve), t, err)
	}
	return k, nil
}

func (p Parametric) Clone() Parametric {
	return Parametric{p.Pair.Clone()}
}

func (p Parametric) ScaledBy(k float64) Parametric {
	return Parametric{p.Pair.ScaledBy(k)}
}

// PolarParametric is a curve (r(t), θ(t)) in polar coordinates.
type PolarParametric struct {
	Pair[float64, Angle]
	conv Converter
}

// NewPolarParametric returns the polar curve with the components r and th.
// Points are converted with [TrigConverter] unless another converter is set
// with [PolarParametric.WithConverter].
func NewPolarParametric(curve Definition, r Differentiable[float64], th Differentiable[Angle]) PolarParametric {
	return PolarParametric{
		Pair: NewPair(curve, [2]string{"r", "θ"}, r, th),
		conv: TrigConverter{},
	}
}

func (p PolarParametric) Radius() Differentiable[float64] { return p.first }
func (p PolarParametric) Azimuth() Differentiable[Angle]  { return p.second }

// WithConverter returns a copy of p that converts points with conv.
func (p PolarParametric) WithConverter(conv Converter) PolarParametric {
	p.conv = conv
	return p
}

// Polar returns the polar point at parameter t. A negative radius is reflected
// through the origin so that the returned radius is non-negative.
func (p PolarParametric) Polar(t float64) PolarPoint {
	r, th := p.ValueAt(t)
	if r < 0 {
		r = -r
		th += math.Pi
	}
	return Polar(r, th)
}

// Eval returns the Cartesian point at parameter t.
func (p PolarParametric) Eval(t float64) Point {
	return p.conv.ToCartesian(p.Polar(t))
}

// thetaDerivatives converts the derivatives of r with respect to t into
// derivatives with respect to θ.
func (p PolarParametric) thetaDerivatives(op string, t float64) (th, r, dr, ddr float64, err error) {
	r = p.first.ValueAt(t)
	drt := p.first.PrimeAt(t)
	ddrt := p.first.PrimeDoubleAt(t)
	th = float64(p.second.ValueAt(t))
	dth := float64(p.second.PrimeAt(t))
	ddth := float64(p.second.PrimeDoubleAt(t))
	if dth == 0 {
		return 0, 0, 0, 0, &formula.DegenerateInputError{Op: op, Condition: "θ′ = 0"}
	}
	dr = drt / dth
	ddr = (ddrt*dth - drt*ddth) / (dth * dth * dth)
	return th, r, dr, ddr, nil
}

// Slope returns dy/dx at parameter t.
func (p PolarParametric) Slope(t float64) (float64, error) {
	th, r, dr, _, err := p.thetaDerivatives("PolarParametric.Slope", t)
	if err == nil {
		var m float64
		m, err = formula.SlopePolar(th, r, dr)
		if err == nil {
			return m, nil
		}
	}
	logDegenerate("slope", p.curve, t, err)
	return 0, fmt.Errorf("%v at t=%g: %w", familyOf(p.curve), t, err)
}

// Curvature returns the signed curvature at parameter t.
func (p PolarParametric) Curvature(t float64) (float64, error) {
	_, r, dr, ddr, err := p.thetaDerivatives("PolarParametric.Curvature", t)
	if err == nil {
		var k float64
		k, err = formula.CurvaturePolar(r, dr, ddr)
		if err == nil {
			return k, nil
		}
	}
	logDegenerate("curvature", p.curve, t, err)
	return 0, fmt.Errorf("%v at t=%g: %w", familyOf(p.curve), t, err)
}

func (p PolarParametric) Clone() PolarParametric {
	return PolarParametric{Pair: p.Pair.Clone(), conv: p.conv}
}

func (p PolarParametric) ScaledBy(k float64) PolarParametric {
	return PolarParametric{Pair: p.Pair.ScaledBy(k), conv: p.conv}
}

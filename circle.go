package diffgeom

import "math"

// Circle describes the circle family, parametrized by the angle t so that
// t = 0 is the rightmost point and the circle is traced counterclockwise (in a
// y-up coordinate system).
type Circle struct {
	Center Point
	Radius float64
}

var _ Definition = Circle{}

func (c Circle) Family() Family { return CircleFamily }

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

// Eval returns the point at angle t.
func (c Circle) Eval(t float64) Point {
	return c.Center.Translate(VecFromAngle(Angle(t)).Mul(c.Radius))
}

// NewCircle returns the parametric form of the circle c. A circle with zero
// radius has no defined slope or curvature.
func NewCircle(c Circle) Parametric {
	r := c.Radius
	cx, cy := c.Center.Splat()
	x := NewComponent[float64](c,
		func(t float64) float64 { return cx + r*math.Cos(t) },
		func(t float64) float64 { return -r * math.Sin(t) },
		func(t float64) float64 { return -r * math.Cos(t) },
	)
	y := NewComponent[float64](c,
		func(t float64) float64 { return cy + r*math.Sin(t) },
		func(t float64) float64 { return r * math.Cos(t) },
		func(t float64) float64 { return -r * math.Sin(t) },
	)
	return NewParametric(c, x, y)
}

package diffgeom

// Line is a straight line through P0 and P1. As a [Definition] it describes the
// linear family, parametrized so that t = 0 is P0 and t = 1 is P1. The
// parametrization is defined for all real t.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Definition = Line{}

func (l Line) Family() Family { return LinearFamily }

// Length returns the distance between the line's endpoints.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Tangent returns the constant direction P1−P0.
func (l Line) Tangent() Vec2 {
	return l.P1.Sub(l.P0)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// linearComponent returns p0 + t·(p1−p0) and its derivatives.
func linearComponent(l Line, p0, p1 float64) *Component[float64] {
	d := p1 - p0
	return NewComponent[float64](l,
		func(t float64) float64 { return p0 + t*d },
		func(float64) float64 { return d },
		func(float64) float64 { return 0 },
	)
}

// NewLinear returns the parametric form of the line l.
func NewLinear(l Line) Parametric {
	return NewParametric(l,
		linearComponent(l, l.P0.X, l.P1.X),
		linearComponent(l, l.P0.Y, l.P1.Y),
	)
}

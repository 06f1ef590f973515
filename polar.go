package diffgeom

import (
	"fmt"
	"math"
)

// PolarPoint is a position in polar coordinates. Radius is non-negative by
// convention; the azimuth of the origin is 0.
type PolarPoint struct {
	Radius  float64
	Azimuth Angle
}

// Polar returns the polar point (r, θ).
func Polar(r float64, th Angle) PolarPoint {
	return PolarPoint{Radius: r, Azimuth: th}
}

func (p PolarPoint) String() string {
	return fmt.Sprintf("(%g, %v)", p.Radius, p.Azimuth)
}

// Cartesian returns the point in Cartesian coordinates, using [TrigConverter].
func (p PolarPoint) Cartesian() Point {
	return TrigConverter{}.ToCartesian(p)
}

// Converter maps points between Cartesian and polar coordinates.
type Converter interface {
	ToPolar(pt Point) PolarPoint
	ToCartesian(p PolarPoint) Point
}

// TrigConverter is the standard trigonometric [Converter]. Azimuths it
// produces lie in (−π, π].
type TrigConverter struct{}

var _ Converter = TrigConverter{}

func (TrigConverter) ToPolar(pt Point) PolarPoint {
	r := math.Hypot(pt.X, pt.Y)
	if r == 0 {
		return PolarPoint{}
	}
	return PolarPoint{
		Radius:  r,
		Azimuth: Angle(math.Atan2(pt.Y, pt.X)).Normalize(),
	}
}

func (TrigConverter) ToCartesian(p PolarPoint) Point {
	if p.Radius == 0 {
		return Point{}
	}
	sin, cos := math.Sincos(float64(p.Azimuth))
	return Point{
		X: p.Radius * cos,
		Y: p.Radius * sin,
	}
}

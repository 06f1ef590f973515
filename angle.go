package diffgeom

import (
	"fmt"
	"math"
)

// Angle is a direction measured in radians. Positive angles rotate from the
// positive x axis towards the positive y axis.
type Angle float64

// AngleFromDegrees returns the angle of deg degrees.
func AngleFromDegrees(deg float64) Angle {
	return Angle(deg * math.Pi / 180)
}

func (a Angle) Radians() float64 {
	return float64(a)
}

func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Normalize returns the equivalent angle in (−π, π].
func (a Angle) Normalize() Angle {
	r := math.Remainder(float64(a), 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// Equivalent reports whether a and o denote the same direction, up to the
// given tolerance in radians. Angles that differ by full turns are equivalent.
func (a Angle) Equivalent(o Angle, tolerance float64) bool {
	d := (a - o).Normalize()
	return math.Abs(float64(d)) <= tolerance
}

func (a Angle) String() string {
	return fmt.Sprintf("%grad", float64(a))
}

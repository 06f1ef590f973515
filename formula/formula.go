// Package formula computes slope and curvature from raw derivative values.
//
// Four curve representations are supported: parametric curves (x(t), y(t)),
// explicit graphs y = f(x), polar curves r = f(θ), and implicit curves
// F(x, y) = 0. The functions hold no state and may be called concurrently.
//
// Whenever a formula's denominator is zero the quantity is undefined, and the
// function returns a [*DegenerateInputError] instead of an infinity or NaN.
// Callers can use [IsDegenerate] to tell "undefined at this point" apart from a
// numeric answer.
package formula

import (
	"errors"
	"fmt"
	"math"
)

// DegenerateInputError reports a formula whose denominator is zero for the
// given inputs.
type DegenerateInputError struct {
	// Op is the name of the function that failed, e.g. "SlopePolar".
	Op string
	// Condition describes the vanishing denominator, e.g. "x′ = 0".
	Condition string
}

func (err *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: degenerate input: %s", err.Op, err.Condition)
}

// IsDegenerate reports whether err, or any error it wraps, is a
// [*DegenerateInputError].
func IsDegenerate(err error) bool {
	var dErr *DegenerateInputError
	return errors.As(err, &dErr)
}

func degenerate(op, cond string) error {
	return &DegenerateInputError{Op: op, Condition: cond}
}

// pow32 returns s^(3/2). s must be non-zero; the caller guards the degenerate
// case so that it isn't masked by 0^1.5 = 0.
func pow32(s float64) float64 {
	return math.Pow(s, 1.5)
}

// SlopeParametric returns dy/dx of the parametric curve (x(t), y(t)), given
// x′(t) and y′(t).
func SlopeParametric(dx, dy float64) (float64, error) {
	if dx == 0 {
		return 0, degenerate("SlopeParametric", "x′ = 0")
	}
	return dy / dx, nil
}

// CurvatureParametric returns the signed curvature
//
//	(x′y″ − y′x″) / (x′² + y′²)^(3/2)
//
// of the parametric curve (x(t), y(t)).
func CurvatureParametric(dx, dy, ddx, ddy float64) (float64, error) {
	s := dx*dx + dy*dy
	if s == 0 {
		return 0, degenerate("CurvatureParametric", "x′² + y′² = 0")
	}
	return (dx*ddy - dy*ddx) / pow32(s), nil
}

// SlopeGraph returns the slope of the graph y = f(x), which is f′(x) itself.
func SlopeGraph(dy float64) float64 {
	return dy
}

// CurvatureGraph returns the signed curvature y″ / (1 + y′²)^(3/2) of the graph
// y = f(x). The denominator is at least 1, so this never fails.
func CurvatureGraph(dy, ddy float64) float64 {
	return ddy / pow32(1+dy*dy)
}

// SlopePolar returns dy/dx of the polar curve r = f(θ) at the angle theta,
// given r and r′ = dr/dθ.
func SlopePolar(theta, r, dr float64) (float64, error) {
	sin, cos := math.Sincos(theta)
	den := dr*cos - r*sin
	if den == 0 {
		return 0, degenerate("SlopePolar", "r′cosθ − r sinθ = 0")
	}
	return (dr*sin + r*cos) / den, nil
}

// CurvaturePolar returns the signed curvature
//
//	(r² + 2r′² − r·r″) / (r² + r′²)^(3/2)
//
// of the polar curve r = f(θ), where the primes denote derivatives with respect
// to θ.
func CurvaturePolar(r, dr, ddr float64) (float64, error) {
	s := r*r + dr*dr
	if s == 0 {
		return 0, degenerate("CurvaturePolar", "r² + r′² = 0")
	}
	return (r*r + 2*dr*dr - r*ddr) / pow32(s), nil
}

// SlopeImplicit returns dy/dx = −Fx/Fy of the implicit curve F(x, y) = 0.
func SlopeImplicit(fx, fy float64) (float64, error) {
	if fy == 0 {
		return 0, degenerate("SlopeImplicit", "Fy = 0")
	}
	return -fx / fy, nil
}

// CurvatureImplicit returns the signed curvature
//
//	−(Fy²Fxx − 2FxFyFxy + Fx²Fyy) / (Fx² + Fy²)^(3/2)
//
// of the implicit curve F(x, y) = 0.
func CurvatureImplicit(fx, fy, fxx, fxy, fyy float64) (float64, error) {
	s := fx*fx + fy*fy
	if s == 0 {
		return 0, degenerate("CurvatureImplicit", "Fx² + Fy² = 0")
	}
	return -(fy*fy*fxx - 2*fx*fy*fxy + fx*fx*fyy) / pow32(s), nil
}

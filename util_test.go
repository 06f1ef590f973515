package diffgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats and angles, and structs of them, to within 1e-5.
var approx = cmp.Options{
	cmpopts.EquateApprox(0, 1e-5),
	cmp.Comparer(func(a, b Angle) bool {
		return math.Abs(float64(a-b)) <= 1e-5
	}),
}

// centralDiff approximates f′(t) with a central difference.
func centralDiff(f func(float64) float64, t, h float64) float64 {
	return (f(t+h) - f(t-h)) / (2 * h)
}

// checkDerivatives verifies that c's derivatives agree with numeric
// differentiation of the level above them.
func checkDerivatives[V ~float64](t *testing.T, c Differentiable[V], ts []float64) {
	t.Helper()
	const h = 1e-5
	const tolerance = 1e-4
	value := func(t float64) float64 { return float64(c.ValueAt(t)) }
	prime := func(t float64) float64 { return float64(c.PrimeAt(t)) }
	for _, tt := range ts {
		want := centralDiff(value, tt, h)
		got := prime(tt)
		diff(t, want, got, cmpopts.EquateApprox(tolerance, tolerance))

		want = centralDiff(prime, tt, h)
		got = float64(c.PrimeDoubleAt(tt))
		diff(t, want, got, cmpopts.EquateApprox(tolerance, tolerance))
	}
}

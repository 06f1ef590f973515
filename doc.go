// Package diffgeom provides the building blocks for differential geometry of
// plane curves: parametric curves made of differentiable components, and the
// conversions between Cartesian and polar coordinates they rely on.
//
// # Components
//
// A [Differentiable] is a scalar or angular quantity that depends on a curve
// parameter, together with its first and second derivatives. [Component] is the
// implementation shared by all curve families; a family supplies the base
// formula and both derivatives in closed form, and Component takes care of
// scaling and cloning. Components are immutable. [Component.ScaledBy] and
// [Component.Clone] return new components that share no storage with the
// original, so they can be used concurrently without synchronization.
//
// # Curves
//
// A [Definition] holds the geometric parameters of a curve, such as the
// endpoints of a [Line] or the growth rate of a [LogSpiral]. Constructors like
// [NewLinear], [NewLogSpiral] and [NewCircle] turn a definition into a
// [Parametric] curve (x(t), y(t)). [NewLogSpiralPolar] returns a
// [PolarParametric] curve (r(t), θ(t)) instead.
//
// Both kinds of curves can report their slope and signed curvature at a
// parameter value. These use the formulas of the [honnef.co/go/diffgeom/formula]
// package and fail with a [*formula.DegenerateInputError] where the quantity is
// undefined, for example at a cusp.
//
// # Coordinates
//
// [Point] and [Vec2] are Cartesian, [PolarPoint] is polar, and [Angle] is a
// direction in radians. A [Converter] maps between the two coordinate systems;
// [TrigConverter] is the standard implementation.
//
// # Logging
//
// The package logs nothing by default. Use [SetLogger] to receive debug
// records about evaluations at which slope or curvature were undefined.
package diffgeom

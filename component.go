package diffgeom

// Func is a closed-form function of a curve parameter.
type Func func(t float64) float64

// Differentiable describes a scalar or angular quantity that varies with a curve
// parameter, together with its first and second derivatives with respect to that
// parameter.
//
// Implementations are immutable: ScaledBy and Clone return new values and leave
// the receiver untouched.
type Differentiable[V ~float64] interface {
	// ValueAt evaluates the quantity at parameter t.
	ValueAt(t float64) V
	// PrimeAt evaluates the first derivative at parameter t.
	PrimeAt(t float64) V
	// PrimeDoubleAt evaluates the second derivative at parameter t.
	PrimeDoubleAt(t float64) V
	// ScaledBy returns the quantity multiplied by the constant k. By linearity
	// of differentiation, both derivatives are multiplied by k as well.
	ScaledBy(k float64) Differentiable[V]
	// Clone returns an equivalent quantity that shares no storage with the
	// receiver.
	Clone() Differentiable[V]
	// Curve returns the definition whose parameters the formulas close over.
	Curve() Definition
}

// Component is the generic [Differentiable] used by every curve family. A
// component owns the component of its first derivative, which in turn owns the
// second derivative. The chain ends there.
type Component[V ~float64] struct {
	curve Definition
	base  Func
	scale float64
	prime *Component[V]
}

var _ Differentiable[float64] = (*Component[float64])(nil)
var _ Differentiable[Angle] = (*Component[Angle])(nil)

// NewComponent returns a component with unit scale whose value is base(t). prime
// and primeDouble must be the first and second derivatives of base.
//
// The derivative chain is built bottom-up, so that it is complete before the
// component can be evaluated.
func NewComponent[V ~float64](curve Definition, base, prime, primeDouble Func) *Component[V] {
	dd := &Component[V]{curve: curve, base: primeDouble, scale: 1}
	d := &Component[V]{curve: curve, base: prime, scale: 1, prime: dd}
	return &Component[V]{curve: curve, base: base, scale: 1, prime: d}
}

// Scale returns the constant factor applied to the component's base formula.
func (c *Component[V]) Scale() float64 {
	return c.scale
}

// Prime returns the component of the first derivative, or nil if c is itself a
// second derivative.
func (c *Component[V]) Prime() *Component[V] {
	return c.prime
}

func (c *Component[V]) Curve() Definition {
	return c.curve
}

func (c *Component[V]) ValueAt(t float64) V {
	return V(c.scale * c.base(t))
}

// PrimeAt evaluates the first derivative at t. It panics if c is a second
// derivative, as higher derivatives aren't modelled.
func (c *Component[V]) PrimeAt(t float64) V {
	return c.derivative().ValueAt(t)
}

// PrimeDoubleAt evaluates the second derivative at t. It panics if c is a
// derivative itself.
func (c *Component[V]) PrimeDoubleAt(t float64) V {
	return c.derivative().derivative().ValueAt(t)
}

func (c *Component[V]) derivative() *Component[V] {
	if c.prime == nil {
		panic("diffgeom: derivative of order greater than two requested")
	}
	return c.prime
}

func (c *Component[V]) ScaledBy(k float64) Differentiable[V] {
	return c.scaled(k)
}

func (c *Component[V]) Clone() Differentiable[V] {
	return c.scaled(1)
}

// scaled copies the whole derivative chain, multiplying every level's scale by k.
func (c *Component[V]) scaled(k float64) *Component[V] {
	if c == nil {
		return nil
	}
	return &Component[V]{
		curve: c.curve,
		base:  c.base,
		scale: c.scale * k,
		prime: c.prime.scaled(k),
	}
}

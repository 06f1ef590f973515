package diffgeom

// Family identifies the kind of curve a [Definition] describes.
type Family int

const (
	UnknownFamily Family = iota
	LinearFamily
	LogSpiralFamily
	CircleFamily
)

func (f Family) String() string {
	switch f {
	case LinearFamily:
		return "linear"
	case LogSpiralFamily:
		return "logarithmic spiral"
	case CircleFamily:
		return "circle"
	default:
		return "unknown"
	}
}

// Definition is the read-only geometric description of a single curve, such
// as a line's endpoints or a spiral's growth rate. Components close over the
// definition's parameters but never modify them.
type Definition interface {
	Family() Family
}

func familyOf(d Definition) Family {
	if d == nil {
		return UnknownFamily
	}
	return d.Family()
}

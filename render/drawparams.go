package render

type DepthFunc int

const (
	DepthAlways DepthFunc = iota
	DepthLess
	DepthLessOrEqual
)

// CullMode names the screen space winding of the faces that are discarded.
type CullMode int

const (
	CullNone CullMode = iota
	CullClockwise
	CullCounterClockwise
)

type DrawParameters struct {
	DepthTest  DepthFunc
	DepthWrite bool
	Culling    CullMode
}

var DefaultDrawParameters = DrawParameters{
	DepthTest:  DepthLess,
	DepthWrite: true,
	Culling:    CullClockwise,
}

func (d DepthFunc) String() string {
	switch d {
	case DepthAlways:
		return "always"
	case DepthLess:
		return "less"
	case DepthLessOrEqual:
		return "less-or-equal"
	default:
		return "unknown"
	}
}

func (c CullMode) String() string {
	switch c {
	case CullNone:
		return "none"
	case CullClockwise:
		return "clockwise"
	case CullCounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

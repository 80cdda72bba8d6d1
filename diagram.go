package dia

import "math"

// Envelope is a direction-indexed support function: given a unit
// direction vector, it reports how far an object extends from its local
// origin in that direction. The result may be negative when the object
// lies entirely on the opposite side of the origin.
//
// A nil Envelope is the point envelope: zero extent in every direction,
// the envelope of a bare point at the origin.
//
// How an envelope is computed for a primitive shape is up to the caller;
// dia only consumes the function.
type Envelope func(u Point) float64

// at evaluates the envelope, treating nil as the point envelope.
func (e Envelope) at(u Point) float64 {
	if e == nil {
		return 0
	}
	return e(u)
}

// transform returns the envelope of the object after applying t.
//
// For a set S with support E about the origin, the transformed set
// L*S + c has support u . c + |L^T u| * E(unit(L^T u)): the translation
// contributes directly, and the linear part re-indexes the direction
// through its transpose.
func (e Envelope) transform(t Transform) Envelope {
	return func(u Point) float64 {
		ex, ey, c := t.OnBasis()
		w := Pt(ex.Dot(u), ey.Dot(u))
		n := w.Length()
		if n == 0 {
			return u.Dot(c)
		}
		return u.Dot(c) + n*e.at(w.Mul(1/n))
	}
}

// merge returns the pointwise maximum of two envelopes: the support of
// the union of the two underlying sets.
func (e Envelope) merge(o Envelope) Envelope {
	return func(u Point) float64 {
		return math.Max(e.at(u), o.at(u))
	}
}

// Node is one positioned piece of a diagram's content: an opaque payload
// plus the transform accumulated on it. Rendering backends interpret the
// payload; dia never does.
type Node struct {
	Data any
	T    Transform
}

// Diagram is the reference boundable object: an envelope plus opaque
// positioned content. It satisfies the full Object capability, so every
// combinator in the package works on it. Diagrams are immutable values;
// the zero value is the empty diagram.
type Diagram struct {
	env   Envelope
	nodes []Node
}

// New creates a diagram with a single content node carrying the given
// payload, bounded by the given envelope.
func New(data any, env Envelope) Diagram {
	return Diagram{env: env, nodes: []Node{{Data: data, T: Identity()}}}
}

// Empty returns the empty diagram: no content, and the point envelope at
// the origin. It is a right identity for Above and BesideRight, but not
// a left identity, since placement anchors on the left operand's origin.
func Empty() Diagram {
	return Diagram{}
}

// Apply returns the diagram transformed by t: the envelope is
// re-indexed through t and every content node accumulates t.
func (d Diagram) Apply(t Transform) Diagram {
	nodes := make([]Node, len(d.nodes))
	for i, n := range d.nodes {
		nodes[i] = Node{Data: n.Data, T: t.Compose(n.T)}
	}
	return Diagram{env: d.env.transform(t), nodes: nodes}
}

// Extent reports the diagram's support along the direction v. Only the
// direction of v matters; the zero vector reports zero.
func (d Diagram) Extent(v Point) float64 {
	u := v.Normalize()
	if u == (Point{}) {
		return 0
	}
	return d.env.at(u)
}

// Origin returns the diagram's local origin. A diagram is always
// expressed in its own frame, so this is the coordinate origin;
// translating a diagram moves its content relative to it.
func (d Diagram) Origin() Point {
	return Point{}
}

// Overlay merges two diagrams: envelopes combine by pointwise maximum,
// content concatenates with the receiver's first. Associative, keeps
// the receiver's origin.
func (d Diagram) Overlay(o Diagram) Diagram {
	nodes := make([]Node, 0, len(d.nodes)+len(o.nodes))
	nodes = append(nodes, d.nodes...)
	nodes = append(nodes, o.nodes...)
	return Diagram{env: d.env.merge(o.env), nodes: nodes}
}

// Nodes returns the diagram's positioned content, in paint order, for
// backend consumption. The returned slice is a copy.
func (d Diagram) Nodes() []Node {
	nodes := make([]Node, len(d.nodes))
	copy(nodes, d.nodes)
	return nodes
}

// Envelope returns the diagram's envelope.
func (d Diagram) Envelope() Envelope {
	return d.env
}

// WithEnvelope returns the diagram with its envelope replaced, content
// untouched.
func (d Diagram) WithEnvelope(env Envelope) Diagram {
	return Diagram{env: env, nodes: d.nodes}
}

// Phantom returns a diagram with the receiver's envelope and no
// content: it takes up space without drawing anything.
func (d Diagram) Phantom() Diagram {
	return Diagram{env: d.env}
}

// StrutX returns an invisible diagram with extent |d| along the x-axis
// and zero extent along the y-axis, centered on the origin. Struts
// reserve space in a cat or beside chain.
func StrutX(d float64) Diagram {
	r := math.Abs(d) / 2
	return Diagram{env: func(u Point) float64 {
		return math.Abs(u.X) * r
	}}
}

// StrutY returns an invisible diagram with extent |d| along the y-axis
// and zero extent along the x-axis, centered on the origin.
func StrutY(d float64) Diagram {
	r := math.Abs(d) / 2
	return Diagram{env: func(u Point) float64 {
		return math.Abs(u.Y) * r
	}}
}

// PadX multiplies the diagram's extents along the x-axis by s, anchored
// at the local origin; factors below one shrink the envelope. Content
// is untouched. An origin that is not centered along x pads unevenly,
// since each side's extent scales independently.
func PadX(s float64, d Diagram) Diagram {
	return d.WithEnvelope(ScaleX(s, d).Envelope())
}

// PadY multiplies the diagram's extents along the y-axis by s, anchored
// at the local origin. Content is untouched.
func PadY(s float64, d Diagram) Diagram {
	return d.WithEnvelope(ScaleY(s, d).Envelope())
}

// View overrides the diagram's envelope with the axis-aligned rectangle
// whose lower-left corner is p and whose size is (w, h), leaving the
// content unchanged. It selects a viewport for rendering without
// altering the underlying geometry.
func View(p Point, w, h float64, d Diagram) Diagram {
	return d.WithEnvelope(func(u Point) float64 {
		return math.Max(u.X*p.X, u.X*(p.X+w)) +
			math.Max(u.Y*p.Y, u.Y*(p.Y+h))
	})
}

package dia

import "math"

// Transform is an invertible affine map on the plane: a linear part
// (rotation, scale, shear) plus a translation. Every Transform carries
// its own inverse, built analytically by each constructor, so the type
// is invertible by construction and Inverse never re-inverts a matrix.
//
// Transforms are immutable values and compose under [Transform.Compose],
// which is associative with [Identity] as the neutral element.
//
// Constructors that take a scale factor do not check it: scaling by zero
// produces a non-invertible map whose inverse contains infinities, and
// any downstream use of that inverse is undefined. This is a documented
// caller responsibility, not a defended error case.
type Transform struct {
	m, inv Matrix
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: identityMatrix(), inv: identityMatrix()}
}

// FromMatrix builds a Transform from an arbitrary affine matrix,
// inverting it numerically. Prefer the named constructors, which carry
// exact analytic inverses.
func FromMatrix(m Matrix) Transform {
	return Transform{m: m, inv: m.Invert()}
}

// Rotation returns the counter-clockwise rotation about the origin.
func Rotation(a Angle) Transform {
	return Transform{
		m:   rotateMatrix(a.Radians()),
		inv: rotateMatrix(-a.Radians()),
	}
}

// RotationAbout returns the counter-clockwise rotation about the point p,
// built as the rotation about the origin conjugated by the translation
// taking the origin to p.
func RotationAbout(p Point, a Angle) Transform {
	return Conjugate(Translation(p), Rotation(a))
}

// ScalingX returns the transform scaling the x coordinate by c.
func ScalingX(c float64) Transform {
	return Transform{m: scaleMatrix(c, 1), inv: scaleMatrix(1/c, 1)}
}

// ScalingY returns the transform scaling the y coordinate by c.
func ScalingY(c float64) Transform {
	return Transform{m: scaleMatrix(1, c), inv: scaleMatrix(1, 1/c)}
}

// Scaling returns the uniform scaling by c.
func Scaling(c float64) Transform {
	return Transform{m: scaleMatrix(c, c), inv: scaleMatrix(1/c, 1/c)}
}

// Translation returns the translation by the vector v.
func Translation(v Point) Transform {
	return Transform{
		m:   translateMatrix(v.X, v.Y),
		inv: translateMatrix(-v.X, -v.Y),
	}
}

// ReflectionX returns the reflection across the y-axis (negates x).
func ReflectionX() Transform { return ScalingX(-1) }

// ReflectionY returns the reflection across the x-axis (negates y).
func ReflectionY() Transform { return ScalingY(-1) }

// ReflectionAbout returns the reflection across the line through p with
// direction v: translate p to the origin, rotate v onto the x-axis,
// reflect across the x-axis, then undo the rotation and translation.
func ReflectionAbout(p, v Point) Transform {
	a := Rad(math.Atan2(v.Y, v.X))
	return Conjugate(Translation(p).Compose(Rotation(a)), ReflectionY())
}

// ShearingX returns the horizontal shear (x, y) -> (x+d*y, y).
func ShearingX(d float64) Transform {
	return Transform{m: shearMatrix(d, 0), inv: shearMatrix(-d, 0)}
}

// ShearingY returns the vertical shear (x, y) -> (x, y+d*x).
func ShearingY(d float64) Transform {
	return Transform{m: shearMatrix(0, d), inv: shearMatrix(0, -d)}
}

// Compose returns the composite transform "t after o": applying the
// result to a point applies o first, then t, matching standard
// function-composition order. Compose is associative but not
// commutative.
func (t Transform) Compose(o Transform) Transform {
	return Transform{
		m:   t.m.Multiply(o.m),
		inv: o.inv.Multiply(t.inv),
	}
}

// Conjugate returns g then t then g inverse: t re-expressed as if
// performed relative to the frame established by g. RotationAbout and
// ReflectionAbout are conjugations.
func Conjugate(g, t Transform) Transform {
	return g.Compose(t).Compose(g.Inverse())
}

// Inverse returns the inverse transform. It is an O(1) field swap; no
// matrix inversion happens here.
func (t Transform) Inverse() Transform {
	return Transform{m: t.inv, inv: t.m}
}

// TransformPoint applies the transform to a point.
func (t Transform) TransformPoint(p Point) Point {
	return t.m.TransformPoint(p)
}

// TransformVector applies only the linear part to a vector, ignoring
// translation.
func (t Transform) TransformVector(v Point) Point {
	return t.m.TransformVector(v)
}

// Matrix returns the forward matrix of the transform, for backend
// consumption.
func (t Transform) Matrix() Matrix {
	return t.m
}

// OnBasis returns the images of the two standard basis vectors under the
// linear part of t, plus the translation vector: the canonical
// matrix-plus-vector form of the map.
func (t Transform) OnBasis() (ex, ey, offset Point) {
	return Pt(t.m.A, t.m.D), Pt(t.m.B, t.m.E), Pt(t.m.C, t.m.F)
}

// AvgScale returns the geometric-mean area-scaling factor of the linear
// part, sqrt(|det|). It is multiplicative under composition:
// AvgScale(t.Compose(o)) equals AvgScale(t)*AvgScale(o), and
// AvgScale(Scaling(k)) equals |k|. Backends that cannot stroke under an
// arbitrary transform can scale a fixed line width by this factor.
func (t Transform) AvgScale() float64 {
	return math.Sqrt(math.Abs(t.m.Determinant()))
}

package dia

// Transformable is satisfied by any value an affine [Transform] can be
// applied to, yielding a value of the same type. Point satisfies it, as
// does [Diagram]; external scene-graph types plug in the same way.
type Transformable[T any] interface {
	Apply(Transform) T
}

// Boundable is satisfied by objects that carry bounding information: a
// support function giving the extent from the local origin along any
// direction, and the local origin itself.
type Boundable interface {
	// Extent reports how far the object reaches from its local origin
	// in the direction v (v need not be unit length; only its direction
	// is used). The result may be negative when the object lies
	// entirely on the far side of the origin.
	Extent(v Point) float64

	// Origin returns the object's local origin, the anchor for
	// placement and padding.
	Origin() Point
}

// Measurable combines transformability with bounding information. The
// envelope-relative rescaling operations (ScaleToX and friends) need
// both.
type Measurable[T any] interface {
	Transformable[T]
	Boundable
}

// Object is the full capability contract the layout combinators work
// over: transformable, boundable, and combinable via an associative
// Overlay that keeps the receiver's local origin.
type Object[T any] interface {
	Measurable[T]

	// Overlay merges the receiver with another object. The merge is
	// associative; the result keeps the receiver's local origin.
	Overlay(T) T
}

// Rotate rotates an object counter-clockwise by the given angle about
// the origin.
func Rotate[T Transformable[T]](a Angle, obj T) T {
	return obj.Apply(Rotation(a))
}

// RotateBy rotates an object counter-clockwise by a number of full
// turns: RotateBy(0.25, obj) is a quarter turn.
func RotateBy[T Transformable[T]](turns float64, obj T) T {
	return obj.Apply(Rotation(Turn(turns)))
}

// RotateAbout rotates an object counter-clockwise about the point p.
func RotateAbout[T Transformable[T]](p Point, a Angle, obj T) T {
	return obj.Apply(RotationAbout(p, a))
}

// ScaleX scales an object along the x-axis by c.
func ScaleX[T Transformable[T]](c float64, obj T) T {
	return obj.Apply(ScalingX(c))
}

// ScaleY scales an object along the y-axis by c.
func ScaleY[T Transformable[T]](c float64, obj T) T {
	return obj.Apply(ScalingY(c))
}

// Scale scales an object uniformly by c.
func Scale[T Transformable[T]](c float64, obj T) T {
	return obj.Apply(Scaling(c))
}

// Translate moves an object by the vector v.
func Translate[T Transformable[T]](v Point, obj T) T {
	return obj.Apply(Translation(v))
}

// TranslateX moves an object along the x-axis by d.
func TranslateX[T Transformable[T]](d float64, obj T) T {
	return obj.Apply(Translation(Pt(d, 0)))
}

// TranslateY moves an object along the y-axis by d.
func TranslateY[T Transformable[T]](d float64, obj T) T {
	return obj.Apply(Translation(Pt(0, d)))
}

// ReflectX reflects an object across the y-axis.
func ReflectX[T Transformable[T]](obj T) T {
	return obj.Apply(ReflectionX())
}

// ReflectY reflects an object across the x-axis.
func ReflectY[T Transformable[T]](obj T) T {
	return obj.Apply(ReflectionY())
}

// ReflectAbout reflects an object across the line through p with
// direction v.
func ReflectAbout[T Transformable[T]](p, v Point, obj T) T {
	return obj.Apply(ReflectionAbout(p, v))
}

// ShearX shears an object horizontally by d.
func ShearX[T Transformable[T]](d float64, obj T) T {
	return obj.Apply(ShearingX(d))
}

// ShearY shears an object vertically by d.
func ShearY[T Transformable[T]](d float64, obj T) T {
	return obj.Apply(ShearingY(d))
}

// Width returns the total extent of an object along the x-axis.
func Width(obj Boundable) float64 {
	return obj.Extent(UnitX) + obj.Extent(UnitX.Neg())
}

// Height returns the total extent of an object along the y-axis.
func Height(obj Boundable) float64 {
	return obj.Extent(UnitY) + obj.Extent(UnitY.Neg())
}

// ScaleToX rescales an object along the x-axis so its width becomes w,
// leaving its height untouched. The object's current width must be
// nonzero; a zero-width object divides by zero.
func ScaleToX[T Measurable[T]](w float64, obj T) T {
	return ScaleX(w/Width(obj), obj)
}

// ScaleToY rescales an object along the y-axis so its height becomes h,
// leaving its width untouched. The object's current height must be
// nonzero; a zero-height object divides by zero.
func ScaleToY[T Measurable[T]](h float64, obj T) T {
	return ScaleY(h/Height(obj), obj)
}

// ScaleUToX scales an object uniformly, preserving aspect ratio, so its
// width becomes w. The current width must be nonzero.
func ScaleUToX[T Measurable[T]](w float64, obj T) T {
	return Scale(w/Width(obj), obj)
}

// ScaleUToY scales an object uniformly, preserving aspect ratio, so its
// height becomes h. The current height must be nonzero.
func ScaleUToY[T Measurable[T]](h float64, obj T) T {
	return Scale(h/Height(obj), obj)
}

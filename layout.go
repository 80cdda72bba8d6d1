package dia

// CatMethod selects how HcatWith and VcatWith measure the separation
// between successive objects.
type CatMethod int

const (
	// CatSeparation leaves exactly Sep space between the touching
	// bounding regions of adjacent objects. The default.
	CatSeparation CatMethod = iota

	// CatDistance places the local origins of successive objects
	// exactly Sep apart, regardless of their extents.
	CatDistance
)

// CatOpts controls the directive-aware cat combinators. The zero value
// is the default: zero separation, measured between bounding regions.
type CatOpts struct {
	Sep    float64
	Method CatMethod
}

// Beside places b adjacent to a along the direction v, so that their
// bounding regions touch with zero gap. The result keeps a's local
// origin. Only the direction of v matters, not its magnitude; v must be
// nonzero.
func Beside[T Object[T]](v Point, a, b T) T {
	u := v.Normalize()
	off := a.Extent(u) + b.Extent(u.Neg())
	target := a.Origin().Add(u.Mul(off))
	return a.Overlay(b.Apply(Translation(target.Sub(b.Origin()))))
}

// Above stacks a on top of b. Associative, with the empty object as a
// right identity only: the result is anchored at a's local origin, so
// an empty left operand still shifts b relative to where it started.
func Above[T Object[T]](a, b T) T {
	return Beside(UnitY.Neg(), a, b)
}

// BesideRight places a to the left of b. Associative, with the empty
// object as a right identity only, for the same reason as Above.
func BesideRight[T Object[T]](a, b T) T {
	return Beside(UnitX, a, b)
}

// AtAngle places b adjacent to a along the direction at the given
// angle.
func AtAngle[T Object[T]](a Angle, x, y T) T {
	return Beside(Dir(a), x, y)
}

// Hcat lays objects out in a row, left to right, bounding regions
// touching. An empty slice yields the zero value of T.
func Hcat[T Object[T]](objs []T) T {
	return HcatWith(CatOpts{}, objs)
}

// Vcat lays objects out in a column, top to bottom, bounding regions
// touching. An empty slice yields the zero value of T.
func Vcat[T Object[T]](objs []T) T {
	return VcatWith(CatOpts{}, objs)
}

// HcatWith is Hcat with explicit separation options.
func HcatWith[T Object[T]](opts CatOpts, objs []T) T {
	return catWith(UnitX, opts, objs)
}

// VcatWith is Vcat with explicit separation options.
func VcatWith[T Object[T]](opts CatOpts, objs []T) T {
	return catWith(UnitY.Neg(), opts, objs)
}

// catWith folds objects left to right along the direction v,
// accumulating the position of the previously placed object's origin.
// The fold order is significant for CatDistance, whose spacing state is
// origin-relative; it must not be reassociated.
func catWith[T Object[T]](v Point, opts CatOpts, objs []T) T {
	var zero T
	if len(objs) == 0 {
		return zero
	}

	u := v.Normalize()
	acc := objs[0]
	prev := objs[0]
	pos := 0.0 // offset of prev's origin from acc's origin along u
	for _, o := range objs[1:] {
		var next float64
		switch opts.Method {
		case CatDistance:
			next = pos + opts.Sep
		default:
			// Extents are relative to each object's own origin, so the
			// unplaced operands report the right measurements.
			next = pos + prev.Extent(u) + opts.Sep + o.Extent(u.Neg())
		}
		target := acc.Origin().Add(u.Mul(next))
		acc = acc.Overlay(o.Apply(Translation(target.Sub(o.Origin()))))
		prev = o
		pos = next
	}
	return acc
}

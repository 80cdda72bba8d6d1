package dia

import "math"

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func approxPt(a, b Point) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

// rectEnv is the envelope of an axis-aligned w-by-h rectangle centered
// on the origin.
func rectEnv(w, h float64) Envelope {
	return func(u Point) float64 {
		return math.Abs(u.X)*w/2 + math.Abs(u.Y)*h/2
	}
}

// circleEnv is the envelope of a circle of radius r centered on the
// origin.
func circleEnv(r float64) Envelope {
	return func(u Point) float64 { return r }
}

func rectD(w, h float64) Diagram {
	return New("rect", rectEnv(w, h))
}

func circleD(r float64) Diagram {
	return New("circle", circleEnv(r))
}

// offsetOf extracts the translation component of a node's accumulated
// transform.
func offsetOf(n Node) Point {
	_, _, off := n.T.OnBasis()
	return off
}

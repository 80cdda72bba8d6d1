package dia

import "math"

// Angle is a planar angle. It is stored in radians; the Rad, Deg, and
// Turn constructors normalize other units at the boundary, so every
// operation in the package works on a single representation.
type Angle float64

// Rad constructs an Angle from radians.
func Rad(r float64) Angle { return Angle(r) }

// Deg constructs an Angle from degrees.
func Deg(d float64) Angle { return Angle(d * math.Pi / 180) }

// Turn constructs an Angle from full turns: Turn(0.25) is a quarter
// turn counter-clockwise.
func Turn(t float64) Angle { return Angle(t * 2 * math.Pi) }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return float64(a) * 180 / math.Pi }

// Turns returns the angle in full turns.
func (a Angle) Turns() float64 { return float64(a) / (2 * math.Pi) }

// Neg returns the opposite angle.
func (a Angle) Neg() Angle { return -a }

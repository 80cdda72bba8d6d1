// Package dia provides a 2D affine transformation algebra and
// bounding-aware layout combinators for arranging graphical objects.
//
// # Overview
//
// dia is a pure geometry/layout kernel. It knows nothing about pixels,
// colors, or file formats: it builds invertible affine transformations as
// first-class composable values, applies them uniformly to any
// transformable object, and positions objects relative to one another
// using their bounding envelopes rather than absolute coordinates.
//
// # Quick Start
//
//	import "github.com/godia/dia"
//
//	// A transform is a value; compose them freely.
//	t := dia.Rotation(dia.Turn(0.25)).Compose(dia.Scaling(2))
//
//	// Apply to a point, or to anything Transformable.
//	p := t.TransformPoint(dia.Pt(1, 0))
//
//	// Arrange diagrams by their envelopes.
//	row := dia.Hcat([]dia.Diagram{a, dia.StrutX(5), b})
//
// # Architecture
//
// The library is organized into:
//   - Transform algebra: Transform, Matrix, Angle, Point
//   - Capability contracts: Transformable, Boundable, Object
//   - Layout: Beside, Above, Hcat/Vcat, struts, padding, viewports
//   - Reference object: Diagram, an envelope plus opaque content
//
// Rendering backends consume a Diagram's content via [Diagram.Nodes] and a
// Transform's matrix via [Transform.OnBasis]; dia itself never rasterizes
// or serializes anything.
//
// # Coordinate System
//
// Uses standard mathematical coordinates:
//   - X increases right
//   - Y increases up
//   - Angles are counter-clockwise, 0 is along +X
package dia

// Package sketch is the vector sketch engine: it turns annotation point
// sequences into path commands, rounds polyline corners, builds cubic
// bezier paths and hosts the pen-tool editing operations. Everything in
// this package is a pure function over values, safe to call from any
// goroutine.
package sketch

import "PlanBoard/internal/geom"

// Command is a single drawing instruction. The five implementations
// below are the entire vocabulary a renderer has to understand.
type Command interface {
	isCommand()
}

// MoveTo starts a new subpath at Point without drawing.
type MoveTo struct {
	Point geom.Point
}

func (MoveTo) isCommand() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point geom.Point
}

func (LineTo) isCommand() {}

// QuadTo draws a quadratic bezier curve to Point.
type QuadTo struct {
	Control geom.Point
	Point   geom.Point
}

func (QuadTo) isCommand() {}

// CubicTo draws a cubic bezier curve to Point.
type CubicTo struct {
	Control1 geom.Point
	Control2 geom.Point
	Point    geom.Point
}

func (CubicTo) isCommand() {}

// Close closes the current subpath back to its starting point.
type Close struct{}

func (Close) isCommand() {}

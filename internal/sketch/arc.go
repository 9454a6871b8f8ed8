package sketch

import "PlanBoard/internal/geom"

// ArcPath approximates a curve through three points (start, through,
// end) with a single quadratic whose control point is the through
// point. This is deliberately not a circular-arc fit: no circumcenter
// or sweep angle is computed. Collinear input yields a valid degenerate
// curve. Fewer than three points yields the empty path.
func ArcPath(points []geom.Point) []Command {
	if len(points) < 3 {
		return nil
	}
	return []Command{
		MoveTo{Point: points[0]},
		QuadTo{Control: points[1], Point: points[2]},
	}
}

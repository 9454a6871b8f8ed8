package sketch

import (
	"math"

	"PlanBoard/internal/geom"
)

// FilletPath converts an open polyline into a path whose interior
// corners are rounded with the given radius. The first and last points
// are preserved exactly. A radius of zero (or fewer than two points
// being present) degrades to the plain polyline path.
//
// Each interior vertex is replaced by a straight run up to the tangent
// offset on the incoming side and a quadratic curve whose control point
// is the original vertex. The tangent offset radius/tan(θ/2) is clamped
// to half the length of each adjacent segment so short segments never
// self-intersect.
func FilletPath(points []geom.Point, radius float64) []Command {
	if len(points) < 2 {
		return nil
	}
	if radius <= 0 {
		return polylinePath(points)
	}

	cmds := make([]Command, 0, 2*len(points))
	cmds = append(cmds, MoveTo{Point: points[0]})

	for i := 1; i < len(points)-1; i++ {
		p1, p2, p3 := points[i-1], points[i], points[i+1]
		v1 := p1.Sub(p2)
		v2 := p3.Sub(p2)

		// Duplicate consecutive points leave the corner angle
		// undefined; pass straight through unrounded.
		if v1.Length() == 0 || v2.Length() == 0 {
			cmds = append(cmds, LineTo{Point: p2})
			continue
		}

		theta := geom.Angle(v1, v2)
		offset := radius / math.Tan(theta/2)
		offset = math.Min(offset, v1.Length()/2)
		offset = math.Min(offset, v2.Length()/2)

		curveStart := p2.Translate(v1, offset)
		curveEnd := p2.Translate(v2, offset)
		cmds = append(cmds,
			LineTo{Point: curveStart},
			QuadTo{Control: p2, Point: curveEnd},
		)
	}

	cmds = append(cmds, LineTo{Point: points[len(points)-1]})
	return cmds
}

// polylinePath emits the unrounded move-then-lines pass over points.
func polylinePath(points []geom.Point) []Command {
	cmds := make([]Command, 0, len(points))
	cmds = append(cmds, MoveTo{Point: points[0]})
	for _, p := range points[1:] {
		cmds = append(cmds, LineTo{Point: p})
	}
	return cmds
}

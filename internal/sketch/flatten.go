package sketch

import "PlanBoard/internal/geom"

// quadEval evaluates a quadratic bezier at t using the Bernstein form.
func quadEval(p0, p1, p2 geom.Point, t float64) geom.Point {
	mt := 1 - t
	return p0.Mul(mt * mt).
		Add(p1.Mul(2 * mt * t)).
		Add(p2.Mul(t * t))
}

// cubicEval evaluates a cubic bezier at t.
func cubicEval(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	mt := 1 - t
	return p0.Mul(mt * mt * mt).
		Add(p1.Mul(3 * mt * mt * t)).
		Add(p2.Mul(3 * mt * t * t)).
		Add(p3.Mul(t * t * t))
}

// Flatten converts a command sequence into connected polylines, one per
// subpath, sampling each curve with the given number of steps. Renderers
// that only know straight segments (the Fyne canvas, for one) draw these
// directly. steps below 1 is treated as 1.
func Flatten(cmds []Command, steps int) [][]geom.Point {
	if steps < 1 {
		steps = 1
	}

	var (
		subpaths [][]geom.Point
		current  []geom.Point
		start    geom.Point
		pos      geom.Point
	)
	flush := func() {
		if len(current) > 0 {
			subpaths = append(subpaths, current)
			current = nil
		}
	}

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case MoveTo:
			flush()
			current = append(current, c.Point)
			start = c.Point
			pos = c.Point
		case LineTo:
			current = append(current, c.Point)
			pos = c.Point
		case QuadTo:
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				current = append(current, quadEval(pos, c.Control, c.Point, t))
			}
			pos = c.Point
		case CubicTo:
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				current = append(current, cubicEval(pos, c.Control1, c.Control2, c.Point, t))
			}
			pos = c.Point
		case Close:
			current = append(current, start)
			pos = start
		}
	}
	flush()
	return subpaths
}

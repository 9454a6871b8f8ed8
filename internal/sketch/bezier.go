package sketch

import "PlanBoard/internal/geom"

// node is one bezier joint, stored in the flat points sequence as three
// consecutive entries starting at index 3*i.
type node struct {
	anchor    geom.Point
	handleIn  geom.Point
	handleOut geom.Point
}

func nodeAt(points []geom.Point, i int) node {
	return node{
		anchor:    points[3*i],
		handleIn:  points[3*i+1],
		handleOut: points[3*i+2],
	}
}

// NodeCount returns the number of complete [anchor, handleIn, handleOut]
// triples in a bezier points sequence.
func NodeCount(points []geom.Point) int {
	return len(points) / 3
}

// BezierPath stitches node triples into a cubic path: a move to the
// first anchor, then one cubic per consecutive node pair using the
// outgoing handle of the first and the incoming handle of the second.
// With closed set, one more cubic runs from the last node back to the
// first, followed by a close. A single lone node produces just the move,
// which is a valid editing state with nothing visible yet.
func BezierPath(points []geom.Point, closed bool) []Command {
	n := NodeCount(points)
	if n == 0 {
		return nil
	}

	first := nodeAt(points, 0)
	cmds := make([]Command, 0, n+2)
	cmds = append(cmds, MoveTo{Point: first.anchor})

	prev := first
	for i := 1; i < n; i++ {
		cur := nodeAt(points, i)
		cmds = append(cmds, CubicTo{
			Control1: prev.handleOut,
			Control2: cur.handleIn,
			Point:    cur.anchor,
		})
		prev = cur
	}

	if closed {
		cmds = append(cmds, CubicTo{
			Control1: prev.handleOut,
			Control2: first.handleIn,
			Point:    first.anchor,
		})
		cmds = append(cmds, Close{})
	}
	return cmds
}

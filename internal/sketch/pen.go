package sketch

import "PlanBoard/internal/geom"

// Pen tool operations. These edit a bezier points sequence without
// mutating it: every operation returns a fresh slice, so the caller can
// keep prior sequences around for undo.

// Handle selects which side of a node a drag is editing.
type Handle uint8

const (
	HandleIn Handle = iota
	HandleOut
)

// NewNode returns the triple for a freshly placed node. Anchor and both
// handles coincide, so the node has no visible tangent until dragged.
func NewNode(position geom.Point) []geom.Point {
	return []geom.Point{position, position, position}
}

// UpdateHandle sets one handle of the node at nodeIndex to newPosition.
// Unless breakSymmetry is set, the opposite handle is mirrored through
// the anchor so the tangent stays a straight line (a smooth node). With
// breakSymmetry the opposite handle is left untouched (a corner node);
// symmetry is never silently re-imposed on later edits.
func UpdateHandle(points []geom.Point, nodeIndex int, which Handle, newPosition geom.Point, breakSymmetry bool) []geom.Point {
	out := clonePoints(points)
	base := 3 * nodeIndex
	if base < 0 || base+2 >= len(out) {
		return out
	}

	anchor := out[base]
	mirrored := anchor.Add(anchor.Sub(newPosition))

	switch which {
	case HandleIn:
		out[base+1] = newPosition
		if !breakSymmetry {
			out[base+2] = mirrored
		}
	case HandleOut:
		out[base+2] = newPosition
		if !breakSymmetry {
			out[base+1] = mirrored
		}
	}
	return out
}

// MoveNode translates the anchor and both handles of the node at
// nodeIndex by delta, preserving each handle's offset from the anchor.
func MoveNode(points []geom.Point, nodeIndex int, delta geom.Point) []geom.Point {
	out := clonePoints(points)
	base := 3 * nodeIndex
	if base < 0 || base+2 >= len(out) {
		return out
	}
	for i := base; i < base+3; i++ {
		out[i] = out[i].Add(delta)
	}
	return out
}

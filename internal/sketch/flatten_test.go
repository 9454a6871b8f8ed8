package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PlanBoard/internal/geom"
)

func TestFlattenStraightPassThrough(t *testing.T) {
	cmds := []Command{
		MoveTo{Point: geom.Pt(0, 0)},
		LineTo{Point: geom.Pt(5, 5)},
		LineTo{Point: geom.Pt(10, 0)},
	}
	subpaths := Flatten(cmds, 16)

	require.Len(t, subpaths, 1)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(5, 5), geom.Pt(10, 0)}, subpaths[0])
}

func TestFlattenCurveEndpoints(t *testing.T) {
	cmds := []Command{
		MoveTo{Point: geom.Pt(0, 0)},
		QuadTo{Control: geom.Pt(5, 10), Point: geom.Pt(10, 0)},
		CubicTo{Control1: geom.Pt(12, 5), Control2: geom.Pt(18, 5), Point: geom.Pt(20, 0)},
	}
	subpaths := Flatten(cmds, 8)

	require.Len(t, subpaths, 1)
	pts := subpaths[0]
	require.Len(t, pts, 1+8+8)

	assert.Equal(t, geom.Pt(0, 0), pts[0])
	// Curve sampling must land exactly on the command endpoints.
	assert.InDelta(t, 10, pts[8].X, 1e-9)
	assert.InDelta(t, 0, pts[8].Y, 1e-9)
	assert.InDelta(t, 20, pts[16].X, 1e-9)
	assert.InDelta(t, 0, pts[16].Y, 1e-9)
}

func TestFlattenCloseReturnsToStart(t *testing.T) {
	cmds := []Command{
		MoveTo{Point: geom.Pt(1, 2)},
		LineTo{Point: geom.Pt(5, 2)},
		LineTo{Point: geom.Pt(5, 6)},
		Close{},
	}
	subpaths := Flatten(cmds, 4)

	require.Len(t, subpaths, 1)
	pts := subpaths[0]
	assert.Equal(t, pts[0], pts[len(pts)-1])
}

func TestFlattenMultipleSubpaths(t *testing.T) {
	cmds := []Command{
		MoveTo{Point: geom.Pt(0, 0)},
		LineTo{Point: geom.Pt(1, 0)},
		MoveTo{Point: geom.Pt(10, 10)},
		LineTo{Point: geom.Pt(11, 10)},
	}
	subpaths := Flatten(cmds, 4)
	assert.Len(t, subpaths, 2)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, Flatten(nil, 8))
}

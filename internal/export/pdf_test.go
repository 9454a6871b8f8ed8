package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PlanBoard/internal/geom"
	"PlanBoard/internal/sketch"
)

func TestExportPDFWritesFile(t *testing.T) {
	annotations := []sketch.Annotation{
		sketch.NewLine("host", geom.Pt(0, 0), geom.Pt(100, 0), sketch.Style{Color: "black", StrokeWidth: 2}),
		sketch.NewPolyline("host",
			[]geom.Point{geom.Pt(0, 0), geom.Pt(50, 80), geom.Pt(100, 0)},
			true,
			sketch.Style{Color: "red", StrokeWidth: 2, FilletRadius: 5},
		),
		sketch.NewArc("host", geom.Pt(0, 100), geom.Pt(50, 140), geom.Pt(100, 100), sketch.Style{Color: "blue", StrokeWidth: 1}),
	}

	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, ExportPDF(path, annotations))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDFEmptyBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	assert.NoError(t, ExportPDF(path, nil))
}

func TestBounds(t *testing.T) {
	annotations := []sketch.Annotation{
		sketch.NewLine("host", geom.Pt(-5, 2), geom.Pt(10, 0), sketch.Style{}),
		sketch.NewLine("host", geom.Pt(3, -7), geom.Pt(4, 20), sketch.Style{}),
	}

	min, max, ok := bounds(annotations)
	require.True(t, ok)
	assert.Equal(t, geom.Pt(-5, -7), min)
	assert.Equal(t, geom.Pt(10, 20), max)

	_, _, ok = bounds(nil)
	assert.False(t, ok)
}

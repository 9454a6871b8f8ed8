// Package export writes the board to disk formats. The PDF exporter
// walks each annotation's synthesized path commands, so fillets and
// bezier curves survive as real curve geometry instead of flattened
// segments.
package export

import (
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf"

	"PlanBoard/internal/geom"
	"PlanBoard/internal/sketch"
)

// A4 portrait with a margin, in millimeters.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 10.0
)

// ExportPDF renders the annotations into a single-page PDF at path. The
// drawing is scaled uniformly to fit the page. An empty board produces
// an empty page rather than an error.
func ExportPDF(path string, annotations []sketch.Annotation) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	min, max, ok := bounds(annotations)
	scale, offset := 1.0, geom.Pt(margin, margin)
	if ok {
		w, h := max.X-min.X, max.Y-min.Y
		usableW, usableH := pageWidth-2*margin, pageHeight-2*margin
		scale = 1.0
		if w > 0 && usableW/w < scale {
			scale = usableW / w
		}
		if h > 0 && usableH/h < scale {
			scale = usableH / h
		}
		offset = geom.Pt(margin-min.X*scale, margin-min.Y*scale)
	}
	place := func(p geom.Point) (float64, float64) {
		return p.X*scale + offset.X, p.Y*scale + offset.Y
	}

	for _, a := range annotations {
		cmds := sketch.GeneratePath(a)
		if len(cmds) == 0 {
			continue
		}

		r, g, b := colorRGB(a.Style.Color)
		pdf.SetDrawColor(r, g, b)
		width := float64(a.Style.StrokeWidth) * scale
		if width <= 0 {
			width = 0.5
		}
		pdf.SetLineWidth(width)

		for _, cmd := range cmds {
			switch c := cmd.(type) {
			case sketch.MoveTo:
				x, y := place(c.Point)
				pdf.MoveTo(x, y)
			case sketch.LineTo:
				x, y := place(c.Point)
				pdf.LineTo(x, y)
			case sketch.QuadTo:
				cx, cy := place(c.Control)
				x, y := place(c.Point)
				pdf.CurveTo(cx, cy, x, y)
			case sketch.CubicTo:
				c1x, c1y := place(c.Control1)
				c2x, c2y := place(c.Control2)
				x, y := place(c.Point)
				pdf.CurveBezierCubicTo(c1x, c1y, c2x, c2y, x, y)
			case sketch.Close:
				pdf.ClosePath()
			}
		}
		pdf.DrawPath("D")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	log.Printf("[EXPORT] wrote %d annotations to %s", len(annotations), path)
	return nil
}

// bounds returns the bounding box over every annotation point. ok is
// false when there are no points at all.
func bounds(annotations []sketch.Annotation) (min, max geom.Point, ok bool) {
	for _, a := range annotations {
		for _, p := range a.Points {
			if !ok {
				min, max = p, p
				ok = true
				continue
			}
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	return min, max, ok
}

// colorRGB maps the small named palette the toolbar offers onto RGB.
func colorRGB(name string) (int, int, int) {
	switch name {
	case "red":
		return 255, 0, 0
	case "green":
		return 0, 128, 0
	case "blue":
		return 0, 0, 255
	}
	return 0, 0, 0
}

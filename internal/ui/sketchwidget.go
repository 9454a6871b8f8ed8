package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PlanBoard/internal/geom"
	"PlanBoard/internal/sketch"
	"PlanBoard/internal/state"
)

// Tool selects what a pointer gesture on the board means.
type Tool int

const (
	ToolLine Tool = iota
	ToolPolyline
	ToolArc
	ToolPen
)

// curveSteps is how finely curves are sampled into canvas line segments.
const curveSteps = 16

// SketchWidget is the drawing surface. It reads committed annotations
// from the store, keeps the in-progress draft locally, and hands
// finished annotations to OnNewAnnotation (wired to the store and the
// network by main).
type SketchWidget struct {
	widget.BaseWidget

	store   *state.Store
	OwnerID string

	OnNewAnnotation func(a sketch.Annotation)
	OnClear         func()

	tool         Tool
	currentColor string
	stroke       float32
	filletRadius float64
	closeShapes  bool
	endCap       sketch.CapID

	// In-progress geometry. For the pen tool, draft holds node triples
	// and dragNode is the node whose outgoing handle is being dragged.
	draft    []geom.Point
	dragNode int
	breakSym bool

	panX, panY float32

	statusBar *widget.Label
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)

func NewSketchWidget(store *state.Store) *SketchWidget {
	w := &SketchWidget{
		store:        store,
		OwnerID:      "host",
		tool:         ToolLine,
		currentColor: "black",
		stroke:       2.0,
		dragNode:     -1,
		statusBar:    widget.NewLabel("Ready"),
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *SketchWidget) SetTool(tool Tool) {
	w.cancelDraft()
	w.tool = tool
	w.Refresh()
}

func (w *SketchWidget) SetColor(name string) { w.currentColor = name }

func (w *SketchWidget) SetStroke(s float32) { w.stroke = s }

func (w *SketchWidget) SetFilletRadius(r float64) { w.filletRadius = r }

func (w *SketchWidget) SetClosed(closed bool) { w.closeShapes = closed }

func (w *SketchWidget) SetEndCap(id sketch.CapID) { w.endCap = id }

func (w *SketchWidget) SetStatus(text string) {
	fyne.Do(func() { w.statusBar.SetText(text) })
}

func (w *SketchWidget) StatusBar() fyne.CanvasObject { return w.statusBar }

// Clear asks the owner's annotations to be removed everywhere.
func (w *SketchWidget) Clear() {
	w.cancelDraft()
	if w.OnClear != nil {
		w.OnClear()
	}
	w.Refresh()
}

func (w *SketchWidget) style() sketch.Style {
	return sketch.Style{
		Color:        w.currentColor,
		StrokeWidth:  w.stroke,
		FilletRadius: w.filletRadius,
		EndCap:       w.endCap,
	}
}

func (w *SketchWidget) boardPos(screen fyne.Position) geom.Point {
	return geom.Pt(float64(screen.X-w.panX), float64(screen.Y-w.panY))
}

// MouseDown places geometry for the active tool. Lines and arcs commit
// themselves once they have enough points; polylines and pen paths
// collect points until a secondary click commits them.
func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonSecondary {
		w.commitDraft()
		return
	}
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p := w.boardPos(e.Position)

	switch w.tool {
	case ToolLine:
		w.draft = append(w.draft, p)
		if len(w.draft) == 2 {
			w.commitDraft()
			return
		}
	case ToolPolyline:
		w.draft = append(w.draft, p)
	case ToolArc:
		w.draft = append(w.draft, p)
		if len(w.draft) == 3 {
			w.commitDraft()
			return
		}
	case ToolPen:
		w.draft = append(w.draft, sketch.NewNode(p)...)
		w.dragNode = sketch.NodeCount(w.draft) - 1
		w.breakSym = e.Modifier&fyne.KeyModifierAlt != 0
	}
	w.Refresh()
}

func (w *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	w.dragNode = -1
}

// Dragged shapes the pending pen node's tangent, or pans the board when
// nothing is being edited.
func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	if w.tool == ToolPen && w.dragNode >= 0 {
		pos := w.boardPos(e.Position)
		w.draft = sketch.UpdateHandle(w.draft, w.dragNode, sketch.HandleOut, pos, w.breakSym)
		w.Refresh()
		return
	}
	if len(w.draft) == 0 {
		w.panX += e.Dragged.DX
		w.panY += e.Dragged.DY
		w.Refresh()
	}
}

func (w *SketchWidget) DragEnd() {
	w.dragNode = -1
}

func (w *SketchWidget) Scrolled(e *fyne.ScrollEvent) {
	w.panX += e.Scrolled.DX
	w.panY += e.Scrolled.DY
	w.Refresh()
}

func (w *SketchWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *SketchWidget) MouseOut()                      {}
func (w *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

// commitDraft turns the collected points into an annotation if they are
// sufficient for the active tool, and always resets the draft.
func (w *SketchWidget) commitDraft() {
	defer func() {
		w.draft = nil
		w.dragNode = -1
		w.Refresh()
	}()

	var a sketch.Annotation
	switch w.tool {
	case ToolLine:
		if len(w.draft) < 2 {
			return
		}
		a = sketch.NewLine(w.OwnerID, w.draft[0], w.draft[1], w.style())
	case ToolPolyline:
		if len(w.draft) < 2 {
			return
		}
		a = sketch.NewPolyline(w.OwnerID, w.draft, w.closeShapes, w.style())
	case ToolArc:
		if len(w.draft) < 3 {
			return
		}
		a = sketch.NewArc(w.OwnerID, w.draft[0], w.draft[1], w.draft[2], w.style())
	case ToolPen:
		if sketch.NodeCount(w.draft) < 1 {
			return
		}
		a = sketch.NewBezier(w.OwnerID, w.draft, w.closeShapes, w.style())
	default:
		return
	}

	log.Printf("[BOARD] committed %s annotation %s", a.Kind, a.ID)
	if w.OnNewAnnotation != nil {
		w.OnNewAnnotation(a)
	}
}

func (w *SketchWidget) cancelDraft() {
	w.draft = nil
	w.dragNode = -1
}

// draftAnnotation previews the in-progress geometry with the active
// style, so the user sees fillets and curves while still placing points.
func (w *SketchWidget) draftAnnotation() (sketch.Annotation, bool) {
	switch w.tool {
	case ToolLine, ToolPolyline:
		if len(w.draft) < 2 {
			return sketch.Annotation{}, false
		}
		if w.tool == ToolLine {
			return sketch.Annotation{Kind: sketch.KindLine, Points: w.draft, Style: w.style()}, true
		}
		return sketch.Annotation{Kind: sketch.KindPolyline, Points: w.draft, Style: w.style()}, true
	case ToolArc:
		if len(w.draft) < 3 {
			// Show the placed points as a straight preview until the
			// through-point arrives.
			if len(w.draft) == 2 {
				return sketch.Annotation{Kind: sketch.KindLine, Points: w.draft, Style: w.style()}, true
			}
			return sketch.Annotation{}, false
		}
		return sketch.Annotation{Kind: sketch.KindArc, Points: w.draft, Style: w.style()}, true
	case ToolPen:
		if sketch.NodeCount(w.draft) < 1 {
			return sketch.Annotation{}, false
		}
		return sketch.Annotation{Kind: sketch.KindBezier, Points: w.draft, Style: w.style()}, true
	}
	return sketch.Annotation{}, false
}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &sketchRenderer{board: w}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type sketchRenderer struct {
	board      *SketchWidget
	background *canvas.Rectangle
}

func paletteColor(name string) color.Color {
	switch name {
	case "red":
		return color.NRGBA{R: 255, A: 255}
	case "green":
		return color.NRGBA{G: 128, A: 255}
	case "blue":
		return color.NRGBA{B: 255, A: 255}
	case "yellow":
		return color.NRGBA{R: 255, G: 200, A: 255}
	}
	return color.Black
}

// annotationLines synthesizes an annotation's path, flattens it and
// returns the canvas segments to draw.
func (r *sketchRenderer) annotationLines(a sketch.Annotation, col color.Color) []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	cmds := sketch.GeneratePath(a)
	for _, subpath := range sketch.Flatten(cmds, curveSteps) {
		for i := 0; i+1 < len(subpath); i++ {
			segment := canvas.NewLine(col)
			segment.StrokeWidth = a.Style.StrokeWidth
			segment.Position1 = fyne.NewPos(
				float32(subpath[i].X)+r.board.panX,
				float32(subpath[i].Y)+r.board.panY,
			)
			segment.Position2 = fyne.NewPos(
				float32(subpath[i+1].X)+r.board.panX,
				float32(subpath[i+1].Y)+r.board.panY,
			)
			objects = append(objects, segment)
		}
	}
	return objects
}

// capMarkers draws endpoint markers for caps the annotation's style
// names. The marker reference comes from the synthesizer's lookup; the
// flattened endpoints give the tip position and incoming direction.
func (r *sketchRenderer) capMarkers(a sketch.Annotation, col color.Color) []fyne.CanvasObject {
	subpaths := sketch.Flatten(sketch.GeneratePath(a), curveSteps)
	if len(subpaths) == 0 {
		return nil
	}
	var objects []fyne.CanvasObject

	first := subpaths[0]
	if m, ok := sketch.MarkerFor(a.Style.StartCap, sketch.RoleStart); ok && len(first) >= 2 {
		objects = append(objects, r.drawMarker(m, first[0], first[1], col)...)
	}
	last := subpaths[len(subpaths)-1]
	if m, ok := sketch.MarkerFor(a.Style.EndCap, sketch.RoleEnd); ok && len(last) >= 2 {
		objects = append(objects, r.drawMarker(m, last[len(last)-1], last[len(last)-2], col)...)
	}
	return objects
}

// drawMarker renders one marker at tip; prev gives the incoming
// direction for orienting arrows.
func (r *sketchRenderer) drawMarker(m sketch.Marker, tip, prev geom.Point, col color.Color) []fyne.CanvasObject {
	x := float32(tip.X) + r.board.panX
	y := float32(tip.Y) + r.board.panY

	switch m.Cap {
	case sketch.CapDot:
		const radius = 4
		dot := canvas.NewCircle(col)
		dot.Position1 = fyne.NewPos(x-radius, y-radius)
		dot.Position2 = fyne.NewPos(x+radius, y+radius)
		return []fyne.CanvasObject{dot}

	case sketch.CapArrow:
		back := prev.Sub(tip).Normalize().Mul(12)
		var objects []fyne.CanvasObject
		for _, angle := range []float64{0.45, -0.45} {
			barbEnd := tip.Add(back.Rotate(angle))
			barb := canvas.NewLine(col)
			barb.StrokeWidth = 2
			barb.Position1 = fyne.NewPos(x, y)
			barb.Position2 = fyne.NewPos(
				float32(barbEnd.X)+r.board.panX,
				float32(barbEnd.Y)+r.board.panY,
			)
			objects = append(objects, barb)
		}
		return objects
	}
	return nil
}

// penHandles draws the anchors and handles of the pen draft so the user
// can see the tangents while dragging.
func (r *sketchRenderer) penHandles(points []geom.Point) []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	handleColor := color.NRGBA{R: 30, G: 120, B: 255, A: 255}

	marker := func(p geom.Point, size float32, col color.Color) {
		c := canvas.NewCircle(col)
		x := float32(p.X) + r.board.panX
		y := float32(p.Y) + r.board.panY
		c.Position1 = fyne.NewPos(x-size, y-size)
		c.Position2 = fyne.NewPos(x+size, y+size)
		objects = append(objects, c)
	}

	for i := 0; i < sketch.NodeCount(points); i++ {
		anchor, in, out := points[3*i], points[3*i+1], points[3*i+2]
		for _, h := range []geom.Point{in, out} {
			if h == anchor {
				continue
			}
			tangent := canvas.NewLine(handleColor)
			tangent.StrokeWidth = 1
			tangent.Position1 = fyne.NewPos(float32(anchor.X)+r.board.panX, float32(anchor.Y)+r.board.panY)
			tangent.Position2 = fyne.NewPos(float32(h.X)+r.board.panX, float32(h.Y)+r.board.panY)
			objects = append(objects, tangent)
			marker(h, 2, handleColor)
		}
		marker(anchor, 3, color.Black)
	}
	return objects
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background}

	for _, a := range r.board.store.Annotations() {
		col := paletteColor(a.Style.Color)
		objects = append(objects, r.annotationLines(a, col)...)
		objects = append(objects, r.capMarkers(a, col)...)
	}

	if draft, ok := r.board.draftAnnotation(); ok {
		preview := paletteColor(r.board.currentColor)
		if nrgba, ok := color.NRGBAModel.Convert(preview).(color.NRGBA); ok {
			nrgba.A = 128
			objects = append(objects, r.annotationLines(draft, nrgba)...)
		}
	}
	if r.board.tool == ToolPen {
		objects = append(objects, r.penHandles(r.board.draft)...)
	}
	return objects
}

func (r *sketchRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sketchRenderer) Destroy() {}

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"PlanBoard/internal/sketch"
)

// --- Custom widget for color swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	Name     string
	OnTapped func(name string)
}

func newColorSwatch(name string, c color.Color, tapped func(name string)) *colorSwatch {
	s := &colorSwatch{Color: c, Name: name, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Name)
	}
}

// --- The main toolbar ---

// NewToolbar assembles tool selection, shape options, the color palette
// and the export/clear actions for the given board.
func NewToolbar(board *SketchWidget, onExport func()) fyne.CanvasObject {
	toolNames := []string{"Line", "Polyline", "Arc", "Pen"}
	tools := map[string]Tool{
		"Line":     ToolLine,
		"Polyline": ToolPolyline,
		"Arc":      ToolArc,
		"Pen":      ToolPen,
	}
	toolSelect := widget.NewSelect(toolNames, func(name string) {
		board.SetTool(tools[name])
	})
	toolSelect.SetSelected("Line")

	closedCheck := widget.NewCheck("Closed", func(on bool) {
		board.SetClosed(on)
	})

	capSelect := widget.NewSelect([]string{"none", "arrow", "dot"}, func(name string) {
		board.SetEndCap(sketch.CapID(name))
	})
	capSelect.SetSelected("none")

	// --- Fillet radius (polyline corner rounding) ---
	filletSlider := widget.NewSlider(0, 50)
	filletSlider.OnChanged = func(val float64) {
		board.SetFilletRadius(val)
	}
	filletBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), filletSlider)

	// --- Stroke width ---
	strokeSlider := widget.NewSlider(1, 20)
	strokeSlider.SetValue(2)
	strokeSlider.OnChanged = func(val float64) {
		board.SetStroke(float32(val))
	}
	strokeBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), strokeSlider)

	// --- Color palette ---
	onColorTapped := func(name string) {
		board.SetColor(name)
	}
	colorBox := container.NewHBox(
		newColorSwatch("black", color.Black, onColorTapped),
		newColorSwatch("red", color.NRGBA{R: 255, A: 255}, onColorTapped),
		newColorSwatch("green", color.NRGBA{G: 128, A: 255}, onColorTapped),
		newColorSwatch("blue", color.NRGBA{B: 255, A: 255}, onColorTapped),
		newColorSwatch("yellow", color.NRGBA{R: 255, G: 200, A: 255}, onColorTapped),
	)

	clearButton := widget.NewButton("Clear", func() {
		board.Clear()
	})
	exportButton := widget.NewButton("Export PDF", func() {
		if onExport != nil {
			onExport()
		}
	})

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		toolSelect,
		closedCheck,
		widget.NewLabel("Cap:"),
		capSelect,
		widget.NewSeparator(),
		widget.NewLabel("Fillet:"),
		filletBox,
		widget.NewLabel("Size:"),
		strokeBox,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		layout.NewSpacer(),
		clearButton,
		exportButton,
	)
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp assembles and runs the main window. shareLink, when non-empty,
// is shown so other people on the LAN can join this board. Blocks until
// the window closes.
func RunApp(shareLink string, board *SketchWidget, onExport func()) {
	myApp := app.New()
	myWindow := myApp.NewWindow("PlanBoard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	toolbar := NewToolbar(board, onExport)

	bottom := container.NewHBox(board.StatusBar())
	if shareLink != "" {
		bottom.Add(widget.NewLabel("Share: " + shareLink))
	}

	content := container.NewBorder(toolbar, bottom, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

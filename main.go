package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"PlanBoard/internal/export"
	planet "PlanBoard/internal/net"
	"PlanBoard/internal/sketch"
	"PlanBoard/internal/state"
	"PlanBoard/internal/ui"
)

const (
	CustomURLScheme = "planboard://"
	Port            = 8899
)

func main() {
	args := os.Args
	switch {
	case len(args) > 1 && args[1] == "discover":
		runDiscover()
	case len(args) > 1 && strings.HasPrefix(args[1], CustomURLScheme):
		runClient(args[1])
	default:
		runHost()
	}
}

func runHost() {
	log.Println("Starting as HOST")
	store := state.NewStore()
	hub := planet.NewHub(store)

	board := ui.NewSketchWidget(store)
	board.OwnerID = "host"
	board.OnNewAnnotation = func(a sketch.Annotation) { store.AddLocal(a) }
	board.OnClear = func() { store.ClearLocal("host") }
	store.SetOnLocalOp(hub.BroadcastOp)
	hub.OnChange = func() { fyne.Do(board.Refresh) }

	go func() {
		if err := hub.Listen(Port); err != nil {
			log.Fatalf("Failed to start host server: %v", err)
		}
	}()

	if server, err := planet.Advertise(Port); err != nil {
		log.Printf("mDNS advertise failed: %v", err)
	} else {
		defer server.Shutdown()
	}

	shareLink := ""
	if hostIP, err := planet.OutgoingIP(); err == nil {
		shareLink = fmt.Sprintf("%s%s:%d", CustomURLScheme, hostIP, Port)
	}

	ui.RunApp(shareLink, board, exportAction(board, store))
}

func runClient(link string) {
	log.Println("Starting as CLIENT")
	address := strings.TrimPrefix(link, CustomURLScheme)
	address = strings.TrimSuffix(address, "/")

	store := state.NewStore()
	board := ui.NewSketchWidget(store)
	board.OwnerID = store.SiteID()
	board.OnNewAnnotation = func(a sketch.Annotation) { store.AddLocal(a) }
	board.OnClear = func() { store.ClearLocal(store.SiteID()) }

	go connectToHost(address, store, board)

	ui.RunApp("", board, exportAction(board, store))
}

func connectToHost(address string, store *state.Store, board *ui.SketchWidget) {
	time.Sleep(500 * time.Millisecond) // give the UI time to launch

	client, err := planet.Dial(address, store)
	if err != nil {
		board.SetStatus(fmt.Sprintf("Connection failed: %v", err))
		return
	}
	board.SetStatus("Connected to " + address)

	store.SetOnLocalOp(client.Send)
	client.OnChange = func() { fyne.Do(board.Refresh) }

	client.Listen()
	board.SetStatus("Disconnected from host")
}

// runDiscover browses the LAN for an advertised board and joins the
// first one found.
func runDiscover() {
	log.Println("Browsing for boards on the local network...")
	found := make(chan string, 1)
	if err := planet.Browse(func(addr string) {
		select {
		case found <- addr:
		default:
		}
	}); err != nil {
		log.Fatalf("mDNS browse failed: %v", err)
	}

	select {
	case addr := <-found:
		log.Printf("Found board at %s", addr)
		runClient(CustomURLScheme + addr)
	case <-time.After(3 * time.Second):
		log.Println("No board found, starting as host instead")
		runHost()
	}
}

func exportAction(board *ui.SketchWidget, store *state.Store) func() {
	return func() {
		path := "planboard.pdf"
		if err := export.ExportPDF(path, store.Annotations()); err != nil {
			log.Printf("Export failed: %v", err)
			board.SetStatus("Export failed")
			return
		}
		board.SetStatus(fmt.Sprintf("Exported %d annotations to %s", store.Len(), path))
	}
}

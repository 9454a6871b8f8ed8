// Package net carries the board between sites: a websocket hub on the
// host, a dialing client on every peer, mDNS discovery and share-link IP
// helpers. The payload is always a state.Op encoded as JSON.
package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"PlanBoard/internal/state"
)

var upgrader = websocket.Upgrader{
	// The board is LAN-only; peers connect from other origins by design.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Hub is run by the host. It accepts websocket clients, replays the
// current board to each newcomer, applies incoming operations to the
// store and relays them to everyone else.
type Hub struct {
	store *state.Store
	conns map[*websocket.Conn]bool
	mu    sync.Mutex // guards conns and serializes writes

	// OnChange, when set, is called after a remote operation changed
	// the store, so the UI can refresh.
	OnChange func()
}

// NewHub creates a hub over the given store.
func NewHub(store *state.Store) *Hub {
	return &Hub{
		store: store,
		conns: make(map[*websocket.Conn]bool),
	}
}

// Listen serves the websocket endpoint on the given port. It blocks.
func (h *Hub) Listen(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWS)
	log.Printf("[HOST] listening for peers on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HOST] upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	h.add(conn)
	defer h.remove(conn)

	// Replay the current board. ApplyRemote deduplicates on the other
	// end, so a reconnecting client is safe.
	for _, op := range h.store.Snapshot() {
		if err := h.write(conn, op); err != nil {
			log.Printf("[HOST] snapshot send to %s failed: %v", conn.RemoteAddr(), err)
			return
		}
	}

	for {
		var op state.Op
		if err := conn.ReadJSON(&op); err != nil {
			log.Printf("[HOST] peer %s disconnected: %v", conn.RemoteAddr(), err)
			return
		}
		log.Printf("[HOST] received %q from %s", op.Type, conn.RemoteAddr())
		if h.store.ApplyRemote(op) && h.OnChange != nil {
			h.OnChange()
		}
		h.broadcast(op, conn)
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
	log.Printf("[HOST] peer connected: %s", conn.RemoteAddr())
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
	log.Printf("[HOST] peer removed: %s", conn.RemoteAddr())
}

// write sends one op on one connection under the hub lock; gorilla
// connections do not allow concurrent writers.
func (h *Hub) write(conn *websocket.Conn, op state.Op) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return conn.WriteJSON(op)
}

// broadcast relays an op to every peer except the sender.
func (h *Hub) broadcast(op state.Op, exclude *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if conn == exclude {
			continue
		}
		if err := conn.WriteJSON(op); err != nil {
			log.Printf("[HOST] send to %s failed: %v", conn.RemoteAddr(), err)
		}
	}
}

// BroadcastOp sends a locally produced op to all peers. Wire it up
// with Store.SetOnLocalOp on the host.
func (h *Hub) BroadcastOp(op state.Op) {
	h.broadcast(op, nil)
}

// Client connects a peer's store to a host's hub.
type Client struct {
	conn  *websocket.Conn
	store *state.Store
	mu    sync.Mutex // serializes writes

	// OnChange, when set, is called after a received operation changed
	// the store.
	OnChange func()
}

// Dial connects to a host at "host:port" and returns the client. The
// caller should wire Send via Store.SetOnLocalOp and then call Listen.
func Dial(address string, store *state.Store) (*Client, error) {
	url := fmt.Sprintf("ws://%s/ws", address)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to reach host at %s: %w", address, err)
	}
	log.Printf("[SYNC] connected to host %s", address)
	return &Client{conn: conn, store: store}, nil
}

// Send transmits a locally produced op to the host.
func (c *Client) Send(op state.Op) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(op); err != nil {
		log.Printf("[SYNC] send failed: %v", err)
	}
}

// Listen pumps operations from the host into the store. It blocks until
// the connection drops.
func (c *Client) Listen() {
	defer c.conn.Close()
	for {
		var op state.Op
		if err := c.conn.ReadJSON(&op); err != nil {
			log.Printf("[SYNC] disconnected from host: %v", err)
			return
		}
		if c.store.ApplyRemote(op) && c.OnChange != nil {
			c.OnChange()
		}
	}
}

package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// statusEvent is broadcast to /ws/status subscribers as an upload moves
// through the pipeline.
type statusEvent struct {
	Stage    string `json:"stage"` // "received", "completed" or "failed"
	Filename string `json:"filename"`
	ResumeID int    `json:"resume_id,omitempty"`
}

// statusHub fans status events out to connected websocket clients. Clients
// only listen; inbound messages are discarded.
type statusHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newStatusHub() *statusHub {
	return &statusHub{conns: map[*websocket.Conn]bool{}}
}

func (h *statusHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain until the client disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}
	}
}

// Broadcast sends the event to every connected client. Write failures drop
// the connection; the read loop will notice and clean up.
func (h *statusHub) Broadcast(ev statusEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(ev); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

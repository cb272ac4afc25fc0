package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// RecognitionStatus is a snapshot of the live recognition state.
type RecognitionStatus struct {
	Sign       string   `json:"sign"`
	Confidence float64  `json:"confidence"`
	Word       []string `json:"word"`
	Enabled    bool     `json:"enabled"`
}

// StatusProvider supplies recognition snapshots for broadcasting. The
// recognition loop owns the state; the server only reads it.
type StatusProvider interface {
	RecognitionStatus() RecognitionStatus
}

// RecognitionHandler broadcasts real-time recognition status via WebSocket.
type RecognitionHandler struct {
	status  StatusProvider
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
	stopCh  chan struct{}
	once    sync.Once
}

// NewRecognitionHandler creates a new RecognitionHandler with the given provider.
func NewRecognitionHandler(status StatusProvider) *RecognitionHandler {
	h := &RecognitionHandler{
		status:  status,
		clients: make(map[*websocket.Conn]bool),
		stopCh:  make(chan struct{}),
	}
	go h.broadcast()
	return h
}

// Close stops the broadcast goroutine. Safe to call more than once.
func (h *RecognitionHandler) Close() {
	h.once.Do(func() { close(h.stopCh) })
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *RecognitionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends recognition status to all connected clients.
func (h *RecognitionHandler) broadcast() {
	ticker := time.NewTicker(66 * time.Millisecond) // ~15 FPS
	defer ticker.Stop()

	for {
		select {
		case <-h.stopCh:
			return
		case <-ticker.C:
		}

		h.mu.RLock()
		if len(h.clients) == 0 {
			h.mu.RUnlock()
			continue
		}
		h.mu.RUnlock()

		status := h.status.RecognitionStatus()

		msg, _ := json.Marshal(map[string]any{
			"sign":       status.Sign,
			"confidence": status.Confidence,
			"word":       status.Word,
			"enabled":    status.Enabled,
			"timestamp":  time.Now().UnixMilli(),
		})

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}

package chat

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/familyexpressec/courier-api/internal/models"
)

// Hub mantiene las conexiones websocket activas (asesores y clientes
// del portal) y les reenvía cada mensaje persistido.
type Hub struct {
	mu          sync.Mutex
	connections map[*websocket.Conn]bool

	broadcast chan models.ChatMessage

	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	upgrader := websocket.Upgrader{
		// El origen ya pasó por el CORS del router.
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	return &Hub{
		connections: make(map[*websocket.Conn]bool),
		broadcast:   make(chan models.ChatMessage, 32),
		upgrader:    upgrader,
	}
}

// Run consume el canal de broadcast; correr en su propia goroutine.
func (h *Hub) Run() {
	for msg := range h.broadcast {
		h.mu.Lock()
		for conn := range h.connections {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("chat: dropping connection: %v", err)
				conn.Close()
				delete(h.connections, conn)
			}
		}
		h.mu.Unlock()
	}
}

// HandleWebSocket sube la conexión HTTP a websocket y la registra.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat: upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.connections[ws] = true
	h.mu.Unlock()

	// Drenar lecturas para detectar el cierre del lado del cliente.
	go func() {
		defer ws.Close()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.connections, ws)
				h.mu.Unlock()
				break
			}
		}
	}()
}

func (h *Hub) Broadcast(msg models.ChatMessage) {
	select {
	case h.broadcast <- msg:
	default:
		log.Println("chat: broadcast buffer full, dropping message")
	}
}

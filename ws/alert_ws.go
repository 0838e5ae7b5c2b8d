package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Misheck-bot/transport-system-sub001/entity"
)

// AlertHub pushes newly raised security alerts to every connected
// agent/admin dashboard.
type AlertHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.SecurityAlert
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewAlertHub() *AlertHub {
	return &AlertHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.SecurityAlert, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run listens for register/unregister/broadcast forever.
func (h *AlertHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case alert := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(alert); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues an alert for all connected clients. Never blocks
// the calling request; when the buffer is full the alert is dropped
// (clients re-read the list endpoint anyway).
func (h *AlertHub) Broadcast(alert *entity.SecurityAlert) {
	select {
	case h.broadcast <- alert:
	default:
		log.Println("ws: broadcast buffer full, dropping alert")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/alerts. Role is already enforced by the middleware.
func (h *AlertHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	// reader loop: we only care about disconnects
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

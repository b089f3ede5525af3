package ws

import (
	"net/http"
	"sync"

	"github.com/contact-info00/legends-menu-sub001/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// FeedbackHub pushes every accepted feedback to connected admin panels.
type FeedbackHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan *entity.Feedback
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewFeedbackHub() *FeedbackHub {
	return &FeedbackHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan *entity.Feedback, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *FeedbackHub) Run() {
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

		case fb := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(fb); err != nil {
					log.Warn().Err(err).Msg("ws write error")
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish never blocks the submitting request; the feed is best effort.
func (h *FeedbackHub) Publish(fb *entity.Feedback) {
	select {
	case h.broadcast <- fb:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /api/admin/feedback/live (session gate runs before the upgrade)
func (h *FeedbackHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade error")
		return
	}

	h.register <- conn

	// drain control frames until the client goes away
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

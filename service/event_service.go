package service

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tieubaoca/memobox-be/types"
)

// EventService pushes document lifecycle events to connected websocket
// clients. Delivery is best effort: a failed write just drops the client's
// event, the connection is torn down by its own read loop.
type EventService struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
}

func NewEventService() *EventService {
	return &EventService{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (local-only server)
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// Publish broadcasts an event to every connected client.
func (s *EventService) Publish(eventType, documentID string) {
	event := types.DocumentEvent{
		Type:       eventType,
		DocumentID: documentID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteJSON(event); err != nil {
			log.Println("Write error:", err)
		}
	}
}

// HandleEvents upgrades the request and keeps the connection registered
// until the client goes away.
func (s *EventService) HandleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	conn.SetReadLimit(64 * 1024)

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
	}
}

// ClientCount reports how many clients are currently connected.
func (s *EventService) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

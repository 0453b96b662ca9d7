package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"hotel-backoffice/internal/domain/notification"
	syncuc "hotel-backoffice/internal/usecase/sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event is the wire frame pushed to connected dashboards.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

const (
	EventSyncStarted         = "SYNC_STARTED"
	EventSyncCompleted       = "SYNC_COMPLETED"
	EventSyncFailed          = "SYNC_FAILED"
	EventNotificationCreated = "NOTIFICATION_CREATED"
)

const (
	writeWait = 10 * time.Second
	sendQueue = 16
)

// Hub fans events out to every connected websocket client. Slow clients are
// dropped rather than allowed to block the broadcast path.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	log      *slog.Logger
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Auth happens at the HTTP layer before the upgrade.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log: log,
	}
}

// Serve upgrades an HTTP request to a websocket connection and keeps it
// registered until the peer disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendQueue)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.log.Debug("websocket client connected", "remote", conn.RemoteAddr())

	go h.writeLoop(c)
	h.readLoop(c)
}

// readLoop drains inbound frames until the peer closes; the channel is
// push-only so payloads are discarded.
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.remove(c)
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

func (h *Hub) broadcast(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.log.Error("failed to encode event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	stale := make([]*client, 0)
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		h.log.Warn("dropping slow websocket client", "remote", c.conn.RemoteAddr())
		h.remove(c)
	}
}

// ClientCount reports connected clients, used by the health endpoint.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) SyncStarted(startedAt time.Time) {
	h.broadcast(Event{Type: EventSyncStarted, Payload: map[string]any{
		"started_at": startedAt,
	}})
}

func (h *Hub) SyncCompleted(report *syncuc.Report) {
	h.broadcast(Event{Type: EventSyncCompleted, Payload: map[string]any{
		"status":   report.Status,
		"duration": report.Duration().String(),
		"rooms": map[string]int{
			"created": report.Rooms.Created, "updated": report.Rooms.Updated,
		},
		"guests": map[string]int{
			"created": report.Guests.Created, "updated": report.Guests.Updated,
		},
		"reservations": map[string]int{
			"created": report.Reservations.Created, "updated": report.Reservations.Updated,
		},
		"errors": len(report.Total.Errors),
	}})
}

func (h *Hub) SyncFailed(message string) {
	h.broadcast(Event{Type: EventSyncFailed, Payload: map[string]any{
		"message": message,
	}})
}

func (h *Hub) NotificationCreated(id uuid.UUID, n *notification.Notification) {
	h.broadcast(Event{Type: EventNotificationCreated, Payload: map[string]any{
		"id":      id,
		"type":    n.Type,
		"title":   n.Title,
		"message": n.Message,
	}})
}

package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ecosort/pkg/logger"
)

// Client represents one connected dashboard view.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Frame is the envelope for every broadcast message.
type Frame struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// Manager fans broadcast frames out to all connected dashboard clients.
// Frames carry the auth_changed cross-view signal and bin_snapshot telemetry.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Start runs the manager's main loop in a goroutine until ctx is cancelled.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("Dashboard client registered: %s", client.ID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("Dashboard client unregistered: %s", client.ID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for _, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, client.ID)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Broadcast sends a typed frame to every connected client. A marshal failure
// drops the frame with a warning; telemetry is best-effort.
func (m *Manager) Broadcast(topic string, payload interface{}) {
	frame, err := json.Marshal(Frame{
		Type:      topic,
		Data:      payload,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		logger.Warn("Failed to marshal %s frame: %v", topic, err)
		return
	}
	m.broadcast <- frame
}

// ReadPump drains client messages until the connection drops. Dashboards are
// read-only; inbound payloads are ignored.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("Dashboard client read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued frames to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("Dashboard client write error: %v", err)
			return
		}
	}
}

package ws

import (
	"sync"

	"venturenest_backend/internal/logger"
)

// Manager is the realtime notification hub. Notification Dispatch pushes
// each persisted notification here; connected clients for that user receive
// it on their websocket. Delivery is best-effort: a client that missed
// events while disconnected re-fetches its list on resume.
type Manager struct {
	clients    map[string]map[*Client]bool // userID -> open connections
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			if m.clients[client.UserID] == nil {
				m.clients[client.UserID] = make(map[*Client]bool)
			}
			m.clients[client.UserID][client] = true
			m.mu.Unlock()
			logger.Debug("ws client registered", "user_id", client.UserID)

		case client := <-m.unregister:
			m.mu.Lock()
			if conns, ok := m.clients[client.UserID]; ok {
				if _, open := conns[client]; open {
					close(client.Send)
					delete(conns, client)
					if len(conns) == 0 {
						delete(m.clients, client.UserID)
					}
					logger.Debug("ws client unregistered", "user_id", client.UserID)
				}
			}
			m.mu.Unlock()
		}
	}
}

// PushToUser delivers payload to every open connection of the user. A
// connection with a full send buffer is dropped rather than blocking the
// caller.
func (m *Manager) PushToUser(userID string, payload any) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for client := range m.clients[userID] {
		select {
		case client.Send <- payload:
		default:
			go func(c *Client) {
				m.unregister <- c
			}(client)
			logger.Warn("ws client dropped, send buffer full", "user_id", userID)
		}
	}
}

func (m *Manager) IsUserConnected(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID]) > 0
}

func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, conns := range m.clients {
		total += len(conns)
	}
	return total
}

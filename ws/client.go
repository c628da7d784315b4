package ws

import (
	"github.com/gorilla/websocket"

	"venturenest_backend/internal/logger"
)

// Client is one websocket connection of a signed-in user.
type Client struct {
	UserID  string
	Conn    *websocket.Conn
	Send    chan any
	Manager *Manager
}

// readPump drains incoming frames. The notification channel is one-way:
// client frames carry no commands, reading only detects disconnects.
func (c *Client) readPump() {
	defer func() {
		c.Manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("ws read error", "user_id", c.UserID, "error", err)
			}
			break
		}
	}
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			logger.Debug("ws write error", "user_id", c.UserID, "error", err)
			break
		}
	}
	c.Conn.Close()
}

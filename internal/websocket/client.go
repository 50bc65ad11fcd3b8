package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait = 10 * time.Second
	pongWait  = 60 * time.Second

	// pingPeriod must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10

	// dashboards only send control frames
	maxMessageSize = 512

	// events queued before a client counts as stalled
	sendBufferSize = 64
)

// Client is one dashboard connection subscribed to a single topic
type Client struct {
	id        string
	topic     string
	conn      *websocket.Conn
	hub       *Hub
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient creates a WebSocket client subscribed to topic
func NewClient(conn *websocket.Conn, topic string, hub *Hub) *Client {
	return &Client{
		id:    uuid.NewString(),
		topic: topic,
		conn:  conn,
		hub:   hub,
		send:  make(chan []byte, sendBufferSize),
		done:  make(chan struct{}),
	}
}

func (c *Client) ID() string    { return c.id }
func (c *Client) Topic() string { return c.topic }

// Send queues an event. A closed or stalled client returns ErrClientClosed;
// the browser catches up on its next reload.
func (c *Client) Send(data []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return ErrClientClosed
	default:
		return ErrClientClosed
	}
}

// Close ends the connection; later calls are no-ops
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

// IsClosed reports whether Close has been called
func (c *Client) IsClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Serve registers the client and runs its pumps until the peer goes away
func (c *Client) Serve() {
	c.hub.Register(c)
	go c.writePump()
	go c.readPump()
}

// readPump keeps the read deadline moving and notices disconnects
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Str("topic", c.topic).
					Msg("WebSocket unexpected close")
			}
			return
		}
	}
}

// writePump delivers queued events and pings the peer
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Warn().
					Err(err).
					Str("client_id", c.id).
					Str("topic", c.topic).
					Msg("WebSocket write error")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

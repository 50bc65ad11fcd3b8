package websocket

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrClientClosed is returned when attempting to send to a closed client
var ErrClientClosed = errors.New("client is closed")

// ClientInterface defines the interface that clients must implement
type ClientInterface interface {
	ID() string
	Topic() string
	Send(data []byte) error
	Close() error
}

// Hub fans events out to the clients subscribed to a topic.
// It is safe for concurrent use.
type Hub struct {
	// topics maps topic to a map of client ID to client
	topics map[string]map[string]ClientInterface
	mu     sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[string]ClientInterface),
	}
}

// Register adds a client under its topic
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	topic := client.Topic()
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[string]ClientInterface)
	}
	h.topics[topic][client.ID()] = client

	log.Debug().
		Str("topic", topic).
		Str("client_id", client.ID()).
		Msg("WebSocket client registered")
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	topic := client.Topic()
	clients, ok := h.topics[topic]
	if !ok {
		return
	}
	if _, exists := clients[client.ID()]; !exists {
		return
	}

	delete(clients, client.ID())
	if len(clients) == 0 {
		delete(h.topics, topic)
	}

	log.Debug().
		Str("topic", topic).
		Str("client_id", client.ID()).
		Msg("WebSocket client unregistered")
}

// Broadcast sends an event to every client of a topic without waiting for delivery
func (h *Hub) Broadcast(topic string, event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("event_type", event.Type).
			Msg("Failed to serialize event")
		return
	}

	h.mu.RLock()
	clients := h.topics[topic]
	recipients := make([]ClientInterface, 0, len(clients))
	for _, client := range clients {
		recipients = append(recipients, client)
	}
	h.mu.RUnlock()

	if len(recipients) == 0 {
		return
	}

	for _, client := range recipients {
		go func(c ClientInterface) {
			if err := c.Send(data); err != nil {
				log.Warn().
					Err(err).
					Str("topic", topic).
					Str("client_id", c.ID()).
					Msg("Failed to send to client")
			}
		}(client)
	}

	log.Debug().
		Str("topic", topic).
		Str("event_type", event.Type).
		Int("client_count", len(recipients)).
		Msg("Broadcast event")
}

// ClientCount returns the number of clients subscribed to a topic
func (h *Hub) ClientCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// TotalClientCount returns the number of connected clients across all topics
func (h *Hub) TotalClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, clients := range h.topics {
		total += len(clients)
	}
	return total
}

package websocket

// EventPublisher pushes events to subscribed dashboards
type EventPublisher interface {
	Publish(topic string, event Event)
}

var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting to the topic
func (h *Hub) Publish(topic string, event Event) {
	h.Broadcast(topic, event)
}

// NoOpPublisher drops every event (for tests or when realtime push is off)
type NoOpPublisher struct{}

func (n *NoOpPublisher) Publish(topic string, event Event) {}

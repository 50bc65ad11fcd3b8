package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType is what happened to the entity
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeReloaded EventType = "reloaded"
)

// EntityType is what the event is about
type EntityType string

const (
	EntityTypeCustomer  EntityType = "customer"
	EntityTypeCustomers EntityType = "customers"
	EntityTypePayment   EntityType = "payment"
)

// Event is the message pushed to dashboards.
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"` // e.g. "payment.created"
	Entity    EntityType  `json:"entity"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// CustomerCreated creates a customer.created event
func CustomerCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeCustomer, payload)
}

// PaymentCreated creates a payment.created event
func PaymentCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypePayment, payload)
}

// CustomersReloaded creates a customers.reloaded event
func CustomersReloaded(payload interface{}) Event {
	return NewEvent(EventTypeReloaded, EntityTypeCustomers, payload)
}

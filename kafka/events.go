package kafka

import "time"

// OrderPlacedEvent is emitted once per cart line when a checkout completes
type OrderPlacedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	OrderID   string    `json:"order_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UserID    uint      `json:"user_id"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)

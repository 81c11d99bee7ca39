package kafka

import (
	"encoding/json"
	"time"
)

// Event types published after a successful order item submission.
const (
	EventOrderItemCreated = "orderitem.created"
	EventOrderItemUpdated = "orderitem.updated"
)

// OrderItemEvent is the audit event published when an order item is saved.
type OrderItemEvent struct {
	EventType         string    `json:"event_type"`
	OrderID           string    `json:"order_id"`
	OrderItemType     string    `json:"order_item_type"`
	CatalogueItemID   string    `json:"catalogue_item_id"`
	CatalogueItemName string    `json:"catalogue_item_name"`
	OdsCode           string    `json:"ods_code,omitempty"`
	UserID            string    `json:"user_id,omitempty"`
	Timestamp         time.Time `json:"timestamp"`

	// Tracing
	TraceID string `json:"trace_id,omitempty"`
	SpanID  string `json:"span_id,omitempty"`
}

// ToJSON serializes the event for publishing
func (e *OrderItemEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

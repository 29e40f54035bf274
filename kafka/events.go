package kafka

import "time"

// InventoryLogRecordedEvent is published after an inventory log entry is stored
type InventoryLogRecordedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	LogID          uint      `json:"log_id"`
	ProductID      *uint     `json:"product_id,omitempty"`
	QuantityChange *int      `json:"quantity_change,omitempty"`
	ActionType     *string   `json:"action_type,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// InventoryItemChangedEvent is published after an in-stock or out-of-stock item is
// created, updated or deleted
type InventoryItemChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	Stock     string    `json:"stock"`
	Change    string    `json:"change"`
	Quantity  *int      `json:"quantity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeInventoryLogRecorded = "inventory.log_recorded"
	EventTypeInventoryItemChanged = "inventory.item_changed"
)

// Kafka topics
const (
	TopicInventoryLogRecorded = "inventory-log-recorded"
	TopicInventoryItemChanged = "inventory-item-changed"
)

// Stock values of InventoryItemChangedEvent
const (
	StockInStock    = "in_stock"
	StockOutOfStock = "out_of_stock"
)

// Change values of InventoryItemChangedEvent
const (
	ChangeCreated = "created"
	ChangeUpdated = "updated"
	ChangeDeleted = "deleted"
)

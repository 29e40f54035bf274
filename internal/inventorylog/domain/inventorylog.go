package domain

import "context"

// Action types recorded by clients. The store does not enforce them.
const (
	ActionRestock    = "restock"
	ActionSale       = "sale"
	ActionAdjustment = "adjustment"
)

// LogFields holds the client-supplied attributes of an inventory log entry
type LogFields struct {
	ProductID      *uint   `json:"product_id,omitempty" gorm:"column:product_id"`
	QuantityChange *int    `json:"quantity_change,omitempty" gorm:"column:quantity_change"`
	ActionType     *string `json:"action_type,omitempty" gorm:"column:action_type"`
}

// Log is an append-only record of an inventory change
type Log struct {
	LogID     uint `json:"log_id" gorm:"column:log_id;primaryKey"`
	LogFields `gorm:"embedded"`
}

// TableName specifies the table name
func (Log) TableName() string {
	return "InventoryLogs"
}

// LogCreated is the generated id merged into the submitted fields
type LogCreated struct {
	ID uint `json:"id"`
	LogFields
}

// InventoryLogRepository defines the contract for inventory log data access.
// Log entries are never updated or deleted.
type InventoryLogRepository interface {
	List(ctx context.Context) ([]Log, error)
	FindByID(ctx context.Context, id uint) (*Log, error)
	ListByProduct(ctx context.Context, productID uint) ([]Log, error)
	Create(ctx context.Context, fields LogFields) (*LogCreated, error)
}

package domain

import "context"

// ItemFields holds the client-supplied attributes of an in-stock item. A nil field is
// stored as NULL and left out of the echoed response.
type ItemFields struct {
	Name       *string  `json:"name,omitempty" gorm:"column:name"`
	CategoryID *uint    `json:"category_id,omitempty" gorm:"column:category_id"`
	Quantity   *int     `json:"quantity,omitempty" gorm:"column:quantity"`
	Price      *float64 `json:"price,omitempty" gorm:"column:price"`
	SupplierID *uint    `json:"supplier_id,omitempty" gorm:"column:supplier_id"`
}

// Columns returns the fields keyed by column name
func (f ItemFields) Columns() map[string]any {
	return map[string]any{
		"name":        f.Name,
		"category_id": f.CategoryID,
		"quantity":    f.Quantity,
		"price":       f.Price,
		"supplier_id": f.SupplierID,
	}
}

// Item represents an in-stock inventory item
type Item struct {
	ProductID  uint `json:"product_id" gorm:"column:product_id;primaryKey"`
	ItemFields `gorm:"embedded"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "InventoryInStock"
}

// ItemCreated is the generated id merged into the submitted fields
type ItemCreated struct {
	ID uint `json:"id"`
	ItemFields
}

// ItemUpdated echoes the submitted fields of an update
type ItemUpdated struct {
	ProductID uint `json:"productId"`
	ItemFields
	RowsAffected int64 `json:"-"`
}

// ItemDeletion confirms a delete
type ItemDeletion struct {
	Message      string `json:"message"`
	ProductID    uint   `json:"productId"`
	RowsAffected int64  `json:"-"`
}

// InventoryRepository defines the contract for in-stock inventory data access.
// FindByID returns a nil item and a nil error when nothing matches.
type InventoryRepository interface {
	List(ctx context.Context) ([]Item, error)
	FindByID(ctx context.Context, id uint) (*Item, error)
	Create(ctx context.Context, fields ItemFields) (*ItemCreated, error)
	Update(ctx context.Context, id uint, fields ItemFields) (*ItemUpdated, error)
	Delete(ctx context.Context, id uint) (*ItemDeletion, error)
}

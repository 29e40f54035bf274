package domain

import "context"

// SupplierFields holds the client-supplied supplier attributes
type SupplierFields struct {
	SupplierName *string `json:"supplier_name,omitempty" gorm:"column:supplier_name"`
	ContactInfo  *string `json:"contact_info,omitempty" gorm:"column:contact_info"`
}

// Columns returns the fields keyed by column name
func (f SupplierFields) Columns() map[string]any {
	return map[string]any{
		"supplier_name": f.SupplierName,
		"contact_info":  f.ContactInfo,
	}
}

// Supplier represents the supplier entity
type Supplier struct {
	SupplierID     uint `json:"supplier_id" gorm:"column:supplier_id;primaryKey"`
	SupplierFields `gorm:"embedded"`
}

// TableName specifies the table name
func (Supplier) TableName() string {
	return "Suppliers"
}

// SupplierCreated is the generated id merged into the submitted fields
type SupplierCreated struct {
	ID uint `json:"id"`
	SupplierFields
}

// SupplierUpdated echoes the submitted fields of an update
type SupplierUpdated struct {
	SupplierID uint `json:"supplier_id"`
	SupplierFields
	RowsAffected int64 `json:"-"`
}

// SupplierDeletion confirms a delete
type SupplierDeletion struct {
	Message      string `json:"message"`
	SupplierID   uint   `json:"supplierId"`
	RowsAffected int64  `json:"-"`
}

// SupplierRepository defines the contract for supplier data access.
// Lookups return a nil supplier and a nil error when nothing matches.
type SupplierRepository interface {
	List(ctx context.Context) ([]Supplier, error)
	FindByID(ctx context.Context, id uint) (*Supplier, error)
	FindByName(ctx context.Context, name string) (*Supplier, error)
	FindByContactInfo(ctx context.Context, contactInfo string) (*Supplier, error)
	Create(ctx context.Context, fields SupplierFields) (*SupplierCreated, error)
	Update(ctx context.Context, id uint, fields SupplierFields) (*SupplierUpdated, error)
	Delete(ctx context.Context, id uint) (*SupplierDeletion, error)
}

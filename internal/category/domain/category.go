package domain

import "context"

// CategoryFields holds the client-supplied category attributes. A nil field is stored
// as NULL and left out of the echoed response.
type CategoryFields struct {
	CategoryName *string `json:"category_name,omitempty" gorm:"column:category_name"`
}

// Columns returns the fields keyed by column name
func (f CategoryFields) Columns() map[string]any {
	return map[string]any{"category_name": f.CategoryName}
}

// Category represents the category entity
type Category struct {
	CategoryID     uint `json:"category_id" gorm:"column:category_id;primaryKey"`
	CategoryFields `gorm:"embedded"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "Categories"
}

// CategoryCreated is the generated id merged into the submitted fields
type CategoryCreated struct {
	ID uint `json:"id"`
	CategoryFields
}

// CategoryUpdated echoes the submitted fields of an update
type CategoryUpdated struct {
	ID uint `json:"id"`
	CategoryFields
	RowsAffected int64 `json:"-"`
}

// CategoryDeletion confirms a delete
type CategoryDeletion struct {
	Message      string `json:"message"`
	CategoryID   uint   `json:"categoryId"`
	RowsAffected int64  `json:"-"`
}

// CategoryRepository defines the contract for category data access.
// Lookups return a nil category and a nil error when nothing matches.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	Create(ctx context.Context, fields CategoryFields) (*CategoryCreated, error)
	Update(ctx context.Context, id uint, fields CategoryFields) (*CategoryUpdated, error)
	Delete(ctx context.Context, id uint) (*CategoryDeletion, error)
}

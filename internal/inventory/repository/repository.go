package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/inventory-management/internal/inventory/domain"
	"github.com/tair/inventory-management/pkg/database"
)

type GormInventoryRepository struct {
	table *database.Table[domain.Item]
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{
		table: database.NewTable[domain.Item](db, "InventoryItem", "product_id"),
	}
}

func (r *GormInventoryRepository) List(ctx context.Context) ([]domain.Item, error) {
	return r.table.All(ctx)
}

func (r *GormInventoryRepository) FindByID(ctx context.Context, id uint) (*domain.Item, error) {
	return r.table.Get(ctx, id)
}

func (r *GormInventoryRepository) Create(ctx context.Context, fields domain.ItemFields) (*domain.ItemCreated, error) {
	row := &domain.Item{ItemFields: fields}
	if err := r.table.Insert(ctx, row); err != nil {
		return nil, err
	}
	return &domain.ItemCreated{ID: row.ProductID, ItemFields: fields}, nil
}

func (r *GormInventoryRepository) Update(ctx context.Context, id uint, fields domain.ItemFields) (*domain.ItemUpdated, error) {
	n, err := r.table.Update(ctx, id, fields.Columns())
	if err != nil {
		return nil, err
	}
	return &domain.ItemUpdated{ProductID: id, ItemFields: fields, RowsAffected: n}, nil
}

func (r *GormInventoryRepository) Delete(ctx context.Context, id uint) (*domain.ItemDeletion, error) {
	n, err := r.table.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.ItemDeletion{
		Message:      "Item deleted successfully",
		ProductID:    id,
		RowsAffected: n,
	}, nil
}

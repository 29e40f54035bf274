package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/inventory-management/internal/outofstock/domain"
	"github.com/tair/inventory-management/pkg/database"
)

type GormOutOfStockRepository struct {
	table *database.Table[domain.Item]
}

func NewGormOutOfStockRepository(db *gorm.DB) *GormOutOfStockRepository {
	return &GormOutOfStockRepository{
		table: database.NewTable[domain.Item](db, "OutOfStockItem", "product_id"),
	}
}

func (r *GormOutOfStockRepository) List(ctx context.Context) ([]domain.Item, error) {
	return r.table.All(ctx)
}

func (r *GormOutOfStockRepository) FindByID(ctx context.Context, id uint) (*domain.Item, error) {
	return r.table.Get(ctx, id)
}

func (r *GormOutOfStockRepository) Create(ctx context.Context, fields domain.ItemFields) (*domain.ItemCreated, error) {
	row := &domain.Item{ItemFields: fields}
	if err := r.table.Insert(ctx, row); err != nil {
		return nil, err
	}
	return &domain.ItemCreated{ID: row.ProductID, ItemFields: fields}, nil
}

func (r *GormOutOfStockRepository) Update(ctx context.Context, id uint, fields domain.ItemFields) (*domain.ItemUpdated, error) {
	n, err := r.table.Update(ctx, id, fields.Columns())
	if err != nil {
		return nil, err
	}
	return &domain.ItemUpdated{ProductID: id, ItemFields: fields, RowsAffected: n}, nil
}

func (r *GormOutOfStockRepository) Delete(ctx context.Context, id uint) (*domain.ItemDeletion, error) {
	n, err := r.table.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.ItemDeletion{
		Message:      "Out-of-stock item deleted successfully",
		ProductID:    id,
		RowsAffected: n,
	}, nil
}

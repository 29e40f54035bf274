package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/inventory-management/internal/inventorylog/domain"
	"github.com/tair/inventory-management/pkg/database"
)

type GormInventoryLogRepository struct {
	table *database.Table[domain.Log]
}

func NewGormInventoryLogRepository(db *gorm.DB) *GormInventoryLogRepository {
	return &GormInventoryLogRepository{
		table: database.NewTable[domain.Log](db, "InventoryLog", "log_id"),
	}
}

func (r *GormInventoryLogRepository) List(ctx context.Context) ([]domain.Log, error) {
	return r.table.All(ctx)
}

func (r *GormInventoryLogRepository) FindByID(ctx context.Context, id uint) (*domain.Log, error) {
	return r.table.Get(ctx, id)
}

func (r *GormInventoryLogRepository) ListByProduct(ctx context.Context, productID uint) ([]domain.Log, error) {
	return r.table.AllWhere(ctx, "product_id", productID)
}

func (r *GormInventoryLogRepository) Create(ctx context.Context, fields domain.LogFields) (*domain.LogCreated, error) {
	row := &domain.Log{LogFields: fields}
	if err := r.table.Insert(ctx, row); err != nil {
		return nil, err
	}
	return &domain.LogCreated{ID: row.LogID, LogFields: fields}, nil
}

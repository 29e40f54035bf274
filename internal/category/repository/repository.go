package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/inventory-management/internal/category/domain"
	"github.com/tair/inventory-management/pkg/database"
)

type GormCategoryRepository struct {
	table *database.Table[domain.Category]
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{
		table: database.NewTable[domain.Category](db, "Category", "category_id"),
	}
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	return r.table.All(ctx)
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	return r.table.Get(ctx, id)
}

func (r *GormCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	return r.table.GetWhere(ctx, "category_name", name)
}

func (r *GormCategoryRepository) Create(ctx context.Context, fields domain.CategoryFields) (*domain.CategoryCreated, error) {
	row := &domain.Category{CategoryFields: fields}
	if err := r.table.Insert(ctx, row); err != nil {
		return nil, err
	}
	return &domain.CategoryCreated{ID: row.CategoryID, CategoryFields: fields}, nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, id uint, fields domain.CategoryFields) (*domain.CategoryUpdated, error) {
	n, err := r.table.Update(ctx, id, fields.Columns())
	if err != nil {
		return nil, err
	}
	return &domain.CategoryUpdated{ID: id, CategoryFields: fields, RowsAffected: n}, nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id uint) (*domain.CategoryDeletion, error) {
	n, err := r.table.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.CategoryDeletion{
		Message:      "Category deleted successfully",
		CategoryID:   id,
		RowsAffected: n,
	}, nil
}

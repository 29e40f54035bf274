package database

import (
	"context"
	"errors"

	"github.com/iancoleman/strcase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/inventory-management/pkg/logger"
)

var tracer = otel.Tracer("inventory-repository")

type tabler interface {
	TableName() string
}

// Table is the single-table access shared by every resource repository.
// T is the row type; its TableName method names the table.
type Table[T any] struct {
	db       *gorm.DB
	resource string
	key      string
	name     string
}

// NewTable creates table access for resource rows of type T keyed by the key column
func NewTable[T any](db *gorm.DB, resource, key string) *Table[T] {
	var row T
	name := strcase.ToSnake(resource)
	if tn, ok := any(row).(tabler); ok {
		name = tn.TableName()
	}

	return &Table[T]{
		db:       db,
		resource: strcase.ToSnake(resource),
		key:      key,
		name:     name,
	}
}

// Name returns the table name
func (t *Table[T]) Name() string {
	return t.name
}

// All returns every row. An empty table yields an empty, non-nil slice.
func (t *Table[T]) All(ctx context.Context) ([]T, error) {
	ctx, span := t.start(ctx, "repository.All")
	defer span.End()

	rows := make([]T, 0)
	if err := t.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, t.fail(ctx, span, OpList, err)
	}
	if rows == nil {
		rows = make([]T, 0)
	}

	span.SetAttributes(attribute.Int("db.rows", len(rows)))
	return rows, nil
}

// AllWhere returns every row whose column equals value
func (t *Table[T]) AllWhere(ctx context.Context, column string, value any) ([]T, error) {
	ctx, span := t.start(ctx, "repository.AllWhere", attribute.String("db.column", column))
	defer span.End()

	rows := make([]T, 0)
	if err := t.db.WithContext(ctx).Where(column+" = ?", value).Find(&rows).Error; err != nil {
		return nil, t.fail(ctx, span, OpList, err)
	}
	if rows == nil {
		rows = make([]T, 0)
	}

	span.SetAttributes(attribute.Int("db.rows", len(rows)))
	return rows, nil
}

// Get returns the row with the given id, or nil when there is none
func (t *Table[T]) Get(ctx context.Context, id uint) (*T, error) {
	ctx, span := t.start(ctx, "repository.Get", attribute.Int64("db.id", int64(id)))
	defer span.End()

	var row T
	err := t.db.WithContext(ctx).Where(t.key+" = ?", id).Take(&row).Error
	return t.single(ctx, span, &row, err)
}

// GetWhere returns the first row, by id, whose column equals value, or nil when there is none
func (t *Table[T]) GetWhere(ctx context.Context, column string, value any) (*T, error) {
	ctx, span := t.start(ctx, "repository.GetWhere", attribute.String("db.column", column))
	defer span.End()

	var row T
	err := t.db.WithContext(ctx).Where(column+" = ?", value).Order(t.key).Take(&row).Error
	return t.single(ctx, span, &row, err)
}

// Insert writes row, a pointer to a model of this table. The generated id is set on row.
func (t *Table[T]) Insert(ctx context.Context, row any) error {
	ctx, span := t.start(ctx, "repository.Insert")
	defer span.End()

	if err := t.db.WithContext(ctx).Table(t.name).Create(row).Error; err != nil {
		return t.fail(ctx, span, OpCreate, err)
	}
	return nil
}

// Update overwrites the columns in values on the row with the given id and reports
// how many rows matched. Zero is not an error.
func (t *Table[T]) Update(ctx context.Context, id uint, values map[string]any) (int64, error) {
	ctx, span := t.start(ctx, "repository.Update", attribute.Int64("db.id", int64(id)))
	defer span.End()

	result := t.db.WithContext(ctx).Model(new(T)).Where(t.key+" = ?", id).Updates(values)
	if result.Error != nil {
		return 0, t.fail(ctx, span, OpUpdate, result.Error)
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", result.RowsAffected))
	return result.RowsAffected, nil
}

// Delete removes the row with the given id and reports how many rows matched.
// Zero is not an error.
func (t *Table[T]) Delete(ctx context.Context, id uint) (int64, error) {
	ctx, span := t.start(ctx, "repository.Delete", attribute.Int64("db.id", int64(id)))
	defer span.End()

	result := t.db.WithContext(ctx).Where(t.key+" = ?", id).Delete(new(T))
	if result.Error != nil {
		return 0, t.fail(ctx, span, OpDelete, result.Error)
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", result.RowsAffected))
	return result.RowsAffected, nil
}

func (t *Table[T]) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("db.table", t.name),
		attribute.String("repository.resource", t.resource),
	)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (t *Table[T]) single(ctx context.Context, span trace.Span, row *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		span.SetAttributes(attribute.Bool("db.found", false))
		return nil, nil
	}
	if err != nil {
		return nil, t.fail(ctx, span, OpGet, err)
	}

	span.SetAttributes(attribute.Bool("db.found", true))
	return row, nil
}

func (t *Table[T]) fail(ctx context.Context, span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	logger.Error(ctx).
		Err(err).
		Str("resource", t.resource).
		Str("table", t.name).
		Str("op", op).
		Msg("Repository operation failed")

	return &OperationError{
		Resource: t.resource,
		Op:       op,
		Conflict: errors.Is(err, gorm.ErrDuplicatedKey),
	}
}

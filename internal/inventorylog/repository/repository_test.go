package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tair/inventory-management/internal/inventorylog/domain"
	"github.com/tair/inventory-management/pkg/database/dbtest"
)

var logColumns = []string{"log_id", "product_id", "quantity_change", "action_type"}

func TestListByProduct(t *testing.T) {
	db, mock := dbtest.New(t)
	repo := NewGormInventoryLogRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "InventoryLogs" WHERE product_id = \$1`).
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows(logColumns).
			AddRow(1, 12, 5, "restock").
			AddRow(2, 12, -3, "sale"))

	logs, err := repo.ListByProduct(context.Background(), 12)
	if err != nil {
		t.Fatalf("ListByProduct failed: %v", err)
	}
	if len(logs) != 2 || *logs[1].QuantityChange != -3 || *logs[1].ActionType != domain.ActionSale {
		t.Errorf("unexpected logs %+v", logs)
	}
	dbtest.Verify(t, mock)
}

func TestListEmpty(t *testing.T) {
	db, mock := dbtest.New(t)
	repo := NewGormInventoryLogRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "InventoryLogs"`).WillReturnRows(sqlmock.NewRows(logColumns))

	logs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if logs == nil || len(logs) != 0 {
		t.Errorf("expected empty slice, got %#v", logs)
	}
}

func TestCreate(t *testing.T) {
	db, mock := dbtest.New(t)
	repo := NewGormInventoryLogRepository(db)

	mock.ExpectQuery(`INSERT INTO "InventoryLogs" \("product_id","quantity_change","action_type"\)`).
		WillReturnRows(sqlmock.NewRows([]string{"log_id"}).AddRow(40))

	productID := uint(12)
	change := 7
	action := domain.ActionAdjustment
	created, err := repo.Create(context.Background(), domain.LogFields{
		ProductID:      &productID,
		QuantityChange: &change,
		ActionType:     &action,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 40 || *created.QuantityChange != 7 {
		t.Errorf("unexpected echo %+v", created)
	}
	dbtest.Verify(t, mock)
}

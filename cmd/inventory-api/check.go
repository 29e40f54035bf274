package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	categorydomain "github.com/tair/inventory-management/internal/category/domain"
	employeedomain "github.com/tair/inventory-management/internal/employee/domain"
	inventorydomain "github.com/tair/inventory-management/internal/inventory/domain"
	logdomain "github.com/tair/inventory-management/internal/inventorylog/domain"
	outofstockdomain "github.com/tair/inventory-management/internal/outofstock/domain"
	supplierdomain "github.com/tair/inventory-management/internal/supplier/domain"
	"github.com/tair/inventory-management/pkg/config"
	"github.com/tair/inventory-management/pkg/database"
)

var checkTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check database connectivity and tables",
	Long: `Connect to the configured database and count the rows of every table the API serves.

Examples:
  inventory-api check
  inventory-api check --timeout 10s
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		db, err := database.NewGormConnection(cfg.Database)
		if err != nil {
			color.Red("❌ Database is not reachable")
			return err
		}
		defer database.Close(db)

		ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
		defer cancel()

		failed := checkTables(ctx, db)
		if failed > 0 {
			color.Red("❌ %d table(s) could not be read", failed)
			return fmt.Errorf("database check failed")
		}
		color.Green("✅ Database is healthy and accessible")
		return nil
	},
}

func init() {
	checkCmd.Flags().DurationVarP(&checkTimeout, "timeout", "t", 5*time.Second, "Timeout for the check")
}

func servedTables() []string {
	return []string{
		categorydomain.Category{}.TableName(),
		inventorydomain.Item{}.TableName(),
		outofstockdomain.Item{}.TableName(),
		logdomain.Log{}.TableName(),
		supplierdomain.Supplier{}.TableName(),
		employeedomain.Employee{}.TableName(),
	}
}

// checkTables prints a row count per table and returns how many tables failed
func checkTables(ctx context.Context, db *gorm.DB) int {
	failed := 0
	for _, table := range servedTables() {
		var count int64
		if err := db.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
			color.Yellow("⚠️  %s: %v", table, err)
			failed++
			continue
		}
		fmt.Printf("📊 %s: %d rows\n", table, count)
	}
	return failed
}

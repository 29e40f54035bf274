package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	categorydomain "github.com/tair/inventory-management/internal/category/domain"
	categoryhttp "github.com/tair/inventory-management/internal/category/delivery/http"
	categoryrepo "github.com/tair/inventory-management/internal/category/repository"
	employeedomain "github.com/tair/inventory-management/internal/employee/domain"
	employeehttp "github.com/tair/inventory-management/internal/employee/delivery/http"
	"github.com/tair/inventory-management/internal/employee/password"
	employeerepo "github.com/tair/inventory-management/internal/employee/repository"
	inventorydomain "github.com/tair/inventory-management/internal/inventory/domain"
	inventoryhttp "github.com/tair/inventory-management/internal/inventory/delivery/http"
	inventoryrepo "github.com/tair/inventory-management/internal/inventory/repository"
	logdomain "github.com/tair/inventory-management/internal/inventorylog/domain"
	loghttp "github.com/tair/inventory-management/internal/inventorylog/delivery/http"
	logrepo "github.com/tair/inventory-management/internal/inventorylog/repository"
	outofstockdomain "github.com/tair/inventory-management/internal/outofstock/domain"
	outofstockhttp "github.com/tair/inventory-management/internal/outofstock/delivery/http"
	outofstockrepo "github.com/tair/inventory-management/internal/outofstock/repository"
	supplierdomain "github.com/tair/inventory-management/internal/supplier/domain"
	supplierhttp "github.com/tair/inventory-management/internal/supplier/delivery/http"
	supplierrepo "github.com/tair/inventory-management/internal/supplier/repository"
	"github.com/tair/inventory-management/pkg/config"
	"github.com/tair/inventory-management/pkg/httpapi"
)

func ProvideCategoryRepository(db *gorm.DB) categorydomain.CategoryRepository {
	return categoryrepo.NewGormCategoryRepository(db)
}

func ProvideInventoryRepository(db *gorm.DB) inventorydomain.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(db)
}

func ProvideOutOfStockRepository(db *gorm.DB) outofstockdomain.OutOfStockRepository {
	return outofstockrepo.NewGormOutOfStockRepository(db)
}

func ProvideInventoryLogRepository(db *gorm.DB) logdomain.InventoryLogRepository {
	return logrepo.NewGormInventoryLogRepository(db)
}

func ProvideSupplierRepository(db *gorm.DB) supplierdomain.SupplierRepository {
	return supplierrepo.NewGormSupplierRepository(db)
}

func ProvideEmployeeRepository(db *gorm.DB) employeedomain.EmployeeRepository {
	return employeerepo.NewGormEmployeeRepository(db)
}

// ProvidePasswordScheme selects the employee password scheme named in the configuration
func ProvidePasswordScheme(cfg *config.Config) (employeedomain.PasswordScheme, error) {
	return password.New(cfg.Auth.PasswordScheme)
}

// ProvideMetrics registers the HTTP collectors on the registry
func ProvideMetrics(registry *prometheus.Registry) *httpapi.Metrics {
	return httpapi.NewMetrics(registry)
}

// ProvideMiddlewareConfig derives the middleware chain from the configuration
func ProvideMiddlewareConfig(cfg *config.Config) *httpapi.MiddlewareConfig {
	mw := httpapi.DefaultMiddlewareConfig()
	mw.EnableTracing = cfg.Tracing.Enabled
	mw.OperationName = cfg.ServiceName + "-http-request"
	return mw
}

var RepositorySet = wire.NewSet(
	ProvideCategoryRepository,
	ProvideInventoryRepository,
	ProvideOutOfStockRepository,
	ProvideInventoryLogRepository,
	ProvideSupplierRepository,
	ProvideEmployeeRepository,
)

var HandlerSet = wire.NewSet(
	categoryhttp.NewCategoryHandler,
	inventoryhttp.NewInventoryHandler,
	outofstockhttp.NewOutOfStockHandler,
	loghttp.NewInventoryLogHandler,
	supplierhttp.NewSupplierHandler,
	employeehttp.NewEmployeeHandler,
	wire.Struct(new(Handlers), "*"),
)

var AppSet = wire.NewSet(
	RepositorySet,
	HandlerSet,
	ProvidePasswordScheme,
	ProvideMetrics,
	ProvideMiddlewareConfig,
	NewApp,
)

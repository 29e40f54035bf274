package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	_ "github.com/tair/inventory-management/docs"
	categoryhttp "github.com/tair/inventory-management/internal/category/delivery/http"
	employeehttp "github.com/tair/inventory-management/internal/employee/delivery/http"
	inventoryhttp "github.com/tair/inventory-management/internal/inventory/delivery/http"
	inventoryloghttp "github.com/tair/inventory-management/internal/inventorylog/delivery/http"
	outofstockhttp "github.com/tair/inventory-management/internal/outofstock/delivery/http"
	supplierhttp "github.com/tair/inventory-management/internal/supplier/delivery/http"
	"github.com/tair/inventory-management/pkg/config"
	"github.com/tair/inventory-management/pkg/httpapi"
	"github.com/tair/inventory-management/pkg/logger"
)

// RouteTable is implemented by every resource handler
type RouteTable interface {
	RegisterRoutes(router *mux.Router)
}

// Handlers groups the resource handlers mounted by the application
type Handlers struct {
	Category     *categoryhttp.CategoryHandler
	Inventory    *inventoryhttp.InventoryHandler
	OutOfStock   *outofstockhttp.OutOfStockHandler
	InventoryLog *inventoryloghttp.InventoryLogHandler
	Supplier     *supplierhttp.SupplierHandler
	Employee     *employeehttp.EmployeeHandler
}

func (h *Handlers) routeTables() []RouteTable {
	return []RouteTable{h.Inventory, h.OutOfStock, h.Supplier, h.InventoryLog, h.Category, h.Employee}
}

// App is the assembled HTTP application
type App struct {
	cfg     *config.Config
	db      *gorm.DB
	router  *mux.Router
	handler http.Handler
}

// NewApp builds the router: middleware, resource route tables, operational endpoints and
// the static file server as the fallback
func NewApp(cfg *config.Config, db *gorm.DB, registry *prometheus.Registry, middleware *httpapi.MiddlewareConfig, handlers *Handlers) *App {
	router := mux.NewRouter()
	httpapi.RegisterMiddlewares(router, middleware)

	a := &App{cfg: cfg, db: db, router: router}

	router.HandleFunc("/health", a.health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	)).Methods(http.MethodGet)

	for _, table := range handlers.routeTables() {
		table.RegisterRoutes(router)
	}

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir))).
		Methods(http.MethodGet, http.MethodHead)

	a.handler = httpapi.SetupCORS(middleware)(router)

	logger.Logger.Info().
		Str("static_dir", cfg.Server.StaticDir).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/").
		Msg("Routes registered")

	return a
}

// Handler returns the root HTTP handler
func (a *App) Handler() http.Handler {
	return a.handler
}

// Server returns an HTTP server for the application bound to the configured port
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:         ":" + a.cfg.Server.Port,
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}
}

// health godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} httpapi.ErrorResponse
// @Router /health [get]
func (a *App) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Health check failed")
		httpapi.RespondError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-management/internal/inventorylog/domain"
	"github.com/tair/inventory-management/kafka"
	"github.com/tair/inventory-management/pkg/httpapi"
	"github.com/tair/inventory-management/pkg/logger"
)

const resource = "inventory_log"

const (
	msgNoLogs           = "No inventory logs found"
	msgNotFound         = "No inventory log found with this ID"
	msgNoLogsForProduct = "No logs found for this product"

	msgListFailed        = "Error fetching inventory logs"
	msgGetFailed         = "Error fetching inventory log by ID"
	msgProductLogsFailed = "Error fetching logs for product"
	msgCreateFailed      = "Error adding inventory log"
)

// InventoryLogHandler handles HTTP requests for inventory logs
type InventoryLogHandler struct {
	repo      domain.InventoryLogRepository
	publisher kafka.Publisher
	metrics   *httpapi.Metrics
}

// NewInventoryLogHandler creates a new inventory log handler
func NewInventoryLogHandler(repo domain.InventoryLogRepository, publisher kafka.Publisher, metrics *httpapi.Metrics) *InventoryLogHandler {
	return &InventoryLogHandler{repo: repo, publisher: publisher, metrics: metrics}
}

// RegisterRoutes registers the inventory log route table
func (h *InventoryLogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/inventory-logs", h.metrics.Instrument(resource, "list", h.ListLogs)).Methods(http.MethodGet)
	router.HandleFunc("/inventory-logs/product/{productId}", h.metrics.Instrument(resource, "list_by_product", h.ListProductLogs)).Methods(http.MethodGet)
	router.HandleFunc("/inventory-logs/{id}", h.metrics.Instrument(resource, "get", h.GetLog)).Methods(http.MethodGet)
	router.HandleFunc("/inventory-logs", h.metrics.Instrument(resource, "create", h.CreateLog)).Methods(http.MethodPost)
}

// ListLogs godoc
// @Summary List inventory logs
// @Tags InventoryLogs
// @Produce json
// @Success 200 {array} domain.Log
// @Failure 404 {object} httpapi.ErrorResponse "No logs recorded"
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory-logs [get]
func (h *InventoryLogHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.repo.List(r.Context())
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}
	if len(logs) == 0 {
		httpapi.RespondError(w, http.StatusNotFound, msgNoLogs)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, logs)
}

// GetLog godoc
// @Summary Get inventory log by ID
// @Tags InventoryLogs
// @Produce json
// @Param id path int true "Log ID"
// @Success 200 {object} domain.Log
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory-logs/{id} [get]
func (h *InventoryLogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.PathID(r, "id")
	if !ok {
		httpapi.RespondError(w, http.StatusNotFound, msgNotFound)
		return
	}

	log, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgGetFailed)
		return
	}
	if log == nil {
		httpapi.RespondError(w, http.StatusNotFound, msgNotFound)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, log)
}

// ListProductLogs godoc
// @Summary List logs for a product
// @Tags InventoryLogs
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {array} domain.Log
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory-logs/product/{productId} [get]
func (h *InventoryLogHandler) ListProductLogs(w http.ResponseWriter, r *http.Request) {
	productID, ok := httpapi.PathID(r, "productId")
	if !ok {
		httpapi.RespondError(w, http.StatusNotFound, msgNoLogsForProduct)
		return
	}

	logs, err := h.repo.ListByProduct(r.Context(), productID)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgProductLogsFailed)
		return
	}
	if len(logs) == 0 {
		httpapi.RespondError(w, http.StatusNotFound, msgNoLogsForProduct)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, logs)
}

// CreateLog godoc
// @Summary Record an inventory change
// @Description action_type is one of restock, sale, adjustment but is not validated
// @Tags InventoryLogs
// @Accept json
// @Produce json
// @Param request body domain.LogFields true "Log data"
// @Success 201 {object} domain.LogCreated
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory-logs [post]
func (h *InventoryLogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var fields domain.LogFields
	if err := httpapi.DecodeJSON(r, &fields); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, httpapi.MessageInvalidBody)
		return
	}

	created, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	err = h.publisher.PublishInventoryLogRecorded(r.Context(), kafka.InventoryLogRecordedEvent{
		LogID:          created.ID,
		ProductID:      fields.ProductID,
		QuantityChange: fields.QuantityChange,
		ActionType:     fields.ActionType,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint("log_id", created.ID).Msg("Failed to publish inventory log event")
	}

	httpapi.RespondJSON(w, http.StatusCreated, created)
}

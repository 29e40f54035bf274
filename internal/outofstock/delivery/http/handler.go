package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-management/internal/outofstock/domain"
	"github.com/tair/inventory-management/kafka"
	"github.com/tair/inventory-management/pkg/httpapi"
	"github.com/tair/inventory-management/pkg/logger"
)

const resource = "out_of_stock_item"

const (
	msgNotFound  = "No out-of-stock item found"
	msgInvalidID = "Invalid out-of-stock item ID"

	msgListFailed   = "Error fetching all out-of-stock items"
	msgGetFailed    = "Error fetching out-of-stock item by ID"
	msgCreateFailed = "Error adding new out-of-stock item"
	msgUpdateFailed = "Error updating out-of-stock item"
	msgDeleteFailed = "Error deleting out-of-stock item"
)

// OutOfStockHandler handles HTTP requests for out-of-stock items
type OutOfStockHandler struct {
	repo      domain.OutOfStockRepository
	publisher kafka.Publisher
	metrics   *httpapi.Metrics
}

// NewOutOfStockHandler creates a new out-of-stock handler
func NewOutOfStockHandler(repo domain.OutOfStockRepository, publisher kafka.Publisher, metrics *httpapi.Metrics) *OutOfStockHandler {
	return &OutOfStockHandler{repo: repo, publisher: publisher, metrics: metrics}
}

// RegisterRoutes registers the out-of-stock route table
func (h *OutOfStockHandler) RegisterRoutes(router *mux.Router) {
	const prefix = "/inventory-out-of-stock"
	router.HandleFunc(prefix, h.metrics.Instrument(resource, "list", h.ListItems)).Methods(http.MethodGet)
	router.HandleFunc(prefix+"/{id}", h.metrics.Instrument(resource, "get", h.GetItem)).Methods(http.MethodGet)
	router.HandleFunc(prefix, h.metrics.Instrument(resource, "create", h.CreateItem)).Methods(http.MethodPost)
	router.HandleFunc(prefix+"/{id}", h.metrics.Instrument(resource, "update", h.UpdateItem)).Methods(http.MethodPut)
	router.HandleFunc(prefix+"/{id}", h.metrics.Instrument(resource, "delete", h.DeleteItem)).Methods(http.MethodDelete)
}

// ListItems godoc
// @Summary List out-of-stock items
// @Tags OutOfStock
// @Produce json
// @Success 200 {array} domain.Item
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory-out-of-stock [get]
func (h *OutOfStockHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, items)
}

// GetItem godoc
// @Summary Get out-of-stock item by ID
// @Tags OutOfStock
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory-out-of-stock/{id} [get]
func (h *OutOfStockHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.PathID(r, "id")
	if !ok {
		httpapi.RespondError(w, http.StatusNotFound, msgNotFound)
		return
	}

	item, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgGetFailed)
		return
	}
	if item == nil {
		httpapi.RespondError(w, http.StatusNotFound, msgNotFound)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, item)
}

// CreateItem godoc
// @Summary Create out-of-stock item
// @Tags OutOfStock
// @Accept json
// @Produce json
// @Param request body domain.ItemFields true "Item data"
// @Success 201 {object} domain.ItemCreated
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory-out-of-stock [post]
func (h *OutOfStockHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var fields domain.ItemFields
	if err := httpapi.DecodeJSON(r, &fields); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, httpapi.MessageInvalidBody)
		return
	}

	created, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	h.publish(r.Context(), created.ID, kafka.ChangeCreated)
	httpapi.RespondJSON(w, http.StatusCreated, created)
}

// UpdateItem godoc
// @Summary Update out-of-stock item
// @Description Overwrites the item without checking that it exists. X-Rows-Affected reports how many rows matched.
// @Tags OutOfStock
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body domain.ItemFields true "Item data"
// @Success 200 {object} domain.ItemUpdated
// @Header 200 {integer} X-Rows-Affected "Matched rows"
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory-out-of-stock/{id} [put]
func (h *OutOfStockHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.PathID(r, "id")
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var fields domain.ItemFields
	if err := httpapi.DecodeJSON(r, &fields); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, httpapi.MessageInvalidBody)
		return
	}

	updated, err := h.repo.Update(r.Context(), id, fields)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgUpdateFailed)
		return
	}

	httpapi.ReportRowsAffected(w, r, resource, "update", id, updated.RowsAffected)
	if updated.RowsAffected > 0 {
		h.publish(r.Context(), id, kafka.ChangeUpdated)
	}
	httpapi.RespondJSON(w, http.StatusOK, updated)
}

// DeleteItem godoc
// @Summary Delete out-of-stock item
// @Tags OutOfStock
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.ItemDeletion
// @Header 200 {integer} X-Rows-Affected "Matched rows"
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory-out-of-stock/{id} [delete]
func (h *OutOfStockHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.PathID(r, "id")
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	deletion, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgDeleteFailed)
		return
	}

	httpapi.ReportRowsAffected(w, r, resource, "delete", id, deletion.RowsAffected)
	if deletion.RowsAffected > 0 {
		h.publish(r.Context(), id, kafka.ChangeDeleted)
	}
	httpapi.RespondJSON(w, http.StatusOK, deletion)
}

func (h *OutOfStockHandler) publish(ctx context.Context, productID uint, change string) {
	err := h.publisher.PublishInventoryItemChanged(ctx, kafka.InventoryItemChangedEvent{
		ProductID: productID,
		Stock:     kafka.StockOutOfStock,
		Change:    change,
	})
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("product_id", productID).Str("change", change).Msg("Failed to publish inventory event")
	}
}

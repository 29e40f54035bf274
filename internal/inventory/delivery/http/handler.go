package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-management/internal/inventory/domain"
	"github.com/tair/inventory-management/kafka"
	"github.com/tair/inventory-management/pkg/httpapi"
	"github.com/tair/inventory-management/pkg/logger"
)

const resource = "inventory_item"

const (
	msgNotFound  = "No item found with this ID"
	msgInvalidID = "Invalid item ID"

	msgListFailed   = "Error fetching all inventory items"
	msgGetFailed    = "Error fetching inventory item by ID"
	msgCreateFailed = "Error adding new inventory item"
	msgUpdateFailed = "Error updating inventory item"
	msgDeleteFailed = "Error deleting inventory item"
)

// InventoryHandler handles HTTP requests for in-stock inventory
type InventoryHandler struct {
	repo      domain.InventoryRepository
	publisher kafka.Publisher
	metrics   *httpapi.Metrics
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(repo domain.InventoryRepository, publisher kafka.Publisher, metrics *httpapi.Metrics) *InventoryHandler {
	return &InventoryHandler{repo: repo, publisher: publisher, metrics: metrics}
}

// RegisterRoutes registers the inventory route table
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/inventory", h.metrics.Instrument(resource, "list", h.ListInventory)).Methods(http.MethodGet)
	router.HandleFunc("/inventory/{id}", h.metrics.Instrument(resource, "get", h.GetInventory)).Methods(http.MethodGet)
	router.HandleFunc("/inventory", h.metrics.Instrument(resource, "create", h.CreateInventory)).Methods(http.MethodPost)
	router.HandleFunc("/inventory/{id}", h.metrics.Instrument(resource, "update", h.UpdateInventory)).Methods(http.MethodPut)
	router.HandleFunc("/inventory/{id}", h.metrics.Instrument(resource, "delete", h.DeleteInventory)).Methods(http.MethodDelete)
}

// ListInventory godoc
// @Summary List in-stock items
// @Tags Inventory
// @Produce json
// @Success 200 {array} domain.Item
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory [get]
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, items)
}

// GetInventory godoc
// @Summary Get in-stock item by ID
// @Tags Inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory/{id} [get]
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
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

// CreateInventory godoc
// @Summary Create in-stock item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body domain.ItemFields true "Item data"
// @Success 201 {object} domain.ItemCreated
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory [post]
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
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

	h.publish(r.Context(), created.ID, kafka.ChangeCreated, fields.Quantity)
	httpapi.RespondJSON(w, http.StatusCreated, created)
}

// UpdateInventory godoc
// @Summary Update in-stock item
// @Description Overwrites the item without checking that it exists. X-Rows-Affected reports how many rows matched.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body domain.ItemFields true "Item data"
// @Success 200 {object} domain.ItemUpdated
// @Header 200 {integer} X-Rows-Affected "Matched rows"
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory/{id} [put]
func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
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
		h.publish(r.Context(), id, kafka.ChangeUpdated, fields.Quantity)
	}
	httpapi.RespondJSON(w, http.StatusOK, updated)
}

// DeleteInventory godoc
// @Summary Delete in-stock item
// @Tags Inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.ItemDeletion
// @Header 200 {integer} X-Rows-Affected "Matched rows"
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
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
		h.publish(r.Context(), id, kafka.ChangeDeleted, nil)
	}
	httpapi.RespondJSON(w, http.StatusOK, deletion)
}

// publish emits an item change event. A failure is logged and does not change the response.
func (h *InventoryHandler) publish(ctx context.Context, productID uint, change string, quantity *int) {
	err := h.publisher.PublishInventoryItemChanged(ctx, kafka.InventoryItemChangedEvent{
		ProductID: productID,
		Stock:     kafka.StockInStock,
		Change:    change,
		Quantity:  quantity,
	})
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("product_id", productID).Str("change", change).Msg("Failed to publish inventory event")
	}
}

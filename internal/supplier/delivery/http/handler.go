package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-management/internal/supplier/domain"
	"github.com/tair/inventory-management/pkg/httpapi"
	"github.com/tair/inventory-management/pkg/logger"
)

const resource = "supplier"

const (
	msgNoSuppliers       = "No suppliers found"
	msgNotFoundByID      = "No supplier found with this ID"
	msgNotFoundByName    = "No supplier found with this name"
	msgNotFoundByContact = "No supplier found with this contact information"
	msgInvalidID         = "Invalid supplier ID"

	msgListFailed          = "Error fetching suppliers"
	msgGetFailed           = "Error fetching supplier by ID"
	msgLookupNameFailed    = "Error fetching supplier by name"
	msgLookupContactFailed = "Error fetching supplier by contact info"
	msgCreateFailed        = "Error adding new supplier"
	msgUpdateFailed        = "Error updating supplier"
	msgDeleteFailed        = "Error deleting supplier"
)

// UpdateSupplierRequest is the body of a supplier update. SupplierID takes precedence
// over an id in the path.
type UpdateSupplierRequest struct {
	SupplierID *uint `json:"supplier_id,omitempty"`
	domain.SupplierFields
}

// SupplierHandler handles HTTP requests for suppliers
type SupplierHandler struct {
	repo    domain.SupplierRepository
	metrics *httpapi.Metrics
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(repo domain.SupplierRepository, metrics *httpapi.Metrics) *SupplierHandler {
	return &SupplierHandler{repo: repo, metrics: metrics}
}

// RegisterRoutes registers the supplier route table
func (h *SupplierHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/suppliers", h.metrics.Instrument(resource, "list", h.ListSuppliers)).Methods(http.MethodGet)
	router.HandleFunc("/suppliers/id/{id}", h.metrics.Instrument(resource, "get", h.GetSupplier)).Methods(http.MethodGet)
	router.HandleFunc("/suppliers/name/{name}", h.metrics.Instrument(resource, "get_by_name", h.GetSupplierByName)).Methods(http.MethodGet)
	router.HandleFunc("/suppliers/contact/{contact}", h.metrics.Instrument(resource, "get_by_contact", h.GetSupplierByContactInfo)).Methods(http.MethodGet)
	router.HandleFunc("/suppliers", h.metrics.Instrument(resource, "create", h.CreateSupplier)).Methods(http.MethodPost)
	router.HandleFunc("/suppliers", h.metrics.Instrument(resource, "update", h.UpdateSupplier)).Methods(http.MethodPut)
	router.HandleFunc("/suppliers/{id}", h.metrics.Instrument(resource, "update", h.UpdateSupplier)).Methods(http.MethodPut)
	router.HandleFunc("/suppliers/{id}", h.metrics.Instrument(resource, "delete", h.DeleteSupplier)).Methods(http.MethodDelete)
}

// ListSuppliers godoc
// @Summary List suppliers
// @Tags Suppliers
// @Produce json
// @Success 200 {array} domain.Supplier
// @Failure 404 {object} httpapi.ErrorResponse "No suppliers recorded"
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.repo.List(r.Context())
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}
	if len(suppliers) == 0 {
		httpapi.RespondError(w, http.StatusNotFound, msgNoSuppliers)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, suppliers)
}

// GetSupplier godoc
// @Summary Get supplier by ID
// @Tags Suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} domain.Supplier
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /suppliers/id/{id} [get]
func (h *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.PathID(r, "id")
	if !ok {
		httpapi.RespondError(w, http.StatusNotFound, msgNotFoundByID)
		return
	}

	supplier, err := h.repo.FindByID(r.Context(), id)
	h.respondLookup(w, supplier, err, msgGetFailed, msgNotFoundByID)
}

// GetSupplierByName godoc
// @Summary Get supplier by name
// @Description Returns the lowest-id supplier when several share the name
// @Tags Suppliers
// @Produce json
// @Param name path string true "Supplier name"
// @Success 200 {object} domain.Supplier
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /suppliers/name/{name} [get]
func (h *SupplierHandler) GetSupplierByName(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.repo.FindByName(r.Context(), mux.Vars(r)["name"])
	h.respondLookup(w, supplier, err, msgLookupNameFailed, msgNotFoundByName)
}

// GetSupplierByContactInfo godoc
// @Summary Get supplier by contact information
// @Description Returns the lowest-id supplier when several share the contact information
// @Tags Suppliers
// @Produce json
// @Param contact path string true "Contact information"
// @Success 200 {object} domain.Supplier
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /suppliers/contact/{contact} [get]
func (h *SupplierHandler) GetSupplierByContactInfo(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.repo.FindByContactInfo(r.Context(), mux.Vars(r)["contact"])
	h.respondLookup(w, supplier, err, msgLookupContactFailed, msgNotFoundByContact)
}

func (h *SupplierHandler) respondLookup(w http.ResponseWriter, supplier *domain.Supplier, err error, failed, notFound string) {
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, failed)
		return
	}
	if supplier == nil {
		httpapi.RespondError(w, http.StatusNotFound, notFound)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, supplier)
}

// CreateSupplier godoc
// @Summary Create supplier
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param request body domain.SupplierFields true "Supplier data"
// @Success 201 {object} domain.SupplierCreated
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var fields domain.SupplierFields
	if err := httpapi.DecodeJSON(r, &fields); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, httpapi.MessageInvalidBody)
		return
	}

	created, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	logger.Info(r.Context()).Uint("supplier_id", created.ID).Msg("Supplier created")
	httpapi.RespondJSON(w, http.StatusCreated, created)
}

// UpdateSupplier godoc
// @Summary Update supplier
// @Description The supplier is identified by supplier_id in the body, or by the path id on PUT /suppliers/{id}. The update is blind; X-Rows-Affected reports how many rows matched.
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param id path int false "Supplier ID (legacy route)"
// @Param request body UpdateSupplierRequest true "Supplier data"
// @Success 200 {object} domain.SupplierUpdated
// @Header 200 {integer} X-Rows-Affected "Matched rows"
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /suppliers [put]
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	var req UpdateSupplierRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, httpapi.MessageInvalidBody)
		return
	}

	id, ok := httpapi.PathID(r, "id")
	if req.SupplierID != nil {
		id, ok = *req.SupplierID, true
	}
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	updated, err := h.repo.Update(r.Context(), id, req.SupplierFields)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgUpdateFailed)
		return
	}

	httpapi.ReportRowsAffected(w, r, resource, "update", id, updated.RowsAffected)
	httpapi.RespondJSON(w, http.StatusOK, updated)
}

// DeleteSupplier godoc
// @Summary Delete supplier
// @Description Deletes without checking for dependent inventory rows
// @Tags Suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} domain.SupplierDeletion
// @Header 200 {integer} X-Rows-Affected "Matched rows"
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
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
	httpapi.RespondJSON(w, http.StatusOK, deletion)
}

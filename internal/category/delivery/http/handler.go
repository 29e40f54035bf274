package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/inventory-management/internal/category/domain"
	"github.com/tair/inventory-management/pkg/httpapi"
	"github.com/tair/inventory-management/pkg/logger"
)

const resource = "category"

const (
	msgNotFoundByID   = "Category not found by this ID"
	msgNotFoundByName = "Category not found by this name"
	msgInvalidID      = "Invalid category ID"

	msgListFailed   = "Error occurred while retrieving categories."
	msgGetFailed    = "Error occurred while retrieving category by ID."
	msgLookupFailed = "Error occurred while retrieving category by name."
	msgCreateFailed = "Error occurred while adding category."
	msgUpdateFailed = "Error occurred while updating category."
	msgDeleteFailed = "Error occurred while deleting category."
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	repo    domain.CategoryRepository
	metrics *httpapi.Metrics
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(repo domain.CategoryRepository, metrics *httpapi.Metrics) *CategoryHandler {
	return &CategoryHandler{repo: repo, metrics: metrics}
}

// RegisterRoutes registers the category route table
func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/categories", h.metrics.Instrument(resource, "list", h.ListCategories)).Methods(http.MethodGet)
	router.HandleFunc("/categories/name/{name}", h.metrics.Instrument(resource, "get_by_name", h.GetCategoryByName)).Methods(http.MethodGet)
	router.HandleFunc("/categories/{id}", h.metrics.Instrument(resource, "get", h.GetCategory)).Methods(http.MethodGet)
	router.HandleFunc("/categories", h.metrics.Instrument(resource, "create", h.CreateCategory)).Methods(http.MethodPost)
	router.HandleFunc("/categories/{id}", h.metrics.Instrument(resource, "update", h.UpdateCategory)).Methods(http.MethodPut)
	router.HandleFunc("/categories/{id}", h.metrics.Instrument(resource, "delete", h.DeleteCategory)).Methods(http.MethodDelete)
}

// ListCategories godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.List(r.Context())
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get category by ID
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.PathID(r, "id")
	if !ok {
		httpapi.RespondError(w, http.StatusNotFound, msgNotFoundByID)
		return
	}

	category, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgGetFailed)
		return
	}
	if category == nil {
		httpapi.RespondError(w, http.StatusNotFound, msgNotFoundByID)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, category)
}

// GetCategoryByName godoc
// @Summary Get category by name
// @Description Returns the lowest-id category when several share the name
// @Tags Categories
// @Produce json
// @Param name path string true "Category name"
// @Success 200 {object} domain.Category
// @Failure 404 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /categories/name/{name} [get]
func (h *CategoryHandler) GetCategoryByName(w http.ResponseWriter, r *http.Request) {
	category, err := h.repo.FindByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgLookupFailed)
		return
	}
	if category == nil {
		httpapi.RespondError(w, http.StatusNotFound, msgNotFoundByName)
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, category)
}

// CreateCategory godoc
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body domain.CategoryFields true "Category data"
// @Success 201 {object} domain.CategoryCreated
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var fields domain.CategoryFields
	if err := httpapi.DecodeJSON(r, &fields); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, httpapi.MessageInvalidBody)
		return
	}

	created, err := h.repo.Create(r.Context(), fields)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, msgCreateFailed)
		return
	}

	logger.Info(r.Context()).Uint("category_id", created.ID).Msg("Category created")
	httpapi.RespondJSON(w, http.StatusCreated, created)
}

// UpdateCategory godoc
// @Summary Update category
// @Description Overwrites the category without checking that it exists. X-Rows-Affected reports how many rows matched.
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body domain.CategoryFields true "Category data"
// @Success 200 {object} domain.CategoryUpdated
// @Header 200 {integer} X-Rows-Affected "Matched rows"
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.PathID(r, "id")
	if !ok {
		httpapi.RespondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var fields domain.CategoryFields
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
	httpapi.RespondJSON(w, http.StatusOK, updated)
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Deletes without checking for dependent inventory rows
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} domain.CategoryDeletion
// @Header 200 {integer} X-Rows-Affected "Matched rows"
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 500 {object} httpapi.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
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

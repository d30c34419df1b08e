package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"backoffice-console/internal/draft"
	"backoffice-console/internal/models"
	"backoffice-console/internal/services"

	"github.com/gorilla/mux"
)

// DraftHandler exposes the draft sale operations over HTTP
type DraftHandler struct {
	draft *draft.Draft
	sales *services.SaleService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(d *draft.Draft, sales *services.SaleService) *DraftHandler {
	return &DraftHandler{
		draft: d,
		sales: sales,
	}
}

// Get handles GET /v1/draft - current draft snapshot
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.draft.Snapshot())
}

// SetClient handles PUT /v1/draft/client
func (h *DraftHandler) SetClient(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClientID int64 `json:"client_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid JSON", nil)
		return
	}

	if err := h.draft.SetClient(req.ClientID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, h.draft.Snapshot())
}

// AddItem handles POST /v1/draft/items
func (h *DraftHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int64 `json:"product_id"`
		Cantidad  int   `json:"cantidad"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid JSON", nil)
		return
	}

	if err := h.draft.AddItem(req.ProductID, req.Cantidad); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, h.draft.Snapshot())
}

// RemoveItem handles DELETE /v1/draft/items/{index} - positional removal.
// Indices shift after every mutation, so callers must take them from a fresh
// snapshot.
func (h *DraftHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Index must be a number", []models.ErrorDetail{
			{Field: "index", Issue: "not a number"},
		})
		return
	}

	if err := h.draft.RemoveItem(index); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, h.draft.Snapshot())
}

// RemoveProduct handles DELETE /v1/draft/products/{productId} - stable-key removal
func (h *DraftHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productID, err := strconv.ParseInt(vars["productId"], 10, 64)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Product ID must be a number", []models.ErrorDetail{
			{Field: "productId", Issue: "not a number"},
		})
		return
	}

	if err := h.draft.RemoveProduct(productID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, h.draft.Snapshot())
}

// Reset handles POST /v1/draft/reset
func (h *DraftHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.draft.Reset()
	writeJSONResponse(w, http.StatusOK, h.draft.Snapshot())
}

// Submit handles POST /v1/draft/submit - the submission pipeline
func (h *DraftHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.sales.Submit()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusCreated, result)
}

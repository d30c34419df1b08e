package handlers

import (
	"encoding/json"
	"net/http"

	"backoffice-console/internal/catalog"
	"backoffice-console/internal/models"
	"backoffice-console/internal/services"
)

// CatalogHandler serves the cached catalog snapshots and the create proxies
type CatalogHandler struct {
	cache    *catalog.Cache
	products *services.ProductService
	clients  *services.ClientService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cache *catalog.Cache, products *services.ProductService, clients *services.ClientService) *CatalogHandler {
	return &CatalogHandler{
		cache:    cache,
		products: products,
		clients:  clients,
	}
}

// ListProducts handles GET /v1/catalog/products - cached product snapshot
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.cache.Products())
}

// ListClients handles GET /v1/catalog/clients - cached client snapshot
func (h *CatalogHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, h.cache.Clients())
}

// Load handles POST /v1/catalog/load - full all-or-nothing reload
func (h *CatalogHandler) Load(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.Load(); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]int{
		"products": len(h.cache.Products()),
		"clients":  len(h.cache.Clients()),
	})
}

// RefreshProducts handles POST /v1/catalog/refresh-products
func (h *CatalogHandler) RefreshProducts(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.RefreshProducts(); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]int{
		"products": len(h.cache.Products()),
	})
}

// CreateProduct handles POST /v1/products - validated create proxy
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid JSON", nil)
		return
	}

	created, err := h.products.Create(product)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusCreated, created)
}

// CreateClient handles POST /v1/clients - validated create proxy
func (h *CatalogHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Invalid JSON", nil)
		return
	}

	created, err := h.clients.Create(client)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusCreated, created)
}

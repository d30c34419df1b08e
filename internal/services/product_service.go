package services

import (
	"log/slog"

	"backoffice-console/internal/catalog"
	"backoffice-console/internal/models"
	"backoffice-console/internal/upstream"
)

// ProductService validates and proxies product creation to the upstream API
type ProductService struct {
	api     *upstream.Client
	catalog *catalog.Cache
}

// NewProductService creates a new product service
func NewProductService(api *upstream.Client, cache *catalog.Cache) *ProductService {
	return &ProductService{api: api, catalog: cache}
}

// Create validates the product locally before sending it upstream. On success
// the product snapshot is refreshed best-effort so the new product becomes
// addable to drafts.
func (s *ProductService) Create(p models.Product) (*models.Product, error) {
	if p.Nombre == "" || p.Stock < 0 || p.Precio <= 0 {
		return nil, models.ErrInvalidInput
	}

	created, err := s.api.CreateProduct(p)
	if err != nil {
		return nil, err
	}

	slog.Info("Product created", "product_id", created.ID, "nombre", created.Nombre)

	if err := s.catalog.RefreshProducts(); err != nil {
		slog.Warn("Product snapshot refresh after create failed", "error", err)
	}
	return created, nil
}

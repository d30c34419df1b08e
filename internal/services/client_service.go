package services

import (
	"log/slog"

	"backoffice-console/internal/catalog"
	"backoffice-console/internal/models"
	"backoffice-console/internal/upstream"
)

// ClientService validates and proxies client creation to the upstream API
type ClientService struct {
	api     *upstream.Client
	catalog *catalog.Cache
}

// NewClientService creates a new client service
func NewClientService(api *upstream.Client, cache *catalog.Cache) *ClientService {
	return &ClientService{api: api, catalog: cache}
}

// Create validates the client locally before sending it upstream. On success
// both catalog snapshots are reloaded best-effort so the new client becomes
// selectable for drafts.
func (s *ClientService) Create(c models.Client) (*models.Client, error) {
	if c.Nombre == "" || c.Cedula == "" || c.Email == "" {
		return nil, models.ErrInvalidInput
	}

	created, err := s.api.CreateClient(c)
	if err != nil {
		return nil, err
	}

	slog.Info("Client created", "client_id", created.ID, "nombre", created.Nombre)

	if err := s.catalog.Load(); err != nil {
		slog.Warn("Catalog reload after client create failed", "error", err)
	}
	return created, nil
}

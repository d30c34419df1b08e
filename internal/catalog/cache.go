package catalog

import (
	"log/slog"
	"sync"

	"backoffice-console/internal/models"
	"backoffice-console/internal/upstream"

	"golang.org/x/sync/errgroup"
)

// Cache holds the last-fetched snapshots of the upstream product and client
// catalogs. Snapshots are replaced wholesale, never patched in place.
type Cache struct {
	mu       sync.RWMutex
	products []models.Product
	clients  []models.Client
	loaded   bool

	api *upstream.Client
}

// NewCache creates an empty catalog cache backed by the given API client
func NewCache(api *upstream.Client) *Cache {
	return &Cache{api: api}
}

// Load fetches products and clients concurrently and commits both snapshots
// only if both fetches succeed. On any failure neither snapshot changes and
// the error is returned to the caller.
func (c *Cache) Load() error {
	var (
		products []models.Product
		clients  []models.Client
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		products, err = c.api.ListProducts()
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = c.api.ListClients()
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Warn("Catalog load failed, keeping previous snapshots", "error", err)
		return err
	}

	c.mu.Lock()
	c.products = products
	c.clients = clients
	c.loaded = true
	c.mu.Unlock()

	slog.Info("Catalog loaded", "products", len(products), "clients", len(clients))
	return nil
}

// RefreshProducts re-fetches and replaces only the product snapshot. Used
// after a sale, when server-side stock has changed.
func (c *Cache) RefreshProducts() error {
	products, err := c.api.ListProducts()
	if err != nil {
		slog.Warn("Product refresh failed, keeping previous snapshot", "error", err)
		return err
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	slog.Debug("Product snapshot refreshed", "products", len(products))
	return nil
}

// FindProduct looks up a product by id in the cached snapshot
func (c *Cache) FindProduct(id int64) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// FindClient looks up a client by id in the cached snapshot
func (c *Cache) FindClient(id int64) (models.Client, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, cl := range c.clients {
		if cl.ID == id {
			return cl, true
		}
	}
	return models.Client{}, false
}

// Products returns a copy of the cached product snapshot
func (c *Cache) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Clients returns a copy of the cached client snapshot
func (c *Cache) Clients() []models.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Client, len(c.clients))
	copy(out, c.clients)
	return out
}

// Loaded reports whether an initial Load has ever succeeded
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

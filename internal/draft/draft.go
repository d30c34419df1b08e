package draft

import (
	"fmt"
	"log/slog"
	"sync"

	"backoffice-console/internal/models"

	"github.com/google/uuid"
)

// ProductFinder resolves a product id against the current catalog snapshot
type ProductFinder interface {
	FindProduct(id int64) (models.Product, bool)
}

// Draft is the operator's in-progress sale: a selected client plus an ordered
// list of line items, one per distinct product. The unit price is captured
// from the catalog when a line is added and is not re-synced afterwards, so a
// draft keeps stable prices even if the catalog refreshes mid-session.
type Draft struct {
	mu       sync.Mutex
	id       string
	clientID int64
	items    []models.SaleItem
	total    float64

	catalog ProductFinder
}

// New creates an empty draft resolving products through the given finder
func New(catalog ProductFinder) *Draft {
	return &Draft{
		id:      uuid.NewString(),
		catalog: catalog,
	}
}

// SetClient replaces the selected client id
func (d *Draft) SetClient(clientID int64) error {
	if clientID <= 0 {
		return models.ErrInvalidInput
	}

	d.mu.Lock()
	d.clientID = clientID
	d.mu.Unlock()

	slog.Debug("Draft client set", "client_id", clientID)
	return nil
}

// AddItem adds cantidad units of a product to the draft. If a line for the
// product already exists its quantity is incremented instead of appending a
// duplicate line.
func (d *Draft) AddItem(productID int64, cantidad int) error {
	if productID <= 0 || cantidad <= 0 {
		return models.ErrInvalidInput
	}

	product, ok := d.catalog.FindProduct(productID)
	if !ok {
		return fmt.Errorf("product %d not in catalog: %w", productID, models.ErrInvalidInput)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.items {
		if d.items[i].ProductID == productID {
			d.items[i].Cantidad += cantidad
			d.recalculate()
			slog.Debug("Draft line merged", "product_id", productID, "cantidad", d.items[i].Cantidad)
			return nil
		}
	}

	d.items = append(d.items, models.SaleItem{
		ProductID:      productID,
		Nombre:         product.Nombre,
		Cantidad:       cantidad,
		PrecioUnitario: product.Precio,
	})
	d.recalculate()

	slog.Debug("Draft line added", "product_id", productID, "cantidad", cantidad, "precio_unitario", product.Precio)
	return nil
}

// RemoveItem removes the line at the given position. Subsequent lines shift
// down one position, so callers must re-read the snapshot before reusing
// indices.
func (d *Draft) RemoveItem(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index < 0 || index >= len(d.items) {
		return models.ErrOutOfRange
	}

	d.items = append(d.items[:index], d.items[index+1:]...)
	d.recalculate()

	slog.Debug("Draft line removed", "index", index, "remaining", len(d.items))
	return nil
}

// RemoveProduct removes the line for the given product id. Unlike RemoveItem
// the key stays valid across other mutations.
func (d *Draft) RemoveProduct(productID int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.items {
		if d.items[i].ProductID == productID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			d.recalculate()
			return nil
		}
	}
	return fmt.Errorf("product %d not in draft: %w", productID, models.ErrNotFound)
}

// Recalculate recomputes every line subtotal and the aggregate total. It is
// idempotent and safe to call redundantly.
func (d *Draft) Recalculate() {
	d.mu.Lock()
	d.recalculate()
	d.mu.Unlock()
}

// recalculate assumes d.mu is held
func (d *Draft) recalculate() {
	total := 0.0
	for i := range d.items {
		d.items[i].Subtotal = float64(d.items[i].Cantidad) * d.items[i].PrecioUnitario
		total += d.items[i].Subtotal
	}
	d.total = total
}

// Reset clears the client selection and all lines and rotates the draft id.
// Called only after a successful submission, or explicitly by the operator.
func (d *Draft) Reset() {
	d.mu.Lock()
	d.id = uuid.NewString()
	d.clientID = 0
	d.items = nil
	d.total = 0
	d.mu.Unlock()

	slog.Debug("Draft reset")
}

// Submittable reports whether the draft has a client and at least one line
func (d *Draft) Submittable() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clientID > 0 && len(d.items) > 0
}

// Snapshot returns a detached copy of the draft for rendering or submission.
// Mutating the returned view does not affect the draft.
func (d *Draft) Snapshot() models.DraftView {
	d.mu.Lock()
	defer d.mu.Unlock()

	items := make([]models.SaleItem, len(d.items))
	copy(items, d.items)

	return models.DraftView{
		DraftID:  d.id,
		ClientID: d.clientID,
		Items:    items,
		Total:    d.total,
	}
}

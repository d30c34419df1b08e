package services

import (
	"log/slog"
	"sync"

	"backoffice-console/internal/catalog"
	"backoffice-console/internal/draft"
	"backoffice-console/internal/models"
	"backoffice-console/internal/upstream"
)

// SaleService drives the draft submission pipeline and the read-only sale
// views (history list, detail, daily report).
type SaleService struct {
	api     *upstream.Client
	catalog *catalog.Cache
	draft   *draft.Draft

	mu    sync.RWMutex
	sales []models.Sale
}

// SubmitResult reports a successful submission. Warnings collect follow-up
// refresh failures, which never undo the submission itself.
type SubmitResult struct {
	Sale     *models.Sale `json:"sale"`
	Warnings []string     `json:"warnings,omitempty"`
}

// NewSaleService creates a new sale service
func NewSaleService(api *upstream.Client, cache *catalog.Cache, d *draft.Draft) *SaleService {
	return &SaleService{
		api:     api,
		catalog: cache,
		draft:   d,
	}
}

// Submit validates the current draft, sends it upstream and, on success,
// resets the draft and refreshes the product snapshot and the sale history.
// On any failure before success the draft is left completely untouched so the
// operator can correct and resubmit.
//
// The pipeline submits a point-in-time snapshot and then resets the whole
// draft. The session is single-operator: a line added concurrently while the
// upstream call is in flight is not part of the submitted sale and is cleared
// by the reset.
func (s *SaleService) Submit() (*SubmitResult, error) {
	view := s.draft.Snapshot()

	if view.ClientID <= 0 || len(view.Items) == 0 {
		return nil, models.ErrNotSubmittable
	}

	req := models.CreateSaleRequest{ClientID: view.ClientID}
	for _, item := range view.Items {
		req.Items = append(req.Items, models.CreateSaleItem{
			ProductID:      item.ProductID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
		})
	}

	sale, err := s.api.CreateSale(req)
	if err != nil {
		slog.Warn("Sale submission failed, draft kept for retry",
			"client_id", view.ClientID,
			"items", len(view.Items),
			"error", err)
		return nil, err
	}

	slog.Info("Sale submitted",
		"sale_id", sale.ID,
		"client_id", sale.ClientID,
		"total", sale.Total)

	s.draft.Reset()

	// Follow-up refreshes are best-effort: the sale is already persisted
	// upstream, so their failures are reported but never rolled back.
	result := &SubmitResult{Sale: sale}
	if err := s.catalog.RefreshProducts(); err != nil {
		result.Warnings = append(result.Warnings, "product refresh failed: "+err.Error())
	}
	if _, err := s.ReloadSales(); err != nil {
		result.Warnings = append(result.Warnings, "sale list reload failed: "+err.Error())
	}
	return result, nil
}

// ReloadSales fetches the sale history from the upstream and replaces the
// local snapshot.
func (s *SaleService) ReloadSales() ([]models.Sale, error) {
	sales, err := s.api.ListSales()
	if err != nil {
		slog.Warn("Sale list reload failed, keeping previous snapshot", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.sales = sales
	s.mu.Unlock()

	out := make([]models.Sale, len(sales))
	copy(out, sales)
	return out, nil
}

// Sales returns a copy of the last loaded sale history snapshot
func (s *SaleService) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// Detail fetches one historical sale by id. Each call is independent; nothing
// is cached and the draft is never touched.
func (s *SaleService) Detail(saleID int64) (*models.Sale, error) {
	if saleID <= 0 {
		return nil, models.ErrInvalidInput
	}
	return s.api.GetSale(saleID)
}

// DailyReport fetches today's sales summary
func (s *SaleService) DailyReport() (*models.DailyReport, error) {
	return s.api.DailyReport()
}

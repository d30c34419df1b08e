package handlers

import (
	"net/http"
	"strconv"

	"backoffice-console/internal/models"
	"backoffice-console/internal/services"

	"github.com/gorilla/mux"
)

// SalesHandler serves the historical sale views
type SalesHandler struct {
	sales *services.SaleService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(sales *services.SaleService) *SalesHandler {
	return &SalesHandler{sales: sales}
}

// List handles GET /v1/sales - reloads and returns the sale history
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales.ReloadSales()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, sales)
}

// Detail handles GET /v1/sales/{saleId} - one historical sale with items
func (h *SalesHandler) Detail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	saleID, err := strconv.ParseInt(vars["saleId"], 10, 64)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "bad_request", "Sale ID must be a number", []models.ErrorDetail{
			{Field: "saleId", Issue: "not a number"},
		})
		return
	}

	sale, err := h.sales.Detail(saleID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, sale)
}

// DailyReport handles GET /v1/report/today - today's sales summary
func (h *SalesHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.sales.DailyReport()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, report)
}

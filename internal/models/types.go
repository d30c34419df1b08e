package models

import "time"

// Product is a catalog product as served by the upstream commerce API.
// Wire field names follow the upstream contract.
type Product struct {
	ID     int64   `json:"id"`
	Nombre string  `json:"nombre"`
	Stock  int     `json:"stock"`
	Precio float64 `json:"precio"`
}

// Client is a registered customer as served by the upstream commerce API.
type Client struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Cedula string `json:"cedula"`
	Email  string `json:"email"`
}

// SaleItem is one product line of a sale. Draft lines carry the product name
// for rendering; historical detail lines from the upstream omit it.
type SaleItem struct {
	ProductID      int64   `json:"product_id"`
	Nombre         string  `json:"nombre,omitempty"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal"`
}

// Sale is a persisted sale as returned by the upstream API. Items are only
// populated on the detail endpoint.
type Sale struct {
	ID         int64      `json:"id"`
	ClientID   int64      `json:"client_id"`
	ClientName string     `json:"client_name,omitempty"`
	Fecha      time.Time  `json:"fecha"`
	Total      float64    `json:"total"`
	Items      []SaleItem `json:"items,omitempty"`
}

// CreateSaleRequest is the submission payload. Subtotals and product names are
// deliberately absent: the upstream recomputes and validates totals itself.
type CreateSaleRequest struct {
	ClientID int64            `json:"client_id"`
	Items    []CreateSaleItem `json:"items"`
}

type CreateSaleItem struct {
	ProductID      int64   `json:"product_id"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

// DailyReport summarizes today's sales (count and revenue).
type DailyReport struct {
	Ventas int     `json:"ventas"`
	Total  float64 `json:"total"`
}

// DraftView is a detached snapshot of the in-progress draft sale. It never
// aliases the draft's internal slices; callers may mutate it freely.
type DraftView struct {
	DraftID  string     `json:"draft_id"`
	ClientID int64      `json:"client_id"`
	Items    []SaleItem `json:"items"`
	Total    float64    `json:"total"`
}

// ErrorResponse represents the standard error response format
type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

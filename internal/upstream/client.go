package upstream

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"backoffice-console/internal/models"

	"github.com/google/uuid"
)

// APIError is a remote failure (network-level errors are wrapped separately).
// Message carries the server-provided text when one could be decoded.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}

// Client provides typed access to the upstream commerce API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new commerce API client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// decodeErrorMessage extracts a user-facing message from an error response
// body. Fallback order: structured {"error": ...} field, then the raw body
// text when the body is not JSON, then a generic message. A JSON body without
// an error field yields the generic message, not its own text.
func decodeErrorMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "upstream request failed"
	}

	if !json.Valid(body) {
		return text
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	// A bare JSON string still carries its own text
	var s string
	if err := json.Unmarshal(body, &s); err == nil && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}

	return "upstream request failed"
}

func (c *Client) get(path string, out any) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) post(path string, in, out any) error {
	jsonData, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &APIError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(body)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// ListProducts retrieves the full product catalog
func (c *Client) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := c.get("/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListClients retrieves the full client list
func (c *Client) ListClients() ([]models.Client, error) {
	var clients []models.Client
	if err := c.get("/api/clients", &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// CreateProduct registers a new catalog product
func (c *Client) CreateProduct(p models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.post("/api/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateClient registers a new customer
func (c *Client) CreateClient(cl models.Client) (*models.Client, error) {
	var created models.Client
	if err := c.post("/api/clients", cl, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateSale submits a sale and returns the persisted summary
func (c *Client) CreateSale(req models.CreateSaleRequest) (*models.Sale, error) {
	var sale models.Sale
	if err := c.post("/api/sales", req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListSales retrieves the historical sale summaries
func (c *Client) ListSales() ([]models.Sale, error) {
	var sales []models.Sale
	if err := c.get("/api/sales", &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// GetSale retrieves one historical sale with its items
func (c *Client) GetSale(saleID int64) (*models.Sale, error) {
	var sale models.Sale
	err := c.get(fmt.Sprintf("/api/sales/%d", saleID), &sale)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("sale %d: %w", saleID, models.ErrNotFound)
		}
		return nil, err
	}
	return &sale, nil
}

// DailyReport retrieves today's sales summary
func (c *Client) DailyReport() (*models.DailyReport, error) {
	var report models.DailyReport
	if err := c.get("/api/report/ventas-hoy", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

package upstream

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backoffice-console/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestClient_ErrorMessageFallbackOrder(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		body        string
		expected    string
	}{
		{
			name:        "structured error field wins",
			contentType: "application/json",
			body:        `{"error": "stock insuficiente"}`,
			expected:    "stock insuficiente",
		},
		{
			name:        "raw body text when not JSON",
			contentType: "text/plain",
			body:        "bad gateway",
			expected:    "bad gateway",
		},
		{
			name:        "JSON without error field gives the generic message",
			contentType: "application/json",
			body:        `{"detail": "something"}`,
			expected:    "upstream request failed",
		},
		{
			name:        "JSON string body carries its own text",
			contentType: "application/json",
			body:        `"boom"`,
			expected:    "boom",
		},
		{
			name:        "generic message when body is empty",
			contentType: "application/json",
			body:        "",
			expected:    "upstream request failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, tc.body)
			})

			_, err := client.ListProducts()
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
			assert.Equal(t, tc.expected, apiErr.Message)
		})
	}
}

func TestClient_GetSaleMapsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})

	_, err := client.GetSale(42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestClient_CreateSalePayloadShape(t *testing.T) {
	var received map[string]any
	var requestID string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/api/sales", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		requestID = r.Header.Get("X-Request-ID")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Sale{ID: 5, ClientID: 9, Total: 7.50})
	})

	sale, err := client.CreateSale(models.CreateSaleRequest{
		ClientID: 9,
		Items: []models.CreateSaleItem{
			{ProductID: 1, Cantidad: 3, PrecioUnitario: 2.50},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), sale.ID)
	assert.NotEmpty(t, requestID, "every request carries an X-Request-ID")

	items, ok := received["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item := items[0].(map[string]any)
	assert.Contains(t, item, "product_id")
	assert.Contains(t, item, "cantidad")
	assert.Contains(t, item, "precio_unitario")
	assert.NotContains(t, item, "subtotal", "the server recomputes subtotals itself")
	assert.NotContains(t, item, "nombre", "derived names are not sent")
}

func TestClient_ListProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Product{
			{ID: 1, Nombre: "Widget", Stock: 10, Precio: 2.50},
		})
	})

	products, err := client.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Nombre)
	assert.Equal(t, 2.50, products[0].Precio)
}

func TestClient_DailyReport(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/report/ventas-hoy", r.URL.Path)
		io.WriteString(w, `{"ventas": 3, "total": 120.75}`)
	})

	report, err := client.DailyReport()
	require.NoError(t, err)
	assert.Equal(t, 3, report.Ventas)
	assert.Equal(t, 120.75, report.Total)
}

func TestClient_TrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, strings.HasPrefix(r.URL.Path, "//"))
		json.NewEncoder(w).Encode([]models.Product{})
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL+"/", 5*time.Second)
	_, err := client.ListProducts()
	assert.NoError(t, err)
}

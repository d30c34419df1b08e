package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"backoffice-console/internal/catalog"
	"backoffice-console/internal/config"
	"backoffice-console/internal/draft"
	"backoffice-console/internal/handlers"
	"backoffice-console/internal/middleware"
	"backoffice-console/internal/services"
	"backoffice-console/internal/upstream"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.LoadConfig()

	// Core session state: one upstream client, one catalog cache, one draft
	api := upstream.NewClient(cfg.UpstreamBaseURL, cfg.HTTPTimeout)
	cache := catalog.NewCache(api)
	draftSale := draft.New(cache)

	saleService := services.NewSaleService(api, cache, draftSale)
	productService := services.NewProductService(api, cache)
	clientService := services.NewClientService(api, cache)

	// Initial catalog load, the session-start equivalent of page load. A
	// failure here is not fatal: the operator can retry via /v1/catalog/load.
	if err := cache.Load(); err != nil {
		slog.Warn("Initial catalog load failed, starting with empty snapshots", "error", err)
	}

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(cache, productService, clientService)
	draftHandler := handlers.NewDraftHandler(draftSale, saleService)
	salesHandler := handlers.NewSalesHandler(saleService)
	healthHandler := handlers.NewHealthHandler()

	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware)

	// Apply auth middleware to v1 API routes
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Use(middleware.AuthMiddleware(cfg.APIKeys))

	// Catalog routes (v1)
	v1.HandleFunc("/catalog/products", catalogHandler.ListProducts).Methods("GET")
	v1.HandleFunc("/catalog/clients", catalogHandler.ListClients).Methods("GET")
	v1.HandleFunc("/catalog/load", catalogHandler.Load).Methods("POST")
	v1.HandleFunc("/catalog/refresh-products", catalogHandler.RefreshProducts).Methods("POST")
	v1.HandleFunc("/products", catalogHandler.CreateProduct).Methods("POST")
	v1.HandleFunc("/clients", catalogHandler.CreateClient).Methods("POST")

	// Draft sale routes (v1)
	v1.HandleFunc("/draft", draftHandler.Get).Methods("GET")
	v1.HandleFunc("/draft/client", draftHandler.SetClient).Methods("PUT")
	v1.HandleFunc("/draft/items", draftHandler.AddItem).Methods("POST")
	v1.HandleFunc("/draft/items/{index}", draftHandler.RemoveItem).Methods("DELETE")
	v1.HandleFunc("/draft/products/{productId}", draftHandler.RemoveProduct).Methods("DELETE")
	v1.HandleFunc("/draft/reset", draftHandler.Reset).Methods("POST")
	v1.HandleFunc("/draft/submit", draftHandler.Submit).Methods("POST")

	// Sale history routes (v1)
	v1.HandleFunc("/sales", salesHandler.List).Methods("GET")
	v1.HandleFunc("/sales/{saleId}", salesHandler.Detail).Methods("GET")
	v1.HandleFunc("/report/today", salesHandler.DailyReport).Methods("GET")

	// Health check endpoint (no auth required)
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")

	fmt.Printf("Starting Back-Office Sales Console on port %s\n", cfg.Port)
	fmt.Println("Available endpoints:")
	fmt.Println("  API v1:")
	fmt.Println("    GET    /v1/catalog/products - Cached product snapshot")
	fmt.Println("    GET    /v1/catalog/clients - Cached client snapshot")
	fmt.Println("    POST   /v1/catalog/load - Reload both snapshots")
	fmt.Println("    POST   /v1/catalog/refresh-products - Refresh product snapshot")
	fmt.Println("    POST   /v1/products - Create product")
	fmt.Println("    POST   /v1/clients - Create client")
	fmt.Println("    GET    /v1/draft - Draft snapshot")
	fmt.Println("    PUT    /v1/draft/client - Select client")
	fmt.Println("    POST   /v1/draft/items - Add line item")
	fmt.Println("    DELETE /v1/draft/items/{index} - Remove line by position")
	fmt.Println("    DELETE /v1/draft/products/{productId} - Remove line by product")
	fmt.Println("    POST   /v1/draft/reset - Clear draft")
	fmt.Println("    POST   /v1/draft/submit - Submit sale")
	fmt.Println("    GET    /v1/sales - Sale history")
	fmt.Println("    GET    /v1/sales/{saleId} - Sale detail")
	fmt.Println("    GET    /v1/report/today - Daily report")
	fmt.Println("  System:")
	fmt.Println("    GET  /health - Health check (unversioned)")

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/mudit2208/mehta-masala-storefront/internal/backend"
	"github.com/mudit2208/mehta-masala-storefront/internal/cart"
	"github.com/mudit2208/mehta-masala-storefront/internal/catalog"
	"github.com/mudit2208/mehta-masala-storefront/internal/checkout"
	h "github.com/mudit2208/mehta-masala-storefront/internal/http"
	"github.com/mudit2208/mehta-masala-storefront/internal/order"
	"github.com/mudit2208/mehta-masala-storefront/internal/pincode"
)

type Config struct {
	HTTPPort        string
	CatalogURL      string
	BackendURL      string
	PincodeURL      string
	StorageBackend  string // "redis" or "file"
	RedisAddr       string
	RedisPassword   string
	StateDir        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		CatalogURL:      getEnv("CATALOG_URL", "https://mudit2208.github.io/mehta-masala/data/products.json"),
		BackendURL:      getEnv("BACKEND_URL", "https://mehta-masala-backend.onrender.com"),
		PincodeURL:      getEnv("PINCODE_API_URL", "https://api.postalpincode.in"),
		StorageBackend:  getEnv("STORAGE_BACKEND", "redis"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		StateDir:        getEnv("STATE_DIR", "./state"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	storage, cleanup := setupStorage(ctx, cfg)
	defer cleanup()

	httpClient := &http.Client{Timeout: 10 * time.Second}

	loader := catalog.NewLoader(httpClient, cfg.CatalogURL)
	store := cart.NewStore(storage)
	backendClient := backend.NewClient(httpClient, cfg.BackendURL)
	pincodeClient := pincode.NewClient(httpClient, cfg.PincodeURL)
	submitter := order.NewSubmitter(store, storage, backendClient, checkout.DefaultOptions())

	productHandler := h.NewProductHandler(loader)
	cartHandler := h.NewCartHandler(store, loader)
	checkoutHandler := h.NewCheckoutHandler(store, checkout.DefaultOptions())
	orderHandler := h.NewOrderHandler(submitter)
	pincodeHandler := h.NewPincodeHandler(pincodeClient)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{slug}", productHandler.Detail)
		})
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Get("/count", cartHandler.Count)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{slug}/{weight}", cartHandler.ChangeQuantity)
			r.Delete("/items/{slug}/{weight}", cartHandler.RemoveItem)
		})
		r.Get("/checkout/totals", checkoutHandler.Totals)
		r.Route("/orders", func(r chi.Router) {
			r.Post("/offline", orderHandler.PlaceOffline)
			r.Post("/online", orderHandler.SubmitOnline)
			r.Get("/last", orderHandler.LastOrder)
		})
		r.Get("/pincode/{pin}", pincodeHandler.Lookup)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func setupStorage(ctx context.Context, cfg *Config) (cart.Storage, func()) {
	if cfg.StorageBackend == "file" {
		log.Printf("Using file storage in %s", cfg.StateDir)
		return cart.NewFileStorage(cfg.StateDir), func() {}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Connected to redis at %s", cfg.RedisAddr)

	return cart.NewRedisStorage(redisClient, "storefront"), func() {
		redisClient.Close()
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/citymart/storefront/internal"
	"github.com/citymart/storefront/internal/cart"
	"github.com/citymart/storefront/internal/catalog"
	"github.com/citymart/storefront/internal/checkout"
	"github.com/citymart/storefront/internal/cookie"
	"github.com/citymart/storefront/internal/handler/storefront"
	"github.com/citymart/storefront/internal/local"
	"github.com/citymart/storefront/internal/middleware"
	"github.com/citymart/storefront/internal/pricing"
	"github.com/citymart/storefront/internal/router"
	"github.com/citymart/storefront/internal/routes"
	"github.com/citymart/storefront/internal/shipping"
	"github.com/citymart/storefront/internal/telemetry"
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize Sentry error tracking
	sentryCleanup, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:              cfg.Sentry.DSN,
		Enabled:          cfg.Sentry.Enabled,
		Environment:      cfg.Sentry.Environment,
		Release:          cfg.Sentry.Release,
		SampleRate:       cfg.Sentry.SampleRate,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
		Debug:            cfg.Sentry.Debug,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer sentryCleanup()

	// ==========================================================================
	// Initialize stores and services
	// ==========================================================================

	business := telemetry.NewBusinessMetrics("storefront")

	// Cart storage: Redis when configured, in-memory otherwise
	var cartStore cart.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
		defer client.Close()

		cartStore = cart.NewRedisStore(client)
		logger.Info("Cart storage initialized", "backend", "redis")
	} else {
		cartStore = cart.NewMemoryStore()
		logger.Info("Cart storage initialized", "backend", "memory")
	}

	cartService := cart.NewService(cartStore)

	// Catalog: seeded at startup, optionally refreshed from upstream
	catalogStore := catalog.NewStore()
	catalogStore.Replace(catalog.SeedProducts())
	logger.Info("Catalog seeded", "products", catalogStore.Len())

	if cfg.Catalog.UpstreamURL != "" {
		client := catalog.NewClient(cfg.Catalog.UpstreamURL, cfg.Catalog.UpstreamToken,
			catalog.WithHTTPClient(&http.Client{
				Timeout:   10 * time.Second,
				Transport: &telemetry.HTTPTransport{Transport: http.DefaultTransport},
			}),
		)
		refresher := catalog.NewRefresher(client, catalogStore, catalog.RefreshConfig{
			Interval: cfg.Catalog.RefreshInterval,
			Limit:    cfg.Catalog.FetchLimit,
			OnResult: func(err error, size int) {
				result := "ok"
				if err != nil {
					result = "error"
					telemetry.CaptureError(err, map[string]interface{}{"component": "catalog.refresher"})
				}
				business.CatalogRefreshes.WithLabelValues(result).Inc()
				business.CatalogSize.Set(float64(size))
			},
		}, logger)
		go func() {
			if err := refresher.Start(ctx); err != nil {
				logger.Error("Catalog refresher stopped", "error", err)
			}
		}()
		logger.Info("Catalog refresher started",
			"upstream", cfg.Catalog.UpstreamURL,
			"interval", cfg.Catalog.RefreshInterval,
		)
	}

	catalogService := catalog.NewService(catalogStore)

	// Shipping and pricing
	shippingProvider := shipping.NewFlatRateProvider(shipping.DefaultRates())
	calculator := pricing.NewCalculator(shippingProvider, pricing.DefaultTaxRate)

	// Checkout wizard
	formValidator, err := checkout.NewFormValidator()
	if err != nil {
		return fmt.Errorf("failed to initialize form validator: %w", err)
	}
	checkoutService := checkout.NewWizard(cartService, calculator, formValidator, checkout.Config{
		ProcessingDelay: cfg.Checkout.ProcessingDelay,
	})

	// Local shopping
	localService := local.NewService()
	wheel := local.NewWheel()

	// Cookies
	cookies := cookie.NewConfig(cfg.Cookie.Domain, cfg.Cookie.Secure)

	// ==========================================================================
	// Build route dependencies
	// ==========================================================================

	metrics := middleware.NewMetrics("storefront")

	storefrontDeps := routes.StorefrontDeps{
		ProductHandler:  storefront.NewProductHandler(catalogService, business),
		CartHandler:     storefront.NewCartHandler(cartService, catalogService, cookies, business),
		CheckoutHandler: storefront.NewCheckoutHandler(checkoutService, business),
		PricingHandler:  storefront.NewPricingHandler(cartService, calculator, shippingProvider),
		LocalHandler:    storefront.NewLocalHandler(localService, wheel, cookies, business),
	}

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	securityConfig := middleware.DefaultSecurityHeadersConfig()
	if cfg.Env == "dev" {
		securityConfig.ContentSecurityPolicy = ""
		securityConfig.HSTSMaxAge = 0
	}

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.Rate.RequestsPerSecond,
		BurstSize:         cfg.Rate.Burst,
		CleanupInterval:   time.Minute,
		KeyFunc:           middleware.GetClientIP,
	})
	defer rateLimiter.Stop()

	r := router.New(
		router.Recovery(logger),
		router.CORS(cfg.CORSOrigins),
		middleware.RequestID,
		metrics.Middleware,
		telemetry.SentryMiddleware(),
		middleware.SecurityHeaders(securityConfig),
		middleware.MaxBodySize(middleware.SmallMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		rateLimiter.Middleware,
		middleware.WithClientIP(),
		middleware.WithRequestLogger(logger),
		router.Logger(logger),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting storefront server", "address", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

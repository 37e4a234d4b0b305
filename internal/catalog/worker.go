package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// RefreshConfig holds refresh worker configuration.
type RefreshConfig struct {
	// Interval is how often to pull the upstream catalog.
	Interval time.Duration

	// Limit caps how many products are requested per refresh.
	Limit int

	// OnResult, when set, is called after every refresh attempt with the
	// outcome and the new catalog size. Used to feed metrics.
	OnResult func(err error, size int)
}

// Refresher periodically replaces the store contents from the upstream
// catalog API.
type Refresher struct {
	config RefreshConfig
	client *Client
	store  *Store
	logger *slog.Logger

	running atomic.Bool
}

// NewRefresher creates a catalog refresh worker.
func NewRefresher(client *Client, store *Store, config RefreshConfig, logger *slog.Logger) *Refresher {
	if config.Interval == 0 {
		config.Interval = 5 * time.Minute
	}
	return &Refresher{
		config: config,
		client: client,
		store:  store,
		logger: logger,
	}
}

// Start refreshes once immediately, then on every tick until the
// context is cancelled.
func (r *Refresher) Start(ctx context.Context) error {
	r.logger.Info("catalog refresher starting", "interval", r.config.Interval)

	r.refresh(ctx)

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("catalog refresher shutting down")
			return ctx.Err()
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// refresh pulls the upstream catalog and swaps the store. A refresh
// already in flight makes this tick a no-op.
func (r *Refresher) refresh(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		r.logger.Debug("catalog refresh already in flight, skipping tick")
		return
	}
	defer r.running.Store(false)

	start := time.Now()
	products, err := r.client.FetchProducts(ctx, Query{Limit: r.config.Limit})
	if r.config.OnResult != nil {
		defer func() { r.config.OnResult(err, r.store.Len()) }()
	}
	if err != nil {
		// Keep serving the previous catalog on upstream failure.
		r.logger.Error("catalog refresh failed", "error", err)
		return
	}

	r.store.Replace(products)
	r.logger.Info("catalog refreshed",
		"products", len(products),
		"duration", time.Since(start),
	)
}

package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability.
type BusinessMetrics struct {
	// Product engagement
	ProductViews    *prometheus.CounterVec
	ProductSearches *prometheus.CounterVec

	// Cart
	CartItemsAdded  *prometheus.CounterVec
	CartItemRemoved prometheus.Counter
	CartCleared     prometheus.Counter
	CartValue       prometheus.Histogram

	// Checkout funnel
	CheckoutStep      *prometheus.CounterVec
	CheckoutCompleted prometheus.Counter
	OrderValue        prometheus.Histogram
	OrderItemCount    prometheus.Histogram

	// Promotions
	CouponsApplied *prometheus.CounterVec
	CouponRejected prometheus.Counter
	WheelSpins     *prometheus.CounterVec

	// Local discovery
	CitySelected *prometheus.CounterVec

	// Catalog refresh
	CatalogRefreshes *prometheus.CounterVec
	CatalogSize      prometheus.Gauge
}

// NewBusinessMetrics creates and registers all business metrics
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "storefront"
	}

	subsystem := "business"

	m := &BusinessMetrics{
		ProductViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_views_total",
				Help:      "Total product detail views",
			},
			[]string{"product_id"},
		),
		ProductSearches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "product_searches_total",
				Help:      "Total product list requests with filters",
			},
			[]string{"filter_type"}, // filter_type: search, category, price, rating, none
		),
		CartItemsAdded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_added_total",
				Help:      "Total add to cart actions",
			},
			[]string{"product_id"},
		),
		CartItemRemoved: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_removed_total",
				Help:      "Total remove from cart actions",
			},
		),
		CartCleared: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_cleared_total",
				Help:      "Total cart clear actions",
			},
		),
		CartValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_value_dollars",
				Help:      "Cart subtotal at add time",
				Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
		CheckoutStep: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_step_total",
				Help:      "Checkout wizard step completions",
			},
			[]string{"step"}, // step: address, payment, review
		),
		CheckoutCompleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_completed_total",
				Help:      "Total orders placed",
			},
		),
		OrderValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value_dollars",
				Help:      "Order grand total",
				Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
			},
		),
		OrderItemCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Number of units per order",
				Buckets:   []float64{1, 2, 3, 5, 10, 20, 50},
			},
		),
		CouponsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "coupons_applied_total",
				Help:      "Coupon codes accepted at checkout",
			},
			[]string{"code"},
		),
		CouponRejected: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "coupons_rejected_total",
				Help:      "Coupon codes rejected at checkout",
			},
		),
		WheelSpins: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "wheel_spins_total",
				Help:      "Discount wheel spins by awarded percent",
			},
			[]string{"percent"},
		),
		CitySelected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "city_selected_total",
				Help:      "City selections for local shops and deals",
			},
			[]string{"city"},
		),
		CatalogRefreshes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_refreshes_total",
				Help:      "Upstream catalog refresh attempts",
			},
			[]string{"result"}, // result: ok, error
		),
		CatalogSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "catalog_products",
				Help:      "Number of products currently in the catalog",
			},
		),
	}

	return m
}

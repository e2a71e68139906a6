package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ezrent"

type Metrics struct {
	BookingsCreated     prometheus.Counter
	BookingRejected     *prometheus.CounterVec
	BookingTransitions  *prometheus.CounterVec
	NotificationsQueued *prometheus.CounterVec
	EmailDeliveries     *prometheus.CounterVec
	ItemCache           *prometheus.CounterVec
	Uploads             *prometheus.CounterVec
	TxRetries           *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
}

// New registers every collector on reg. Each process (and each test) passes its own registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BookingsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created.",
		}),
		BookingRejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rejected_total",
			Help:      "Count of booking commands rejected by reason.",
		}, []string{"reason"}),
		BookingTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transition_total",
			Help:      "Count of applied booking status transitions.",
		}, []string{"from", "to"}),
		NotificationsQueued: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_created_total",
			Help:      "Count of notifications created by channel.",
		}, []string{"channel"}),
		EmailDeliveries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "email_delivery_total",
			Help:      "Count of email delivery attempts by result.",
		}, []string{"result"}),
		ItemCache: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "item_cache_total",
			Help:      "Item cache lookups by result.",
		}, []string{"result"}),
		Uploads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_total",
			Help:      "Uploaded files by result.",
		}, []string{"result"}),
		TxRetries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tx_retry_total",
			Help:      "Transaction retries by PostgreSQL error code.",
		}, []string{"code"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// NewNop is for code paths and tests that do not scrape.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) IncBookingCreated() {
	m.BookingsCreated.Inc()
}

func (m *Metrics) IncBookingRejected(reason string) {
	m.BookingRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncTransition(from, to string) {
	m.BookingTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) IncNotification(channel string) {
	m.NotificationsQueued.WithLabelValues(channel).Inc()
}

func (m *Metrics) IncEmailDelivery(result string) {
	m.EmailDeliveries.WithLabelValues(result).Inc()
}

func (m *Metrics) IncItemCache(result string) {
	m.ItemCache.WithLabelValues(result).Inc()
}

func (m *Metrics) IncUpload(result string) {
	m.Uploads.WithLabelValues(result).Inc()
}

func (m *Metrics) IncTxRetry(code string) {
	m.TxRetries.WithLabelValues(code).Inc()
}

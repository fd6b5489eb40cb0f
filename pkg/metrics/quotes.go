package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records pricing and session activity.
type QuoteMetrics struct {
	priced     *prometheus.CounterVec
	advice     *prometheus.CounterVec
	finalPrice *prometheus.HistogramVec
	sessionOps *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	priced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skb_quotes_priced_total",
		Help: "Quotations computed, by TV family.",
	}, []string{"family"})
	advice := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skb_upsell_advice_total",
		Help: "Up-sell advice emitted, by status.",
	}, []string{"status"})
	finalPrice := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skb_quote_final_price_won",
		Help:    "Final monthly price of computed quotations in won.",
		Buckets: prometheus.LinearBuckets(20000, 10000, 8),
	}, []string{"family"})
	sessionOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skb_quote_session_ops_total",
		Help: "Quote session operations, by operation and result.",
	}, []string{"op", "result"})
	reg.MustRegister(priced, advice, finalPrice, sessionOps)
	return &QuoteMetrics{
		priced:     priced,
		advice:     advice,
		finalPrice: finalPrice,
		sessionOps: sessionOps,
	}
}

// ObserveQuote records one priced quotation.
func (m *QuoteMetrics) ObserveQuote(family string, finalPrice int) {
	if m == nil || m.priced == nil {
		return
	}
	label := normalizeLabel(family)
	m.priced.WithLabelValues(label).Inc()
	m.finalPrice.WithLabelValues(label).Observe(float64(finalPrice))
}

// IncAdvice counts one advisor verdict.
func (m *QuoteMetrics) IncAdvice(status string) {
	if m == nil || m.advice == nil {
		return
	}
	m.advice.WithLabelValues(normalizeLabel(status)).Inc()
}

// IncSessionOp counts one session operation outcome.
func (m *QuoteMetrics) IncSessionOp(op string, err error) {
	if m == nil || m.sessionOps == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.sessionOps.WithLabelValues(normalizeLabel(op), result).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

package quotes

import (
	"context"
	"fmt"

	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/presets"
	"github.com/angelmondragon/skb-upsell-backend/internal/pricing"
	"github.com/angelmondragon/skb-upsell-backend/internal/report"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/internal/upsell"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
	"github.com/angelmondragon/skb-upsell-backend/pkg/metrics"
)

// Result is everything the agent screen shows for one selection.
type Result struct {
	Selection selection.Selection `json:"selection"`
	QuotedFee int                 `json:"quoted_fee"`
	Preset    enums.Preset        `json:"preset,omitempty"`
	Quotation pricing.Quotation   `json:"quotation"`
	Advice    upsell.Advice       `json:"advice"`
	Report    string              `json:"report"`
}

// Service evaluates selections.
type Service interface {
	Catalog() *catalog.Catalog
	Evaluate(ctx context.Context, sel selection.Selection, quotedFee int) Result
}

type service struct {
	engine  *pricing.Engine
	metrics *metrics.QuoteMetrics
	logg    *logger.Logger
}

// NewService builds a quote evaluator. Metrics may be nil.
func NewService(engine *pricing.Engine, m *metrics.QuoteMetrics, logg *logger.Logger) (Service, error) {
	if engine == nil {
		return nil, fmt.Errorf("pricing engine required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{engine: engine, metrics: m, logg: logg}, nil
}

func (s *service) Catalog() *catalog.Catalog {
	return s.engine.Catalog()
}

// Evaluate normalizes sel, prices it, advises against quotedFee and renders
// the share report.
func (s *service) Evaluate(ctx context.Context, sel selection.Selection, quotedFee int) Result {
	c := s.engine.Catalog()
	sel = sel.Normalize(c)
	if quotedFee < 0 {
		quotedFee = 0
	}

	q := s.engine.Price(sel)
	advice := upsell.Advise(q, sel, quotedFee)

	result := Result{
		Selection: sel,
		QuotedFee: quotedFee,
		Quotation: q,
		Advice:    advice,
		Report:    report.Render(c, sel, q, advice),
	}
	if preset, ok := presets.Match(sel); ok {
		result.Preset = preset
	}

	s.metrics.ObserveQuote(sel.Family.String(), q.FinalPrice)
	s.metrics.IncAdvice(advice.Status.String())

	s.logg.Debug(s.logg.WithFields(ctx, map[string]any{
		"family":      sel.Family,
		"internet_id": sel.InternetID,
		"final_price": q.FinalPrice,
		"status":      advice.Status,
	}), "quote evaluated")

	return result
}

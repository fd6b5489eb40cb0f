package controllers

import (
	"net/http"

	"github.com/angelmondragon/skb-upsell-backend/api/responses"
	"github.com/angelmondragon/skb-upsell-backend/internal/presets"
	"github.com/angelmondragon/skb-upsell-backend/internal/quotes"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
)

type presetCard struct {
	presets.Template
	Selection  selection.Selection `json:"selection"`
	FinalPrice int                 `json:"final_price"`
}

// Presets lists the quick-start cards with the selection each one produces
// from a fresh start and its monthly price.
func Presets(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		c := svc.Catalog()
		templates := presets.List()
		cards := make([]presetCard, 0, len(templates))
		for _, tpl := range templates {
			sel, err := presets.Apply(c, selection.New(c), tpl.Preset)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "apply preset"))
				return
			}
			result := svc.Evaluate(r.Context(), sel, 0)
			cards = append(cards, presetCard{
				Template:   tpl,
				Selection:  result.Selection,
				FinalPrice: result.Quotation.FinalPrice,
			})
		}
		responses.WriteSuccess(w, cards)
	}
}

package quotes

import (
	"net/http"

	"github.com/angelmondragon/skb-upsell-backend/api/responses"
	"github.com/angelmondragon/skb-upsell-backend/api/validators"
	quotesvc "github.com/angelmondragon/skb-upsell-backend/internal/quotes"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
)

// QuoteEvaluate prices a selection without storing anything.
func QuoteEvaluate(svc quotesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var payload QuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sel, err := payload.toSelection(svc.Catalog())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Evaluate(r.Context(), sel, payload.QuotedFee))
	}
}

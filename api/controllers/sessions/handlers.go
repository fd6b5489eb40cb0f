package sessions

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/skb-upsell-backend/api/responses"
	"github.com/angelmondragon/skb-upsell-backend/api/validators"
	sessionsvc "github.com/angelmondragon/skb-upsell-backend/internal/sessions"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
)

const sessionIDParam = "sessionId"

// SessionCreate opens a quote session. An empty body starts from the defaults.
func SessionCreate(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload CreateSessionRequest
		if r.ContentLength != 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		view, err := svc.Create(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// SessionFetch returns a session with its recomputed quote.
func SessionFetch(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		view, err := svc.Get(r.Context(), chi.URLParam(r, sessionIDParam))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// SessionEdit applies one edit batch.
func SessionEdit(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload EditSessionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Edit(r.Context(), chi.URLParam(r, sessionIDParam), payload.toEdit())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// SessionDelete ends a session.
func SessionDelete(svc sessionsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, sessionIDParam)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

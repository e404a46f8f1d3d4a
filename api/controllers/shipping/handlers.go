package shipping

import (
	"net/http"

	"github.com/andesmarket/shipping-backend/api/responses"
	"github.com/andesmarket/shipping-backend/api/validators"
	shippingsvc "github.com/andesmarket/shipping-backend/internal/shipping"
	pkgerrors "github.com/andesmarket/shipping-backend/pkg/errors"
	"github.com/andesmarket/shipping-backend/pkg/logger"
)

// QuoteRates resolves shipping options for every store in the cart.
func QuoteRates(svc shippingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shipping service unavailable"))
			return
		}

		var payload QuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.QuoteShipping(r.Context(), toQuoteInput(payload))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newQuoteResponse(result))
	}
}

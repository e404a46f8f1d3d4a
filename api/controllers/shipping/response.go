package shipping

import (
	shippingsvc "github.com/andesmarket/shipping-backend/internal/shipping"
)

// QuoteResponse keys options and errors by store id string so the storefront
// receives plain JSON objects.
type QuoteResponse struct {
	Success      bool                                  `json:"success"`
	RatesByStore map[string][]shippingsvc.PricedOption `json:"shipping_rates"`
	Errors       map[string]string                     `json:"errors,omitempty"`
}

func newQuoteResponse(result *shippingsvc.QuoteResult) QuoteResponse {
	resp := QuoteResponse{
		Success:      result.Success,
		RatesByStore: make(map[string][]shippingsvc.PricedOption, len(result.RatesByStore)),
	}
	for storeID, options := range result.RatesByStore {
		resp.RatesByStore[storeID.String()] = options
	}
	if len(result.Errors) > 0 {
		resp.Errors = make(map[string]string, len(result.Errors))
		for storeID, msg := range result.Errors {
			resp.Errors[storeID.String()] = msg
		}
	}
	return resp
}

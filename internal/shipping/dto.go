package shipping

import (
	"github.com/google/uuid"

	"github.com/andesmarket/shipping-backend/pkg/enums"
)

// CartItem is one line of the checkout cart. VariantRef carries the external
// catalog reference used to look up the declared weight; lines without a
// matching variant fall back to the configured per-item default.
type CartItem struct {
	StoreID        uuid.UUID
	VariantRef     string
	Quantity       int
	UnitPriceCents int
}

// ShippingAddress is the destination the buyer entered at checkout.
// Subdivision is the region (free text, matched against zone codes after
// folding) and Locality is the comuna.
type ShippingAddress struct {
	Line1       string
	Locality    string
	Subdivision string
	PostalCode  string
	CountryCode string
}

// QuoteInput is the full request for a multi-store quote.
type QuoteInput struct {
	Items   []CartItem
	Address ShippingAddress
}

// PricedOption is one shippable choice returned to the storefront.
type PricedOption struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	Code              string               `json:"code"`
	PriceCents        int                  `json:"price_cents"`
	IsFree            bool                 `json:"is_free"`
	EstimatedDelivery *string              `json:"estimated_delivery,omitempty"`
	Source            enums.ShippingSource `json:"source"`
}

// QuoteResult groups priced options per store. A store that failed appears
// in Errors instead of RatesByStore; Success is true when at least one store
// produced options.
type QuoteResult struct {
	Success      bool                         `json:"success"`
	RatesByStore map[uuid.UUID][]PricedOption `json:"rates_by_store"`
	Errors       map[uuid.UUID]string         `json:"errors,omitempty"`
}

// storeContext carries the per-store aggregates every fallback tier reads.
type storeContext struct {
	storeID       uuid.UUID
	items         []CartItem
	address       ShippingAddress
	subtotalCents int
	weightGrams   int
	itemCount     int
}

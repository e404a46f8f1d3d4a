package shipping

import (
	"github.com/google/uuid"

	shippingsvc "github.com/andesmarket/shipping-backend/internal/shipping"
)

// QuoteRequest is the storefront checkout payload.
type QuoteRequest struct {
	Items   []QuoteItem  `json:"cart_items" validate:"required,min=1,dive"`
	Address QuoteAddress `json:"shipping_address" validate:"required"`
}

// QuoteItem is one cart line. variant_ref may be empty for items the catalog
// sync has not imported yet.
type QuoteItem struct {
	StoreID        uuid.UUID `json:"store_id" validate:"required"`
	VariantRef     string    `json:"variant_ref"`
	Quantity       int       `json:"quantity" validate:"required,min=1"`
	UnitPriceCents int       `json:"unit_price_cents" validate:"min=0"`
}

// QuoteAddress is the buyer's destination. subdivision is the region and
// locality the comuna.
type QuoteAddress struct {
	Line1       string `json:"line1"`
	Locality    string `json:"locality"`
	Subdivision string `json:"subdivision" validate:"required"`
	PostalCode  string `json:"postal_code"`
	CountryCode string `json:"country_code"`
}

func toQuoteInput(payload QuoteRequest) shippingsvc.QuoteInput {
	items := make([]shippingsvc.CartItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, shippingsvc.CartItem{
			StoreID:        item.StoreID,
			VariantRef:     item.VariantRef,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return shippingsvc.QuoteInput{
		Items: items,
		Address: shippingsvc.ShippingAddress{
			Line1:       payload.Address.Line1,
			Locality:    payload.Address.Locality,
			Subdivision: payload.Address.Subdivision,
			PostalCode:  payload.Address.PostalCode,
			CountryCode: payload.Address.CountryCode,
		},
	}
}

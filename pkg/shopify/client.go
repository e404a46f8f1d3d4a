// Package shopify wraps the commerce platform's Admin REST API. The quote
// engine only consumes the shipping-zone listing, authenticated with the
// per-store access token imported alongside the catalog.
package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/andesmarket/shipping-backend/pkg/errors"
)

const (
	defaultAPIVersion          = "2023-10"
	responseBodyReadLimit      = 4 << 20
	accessTokenHeader          = "X-Shopify-Access-Token"
	shippingZonesResourcePath  = "shipping_zones.json"
	defaultRequestTimeout      = 10 * time.Second
	gramsPerPlatformWeightUnit = 1000 // the API reports weight bounds in kilograms
)

var (
	// ErrMissingCredentials is returned when a store has no platform domain/token.
	ErrMissingCredentials = errors.New("shopify credentials are required")
)

// Credentials identify one store's shop on the platform.
type Credentials struct {
	Domain string
	Token  string
}

func (c Credentials) valid() bool {
	return strings.TrimSpace(c.Domain) != "" && strings.TrimSpace(c.Token) != ""
}

// Client calls the platform's Admin REST API.
type Client struct {
	httpClient *http.Client
	apiVersion string
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL replaces the per-domain https endpoint, for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = strings.TrimRight(trimmed, "/")
		}
	}
}

// NewClient builds the platform client.
func NewClient(apiVersion string, timeout time.Duration, opts ...Option) *Client {
	version := strings.TrimSpace(apiVersion)
	if version == "" {
		version = defaultAPIVersion
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := &Client{
		apiVersion: version,
		httpClient: &http.Client{Timeout: timeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client
}

// ShippingZone is one platform-native zone with its rate rule lists.
type ShippingZone struct {
	ID               int64
	Name             string
	PriceBasedRates  []PriceBasedRate
	WeightBasedRates []WeightBasedRate
}

// PriceBasedRate is a rate rule bounded by order subtotal.
type PriceBasedRate struct {
	Name                  string
	PriceCents            int
	MinOrderSubtotalCents *int
	MaxOrderSubtotalCents *int
}

// WeightBasedRate is a rate rule bounded by parcel weight.
type WeightBasedRate struct {
	Name            string
	PriceCents      int
	WeightLowGrams  int
	WeightHighGrams *int
}

// ListShippingZones fetches every zone configured on the store's shop.
func (c *Client) ListShippingZones(ctx context.Context, creds Credentials) ([]ShippingZone, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "shopify client not configured")
	}
	if !creds.valid() {
		return nil, ErrMissingCredentials
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.zonesURL(creds.Domain), nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build shipping zones request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(accessTokenHeader, strings.TrimSpace(creds.Token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call shipping zones api")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read shipping zones response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("shipping zones api returned status %d", resp.StatusCode)).
			WithDetails(map[string]any{"status": resp.StatusCode})
	}

	var payload shippingZonesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode shipping zones response")
	}

	return payload.toZones()
}

func (c *Client) zonesURL(domain string) string {
	base := c.baseURL
	if base == "" {
		base = "https://" + strings.TrimSpace(domain)
	}
	return fmt.Sprintf("%s/admin/api/%s/%s", base, c.apiVersion, shippingZonesResourcePath)
}

type shippingZonesResponse struct {
	ShippingZones []zonePayload `json:"shipping_zones"`
}

type zonePayload struct {
	ID               int64               `json:"id"`
	Name             string              `json:"name"`
	PriceBasedRates  []priceRatePayload  `json:"price_based_shipping_rates"`
	WeightBasedRates []weightRatePayload `json:"weight_based_shipping_rates"`
}

type priceRatePayload struct {
	Name             string  `json:"name"`
	Price            string  `json:"price"`
	MinOrderSubtotal *string `json:"min_order_subtotal"`
	MaxOrderSubtotal *string `json:"max_order_subtotal"`
}

type weightRatePayload struct {
	Name       string   `json:"name"`
	Price      string   `json:"price"`
	WeightLow  *float64 `json:"weight_low"`
	WeightHigh *float64 `json:"weight_high"`
}

func (r shippingZonesResponse) toZones() ([]ShippingZone, error) {
	zones := make([]ShippingZone, 0, len(r.ShippingZones))
	for _, zone := range r.ShippingZones {
		mapped := ShippingZone{ID: zone.ID, Name: zone.Name}

		for _, rate := range zone.PriceBasedRates {
			price, err := parsePriceCents(rate.Price)
			if err != nil {
				return nil, err
			}
			mappedRate := PriceBasedRate{Name: rate.Name, PriceCents: price}
			if rate.MinOrderSubtotal != nil {
				min, err := parsePriceCents(*rate.MinOrderSubtotal)
				if err != nil {
					return nil, err
				}
				mappedRate.MinOrderSubtotalCents = &min
			}
			if rate.MaxOrderSubtotal != nil {
				max, err := parsePriceCents(*rate.MaxOrderSubtotal)
				if err != nil {
					return nil, err
				}
				mappedRate.MaxOrderSubtotalCents = &max
			}
			mapped.PriceBasedRates = append(mapped.PriceBasedRates, mappedRate)
		}

		for _, rate := range zone.WeightBasedRates {
			price, err := parsePriceCents(rate.Price)
			if err != nil {
				return nil, err
			}
			mappedRate := WeightBasedRate{Name: rate.Name, PriceCents: price}
			if rate.WeightLow != nil {
				mappedRate.WeightLowGrams = int(*rate.WeightLow * gramsPerPlatformWeightUnit)
			}
			if rate.WeightHigh != nil {
				grams := int(*rate.WeightHigh * gramsPerPlatformWeightUnit)
				mappedRate.WeightHighGrams = &grams
			}
			mapped.WeightBasedRates = append(mapped.WeightBasedRates, mappedRate)
		}

		zones = append(zones, mapped)
	}
	return zones, nil
}

// parsePriceCents converts the API's decimal price strings ("12.50") into
// integer cents without floating-point drift.
func parsePriceCents(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	dec, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("parse price %q", raw))
	}
	return int(dec.Mul(decimal.NewFromInt(100)).IntPart()), nil
}

package shopify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/andesmarket/shipping-backend/pkg/errors"
)

const zonesFixture = `{
  "shipping_zones": [
    {
      "id": 42,
      "name": "Nacional",
      "price_based_shipping_rates": [
        {"name": "Envío estándar", "price": "39.90", "min_order_subtotal": "0.00", "max_order_subtotal": "500.00"},
        {"name": "Envío express", "price": "79.90", "min_order_subtotal": null, "max_order_subtotal": null}
      ],
      "weight_based_shipping_rates": [
        {"name": "Carga pesada", "price": "120.00", "weight_low": 5.0, "weight_high": 20.0}
      ]
    }
  ]
}`

func newTestServer(t *testing.T, status int, body string, gotToken *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotToken != nil {
			*gotToken = r.Header.Get("X-Shopify-Access-Token")
		}
		if r.URL.Path != "/admin/api/2023-10/shipping_zones.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestListShippingZonesDecodesRates(t *testing.T) {
	var gotToken string
	server := newTestServer(t, http.StatusOK, zonesFixture, &gotToken)
	defer server.Close()

	client := NewClient("2023-10", 0, WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	zones, err := client.ListShippingZones(context.Background(), Credentials{Domain: "tienda.example.com", Token: "tok-1"})
	if err != nil {
		t.Fatalf("list zones: %v", err)
	}
	if gotToken != "tok-1" {
		t.Fatalf("expected access token header, got %q", gotToken)
	}
	if len(zones) != 1 {
		t.Fatalf("expected one zone, got %d", len(zones))
	}

	zone := zones[0]
	if zone.Name != "Nacional" {
		t.Fatalf("unexpected zone name %s", zone.Name)
	}
	if len(zone.PriceBasedRates) != 2 {
		t.Fatalf("expected 2 price rates, got %d", len(zone.PriceBasedRates))
	}

	standard := zone.PriceBasedRates[0]
	if standard.PriceCents != 3990 {
		t.Fatalf("expected 3990 cents, got %d", standard.PriceCents)
	}
	if standard.MinOrderSubtotalCents == nil || *standard.MinOrderSubtotalCents != 0 {
		t.Fatalf("expected min subtotal 0, got %v", standard.MinOrderSubtotalCents)
	}
	if standard.MaxOrderSubtotalCents == nil || *standard.MaxOrderSubtotalCents != 50000 {
		t.Fatalf("expected max subtotal 50000, got %v", standard.MaxOrderSubtotalCents)
	}

	express := zone.PriceBasedRates[1]
	if express.MinOrderSubtotalCents != nil || express.MaxOrderSubtotalCents != nil {
		t.Fatal("expected unbounded express rate")
	}

	if len(zone.WeightBasedRates) != 1 {
		t.Fatalf("expected 1 weight rate, got %d", len(zone.WeightBasedRates))
	}
	heavy := zone.WeightBasedRates[0]
	if heavy.WeightLowGrams != 5000 {
		t.Fatalf("expected 5000 g low bound, got %d", heavy.WeightLowGrams)
	}
	if heavy.WeightHighGrams == nil || *heavy.WeightHighGrams != 20000 {
		t.Fatalf("expected 20000 g high bound, got %v", heavy.WeightHighGrams)
	}
	if heavy.PriceCents != 12000 {
		t.Fatalf("expected 12000 cents, got %d", heavy.PriceCents)
	}
}

func TestListShippingZonesMissingCredentials(t *testing.T) {
	client := NewClient("", 0)
	_, err := client.ListShippingZones(context.Background(), Credentials{})
	if err != ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestListShippingZonesUpstreamFailure(t *testing.T) {
	server := newTestServer(t, http.StatusUnauthorized, `{"errors":"invalid token"}`, nil)
	defer server.Close()

	client := NewClient("2023-10", 0, WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	_, err := client.ListShippingZones(context.Background(), Credentials{Domain: "tienda.example.com", Token: "bad"})
	if err == nil {
		t.Fatal("expected error on non-2xx status")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestListShippingZonesBadPayload(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"shipping_zones": [{"price_based_shipping_rates": [{"price": "not-a-number"}]}]}`, nil)
	defer server.Close()

	client := NewClient("2023-10", 0, WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	_, err := client.ListShippingZones(context.Background(), Credentials{Domain: "tienda.example.com", Token: "tok"})
	if err == nil {
		t.Fatal("expected error for malformed price")
	}
}

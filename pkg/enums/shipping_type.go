package enums

import "fmt"

// ShippingType selects the legacy per-store shipping mode.
type ShippingType string

const (
	// ShippingTypeFlatShopify defers pricing to the platform's native zones.
	ShippingTypeFlatShopify ShippingType = "flat_shopify"
	// ShippingTypeManualZones prices from the store's own zone table.
	ShippingTypeManualZones ShippingType = "manual_zones"
)

var validShippingTypes = []ShippingType{
	ShippingTypeFlatShopify,
	ShippingTypeManualZones,
}

// String implements fmt.Stringer.
func (s ShippingType) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShippingType.
func (s ShippingType) IsValid() bool {
	for _, candidate := range validShippingTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingType converts raw input into a ShippingType.
func ParseShippingType(value string) (ShippingType, error) {
	for _, candidate := range validShippingTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping type %q", value)
}

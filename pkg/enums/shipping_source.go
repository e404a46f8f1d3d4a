package enums

import "fmt"

// ShippingSource records which fallback tier produced a priced option.
type ShippingSource string

const (
	ShippingSourceAdvanced ShippingSource = "advanced"
	ShippingSourceLegacy   ShippingSource = "legacy"
	ShippingSourcePlatform ShippingSource = "platform"
	ShippingSourceDefault  ShippingSource = "default"
)

var validShippingSources = []ShippingSource{
	ShippingSourceAdvanced,
	ShippingSourceLegacy,
	ShippingSourcePlatform,
	ShippingSourceDefault,
}

// String implements fmt.Stringer.
func (s ShippingSource) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShippingSource.
func (s ShippingSource) IsValid() bool {
	for _, candidate := range validShippingSources {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingSource converts raw input into a ShippingSource.
func ParseShippingSource(value string) (ShippingSource, error) {
	for _, candidate := range validShippingSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping source %q", value)
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LocalityPrices stores the legacy per-comuna flat prices inside a JSONB
// column, keyed by comuna name as configured in the dashboard.
type LocalityPrices map[string]int

// Value serializes the map to JSON.
func (p *LocalityPrices) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan decodes JSONB into the map.
func (p *LocalityPrices) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded LocalityPrices
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*p = decoded
	return nil
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}

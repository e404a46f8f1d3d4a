package enums

import "fmt"

// WeightUnit is the unit a variant weight was declared in.
type WeightUnit string

const (
	WeightUnitGrams     WeightUnit = "g"
	WeightUnitKilograms WeightUnit = "kg"
	WeightUnitPounds    WeightUnit = "lb"
	WeightUnitOunces    WeightUnit = "oz"
)

var validWeightUnits = []WeightUnit{
	WeightUnitGrams,
	WeightUnitKilograms,
	WeightUnitPounds,
	WeightUnitOunces,
}

// String implements fmt.Stringer.
func (u WeightUnit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known WeightUnit.
func (u WeightUnit) IsValid() bool {
	for _, candidate := range validWeightUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseWeightUnit converts raw input into a WeightUnit.
func ParseWeightUnit(value string) (WeightUnit, error) {
	for _, candidate := range validWeightUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid weight unit %q", value)
}

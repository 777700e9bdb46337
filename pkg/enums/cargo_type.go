package enums

import "fmt"

// CargoType is the fixed category list offered on the offer form.
type CargoType string

const (
	CargoTypeGeneral      CargoType = "general"
	CargoTypePalletized   CargoType = "palletized"
	CargoTypeBulk         CargoType = "bulk"
	CargoTypeRefrigerated CargoType = "refrigerated"
	CargoTypeHazardous    CargoType = "hazardous"
	CargoTypeVehicle      CargoType = "vehicle"
	CargoTypeMachinery    CargoType = "machinery"
	CargoTypeTextile      CargoType = "textile"
	CargoTypeFoodstuff    CargoType = "foodstuff"
)

var validCargoTypes = []CargoType{
	CargoTypeGeneral,
	CargoTypePalletized,
	CargoTypeBulk,
	CargoTypeRefrigerated,
	CargoTypeHazardous,
	CargoTypeVehicle,
	CargoTypeMachinery,
	CargoTypeTextile,
	CargoTypeFoodstuff,
}

// String implements fmt.Stringer.
func (c CargoType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CargoType.
func (c CargoType) IsValid() bool {
	for _, candidate := range validCargoTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCargoType converts raw input into a CargoType.
func ParseCargoType(value string) (CargoType, error) {
	for _, candidate := range validCargoTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cargo type %q", value)
}

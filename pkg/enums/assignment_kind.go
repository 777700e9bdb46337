package enums

import "fmt"

// AssignmentKind names what was attached to an order in the assignment log.
type AssignmentKind string

const (
	AssignmentKindOperation AssignmentKind = "operation"
	AssignmentKindFleet     AssignmentKind = "fleet"
	AssignmentKindCustoms   AssignmentKind = "customs"
	AssignmentKindVehicle   AssignmentKind = "vehicle"
	AssignmentKindDriver    AssignmentKind = "driver"
	AssignmentKindTrailer   AssignmentKind = "trailer"
)

var validAssignmentKinds = []AssignmentKind{
	AssignmentKindOperation,
	AssignmentKindFleet,
	AssignmentKindCustoms,
	AssignmentKindVehicle,
	AssignmentKindDriver,
	AssignmentKindTrailer,
}

// String implements fmt.Stringer.
func (a AssignmentKind) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AssignmentKind.
func (a AssignmentKind) IsValid() bool {
	for _, candidate := range validAssignmentKinds {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAssignmentKind converts raw input into an AssignmentKind.
func ParseAssignmentKind(value string) (AssignmentKind, error) {
	for _, candidate := range validAssignmentKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid assignment kind %q", value)
}

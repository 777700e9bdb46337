package enums

import "fmt"

// TripStatus tracks the lifecycle of an order from offer to delivery.
type TripStatus string

const (
	TripStatusOffer     TripStatus = "TEKLIF_ASAMASI"
	TripStatusApproved  TripStatus = "ONAYLANDI"
	TripStatusInTransit TripStatus = "YOLA_CIKTI"
	TripStatusInCustoms TripStatus = "GUMRUKTE"
	TripStatusCompleted TripStatus = "TAMAMLANDI"
	TripStatusCancelled TripStatus = "IPTAL_EDILDI"
)

var validTripStatuses = []TripStatus{
	TripStatusOffer,
	TripStatusApproved,
	TripStatusInTransit,
	TripStatusInCustoms,
	TripStatusCompleted,
	TripStatusCancelled,
}

// Older clients still send the pre-migration vocabulary; parsing folds it
// into the canonical set.
var legacyTripStatuses = map[string]TripStatus{
	"ONAYLANAN_TEKLIF": TripStatusApproved,
	"TESLIM_EDILDI":    TripStatusCompleted,
	"REDDEDILDI":       TripStatusCancelled,
}

// String implements fmt.Stringer.
func (t TripStatus) String() string {
	return string(t)
}

// IsValid reports whether the value is a known canonical TripStatus.
func (t TripStatus) IsValid() bool {
	for _, candidate := range validTripStatuses {
		if candidate == t {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (t TripStatus) IsTerminal() bool {
	return t == TripStatusCompleted || t == TripStatusCancelled
}

// IsTransit reports whether the status belongs to the post-approval transit band.
func (t TripStatus) IsTransit() bool {
	return t == TripStatusInTransit || t == TripStatusInCustoms
}

// ParseTripStatus converts raw input into a canonical TripStatus, folding
// legacy spellings.
func ParseTripStatus(value string) (TripStatus, error) {
	for _, candidate := range validTripStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	if mapped, ok := legacyTripStatuses[value]; ok {
		return mapped, nil
	}
	return "", fmt.Errorf("invalid trip status %q", value)
}

// tripTransitions lists the forward edges of the lifecycle. Cancellation is
// handled separately because it is reachable from every non-terminal state.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusOffer:     {TripStatusApproved},
	TripStatusApproved:  {TripStatusInTransit, TripStatusInCustoms, TripStatusCompleted},
	TripStatusInTransit: {TripStatusInCustoms, TripStatusCompleted},
	TripStatusInCustoms: {TripStatusInTransit, TripStatusCompleted},
}

// CanTransition reports whether the lifecycle permits moving from one status
// to the next, independent of who is asking.
func CanTransition(from, to TripStatus) bool {
	if from.IsTerminal() {
		return false
	}
	if to == TripStatusCancelled {
		return true
	}
	for _, candidate := range tripTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

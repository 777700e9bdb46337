package orders

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DraftErrors maps dotted field paths (cargoItems.0.weightKg) to messages.
type DraftErrors map[string]string

func (e DraftErrors) add(path, message string) {
	if _, taken := e[path]; !taken {
		e[path] = message
	}
}

// ValidateDraft checks an offer draft before it is persisted. It walks the
// whole input so the caller gets every problem in one pass.
func ValidateDraft(input CreateOrderInput) DraftErrors {
	errs := DraftErrors{}

	if input.CustomerID == uuid.Nil {
		errs.add("customerId", "customer is required")
	}

	validateRouteStop(errs, "from", input.From)
	validateRouteStop(errs, "to", input.To)

	if len(input.CargoItems) == 0 {
		errs.add("cargoItems", "at least one cargo item is required")
	}
	for i, item := range input.CargoItems {
		prefix := fmt.Sprintf("cargoItems.%d", i)
		if !item.Type.IsValid() {
			errs.add(prefix+".type", "unknown cargo type")
		}
		if item.WeightKg <= 0 {
			errs.add(prefix+".weightKg", "weight must be greater than zero")
		}
		if item.LengthCm <= 0 {
			errs.add(prefix+".lengthCm", "length must be greater than zero")
		}
		if item.WidthCm <= 0 {
			errs.add(prefix+".widthCm", "width must be greater than zero")
		}
		if item.HeightCm <= 0 {
			errs.add(prefix+".heightCm", "height must be greater than zero")
		}
	}

	if input.QuotedPrice != nil && !input.QuotedPrice.IsPositive() {
		errs.add("quotedPrice", "quoted price must be greater than zero")
	}
	if input.Currency != nil && !input.Currency.IsValid() {
		errs.add("currency", "unknown currency")
	}
	if input.QuotedPrice != nil && input.Currency == nil {
		errs.add("currency", "currency is required with a quoted price")
	}

	if input.LoadingDate != nil && input.DeadlineDate != nil &&
		input.DeadlineDate.Before(*input.LoadingDate) {
		errs.add("deadlineDate", "deadline cannot precede the loading date")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateRouteStop(errs DraftErrors, prefix string, stop RouteStopInput) {
	if strings.TrimSpace(stop.Country) == "" {
		errs.add(prefix+".country", "country is required")
	}
	if strings.TrimSpace(stop.City) == "" {
		errs.add(prefix+".city", "city is required")
	}
	if strings.TrimSpace(stop.PostalCode) == "" {
		errs.add(prefix+".postalCode", "postal code is required")
	}
	if email := strings.TrimSpace(stop.ContactEmail); email != "" && !strings.Contains(email, "@") {
		errs.add(prefix+".contactEmail", "contact email is invalid")
	}
}

// validateUpdate reuses the draft rules for the fields present on an update.
func validateUpdate(order CreateOrderInput, input UpdateOrderInput) DraftErrors {
	merged := order
	if input.From != nil {
		merged.From = *input.From
	}
	if input.To != nil {
		merged.To = *input.To
	}
	if input.CargoItems != nil {
		merged.CargoItems = input.CargoItems
	}
	if input.QuotedPrice != nil {
		merged.QuotedPrice = input.QuotedPrice
	}
	if input.Currency != nil {
		merged.Currency = input.Currency
	}
	if input.LoadingDate != nil {
		merged.LoadingDate = input.LoadingDate
	}
	if input.DeadlineDate != nil {
		merged.DeadlineDate = input.DeadlineDate
	}
	return ValidateDraft(merged)
}

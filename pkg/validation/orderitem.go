package validation

import (
	"strconv"
	"strings"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/manifest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
)

const (
	maxQuantity = 2147483646
	maxPrice    = 999999999999999.999
)

// QuantityErrors validates a quantity string. The checks short-circuit, so
// one field yields at most one error.
func QuantityErrors(value string) *Error {
	if strings.TrimSpace(value) == "" {
		return &Error{Field: "Quantity", ID: "QuantityRequired"}
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &Error{Field: "Quantity", ID: "QuantityMustBeANumber"}
	}
	if n <= 0 {
		return &Error{Field: "Quantity", ID: "QuantityGreaterThanZero"}
	}
	if strings.Contains(value, ".") {
		return &Error{Field: "Quantity", ID: "QuantityInvalid"}
	}
	if n > maxQuantity {
		return &Error{Field: "Quantity", ID: "QuantityLessThanMax"}
	}
	// ParseFloat admits exponent and hex forms the wire's integer does not.
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return &Error{Field: "Quantity", ID: "QuantityInvalid"}
	}

	return nil
}

// PriceErrors validates a price string: required, numeric, at most three
// decimal places, below the ORDAPI ceiling.
func PriceErrors(value string) *Error {
	if strings.TrimSpace(value) == "" {
		return &Error{Field: "Price", ID: "PriceRequired"}
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &Error{Field: "Price", ID: "PriceMustBeANumber"}
	}
	if _, frac, found := strings.Cut(value, "."); found && len(frac) > 3 {
		return &Error{Field: "Price", ID: "PriceMoreThan3dp"}
	}
	if n > maxPrice {
		return &Error{Field: "Price", ID: "PriceLessThanMax"}
	}

	return nil
}

// EstimationPeriodErrors validates the estimation period radio. The field is
// only present on OnDemand pages; the caller gates on the manifest.
func EstimationPeriodErrors(value string) *Error {
	if strings.TrimSpace(value) == "" {
		return &Error{Field: "SelectEstimationPeriod", ID: "EstimationPeriodRequired"}
	}
	return nil
}

// PracticeSizeErrors validates one practice size entry of the patient flow's
// solution table.
func PracticeSizeErrors(value string) *Error {
	if strings.TrimSpace(value) == "" {
		return &Error{Field: "PracticeSize", ID: "PracticeSizeRequired"}
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &Error{Field: "PracticeSize", ID: "PracticeSizeMustBeANumber"}
	}
	if strings.Contains(value, ".") {
		return &Error{Field: "PracticeSize", ID: "PracticeSizeInvalid"}
	}
	if n > maxQuantity {
		return &Error{Field: "PracticeSize", ID: "PracticeSizeLessThanMax"}
	}
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return &Error{Field: "PracticeSize", ID: "PracticeSizeInvalid"}
	}

	return nil
}

// ValidateOrderItemForm runs the single-item validators declared by the
// manifest against the submitted values, in the page's question order. A
// field the manifest does not declare is not on the page and is skipped.
func ValidateOrderItemForm(m *manifest.Manifest, values models.FormValues) []Error {
	errs := []Error{}

	appendErr := func(e *Error) {
		if e != nil {
			errs = append(errs, *e)
		}
	}

	for i := range m.Questions {
		switch m.Questions[i].ID {
		case "deliveryDate":
			appendErr(DateErrors("deliveryDate", values))
		case "quantity":
			appendErr(QuantityErrors(values.Get("quantity")))
		case "selectEstimationPeriod":
			appendErr(EstimationPeriodErrors(values.Get("selectEstimationPeriod")))
		case "price":
			appendErr(PriceErrors(values.Get("price")))
		}
	}

	// The price question may live in the add-price table instead of the
	// question list.
	if m.Question("price") == nil && m.AddPriceTable.Cell("price") != nil {
		appendErr(PriceErrors(values.Get("price")))
	}

	return Dedupe(errs)
}

// ValidateOrderItemFormBulk runs the multi-recipient variant: quantity,
// practice size and delivery date checks per recipient row, plus the shared
// price. Rows failing the same rule collapse to one error.
func ValidateOrderItemFormBulk(m *manifest.Manifest, values models.FormValues, recipientCount int) []Error {
	errs := []Error{}

	appendErr := func(e *Error) {
		if e != nil {
			errs = append(errs, *e)
		}
	}

	hasQuantity := m.SolutionCell("quantity") != nil || m.HasQuestion("quantity")
	hasPracticeSize := m.SolutionCell("practiceSize") != nil
	hasDeliveryDate := m.SolutionCell("deliveryDate") != nil || m.HasQuestion("deliveryDate")

	// A single submitted date is shared by every recipient row.
	sharedDate := values.Len("deliveryDate-day") == 1

	for i := 0; i < recipientCount; i++ {
		if hasQuantity {
			appendErr(QuantityErrors(values.At("quantity", i)))
		}
		if hasPracticeSize {
			appendErr(PracticeSizeErrors(values.At("practiceSize", i)))
		}
		if hasDeliveryDate {
			idx := i
			if sharedDate {
				idx = 0
			}
			appendErr(DateErrorsAt("deliveryDate", values, idx))
		}
	}

	if m.HasQuestion("selectEstimationPeriod") {
		appendErr(EstimationPeriodErrors(values.Get("selectEstimationPeriod")))
	}
	if m.PriceCell() != nil {
		appendErr(PriceErrors(values.Get("price")))
	}

	return Dedupe(errs)
}

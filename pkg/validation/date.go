package validation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
)

const (
	partDay   = "day"
	partMonth = "month"
	partYear  = "year"
)

// ExtractDate assembles the {id}-day/-month/-year composite into a
// zero-padded YYYY-MM-DD string. It returns "" when any part is missing or
// empty; an absent date is not an error at this layer. No calendar check is
// performed here.
func ExtractDate(id string, values models.FormValues) string {
	return buildDate(values.Get(id+"-day"), values.Get(id+"-month"), values.Get(id+"-year"))
}

// ExtractDateAt is the bulk-row variant of ExtractDate, reading the date
// parts at the given row index.
func ExtractDateAt(id string, values models.FormValues, index int) string {
	return buildDate(values.At(id+"-day", index), values.At(id+"-month", index), values.At(id+"-year", index))
}

func buildDate(day, month, year string) string {
	if day == "" || month == "" || year == "" {
		return ""
	}
	return fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day))
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// SplitDate splits a YYYY-MM-DD string back into its day, month and year
// parts for form display. Malformed input yields empty parts.
func SplitDate(iso string) (day, month, year string) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", "", ""
	}
	return strconv.Itoa(t.Day()), strconv.Itoa(int(t.Month())), strconv.Itoa(t.Year())
}

// DateErrors checks the {id}-day/-month/-year composite for completeness and
// structural validity. It returns nil for a valid date, otherwise exactly
// one error; the checks short-circuit in a fixed order, so only the first
// failing rule is reported.
func DateErrors(id string, values models.FormValues) *Error {
	return dateErrors(id, values.Get(id+"-day"), values.Get(id+"-month"), values.Get(id+"-year"))
}

// DateErrorsAt is the bulk-row variant of DateErrors.
func DateErrorsAt(id string, values models.FormValues, index int) *Error {
	return dateErrors(id, values.At(id+"-day", index), values.At(id+"-month", index), values.At(id+"-year", index))
}

func dateErrors(id, day, month, year string) *Error {
	field := Capitalize(id)

	if day == "" && month == "" && year == "" {
		return &Error{Field: field, ID: field + "Required", Part: []string{partDay, partMonth, partYear}}
	}
	if day == "" {
		return &Error{Field: field, ID: field + "DayRequired", Part: []string{partDay}}
	}
	if month == "" {
		return &Error{Field: field, ID: field + "MonthRequired", Part: []string{partMonth}}
	}
	if year == "" {
		return &Error{Field: field, ID: field + "YearRequired", Part: []string{partYear}}
	}

	if len(year) != 4 {
		return &Error{Field: field, ID: field + "YearLength", Part: []string{partYear}}
	}

	d, err := strconv.Atoi(day)
	if err != nil || d > 31 {
		return &Error{Field: field, ID: field + "NotReal", Part: []string{partDay}}
	}
	m, err := strconv.Atoi(month)
	if err != nil || m > 12 {
		return &Error{Field: field, ID: field + "NotReal", Part: []string{partMonth}}
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 1000 {
		return &Error{Field: field, ID: field + "NotReal", Part: []string{partYear}}
	}

	// A day/month combination that rolls over when normalised (e.g. 31
	// February) cannot be attributed to one part alone.
	normalised := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if normalised.Year() != y || normalised.Month() != time.Month(m) {
		return &Error{Field: field, ID: field + "NotReal", Part: []string{partDay, partMonth}}
	}

	return nil
}

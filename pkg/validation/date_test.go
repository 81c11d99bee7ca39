package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
)

func dateValues(day, month, year string) models.FormValues {
	return models.FormValues{
		"deliveryDate-day":   {day},
		"deliveryDate-month": {month},
		"deliveryDate-year":  {year},
	}
}

func TestExtractDate(t *testing.T) {
	assert.Equal(t, "2020-02-09", ExtractDate("deliveryDate", dateValues("9", "2", "2020")))
	assert.Equal(t, "2020-12-31", ExtractDate("deliveryDate", dateValues("31", "12", "2020")))
}

func TestExtractDateMissingPart(t *testing.T) {
	assert.Equal(t, "", ExtractDate("deliveryDate", dateValues("", "2", "2020")))
	assert.Equal(t, "", ExtractDate("deliveryDate", dateValues("9", "", "2020")))
	assert.Equal(t, "", ExtractDate("deliveryDate", dateValues("9", "2", "")))
	assert.Equal(t, "", ExtractDate("deliveryDate", models.FormValues{}))
}

func TestExtractDateNoCalendarCheck(t *testing.T) {
	// Extraction is structural only, impossible dates still assemble.
	assert.Equal(t, "2020-02-31", ExtractDate("deliveryDate", dateValues("31", "2", "2020")))
}

func TestExtractDateAt(t *testing.T) {
	values := models.FormValues{
		"deliveryDate-day":   {"1", "15"},
		"deliveryDate-month": {"3", "6"},
		"deliveryDate-year":  {"2020", "2021"},
	}

	assert.Equal(t, "2020-03-01", ExtractDateAt("deliveryDate", values, 0))
	assert.Equal(t, "2021-06-15", ExtractDateAt("deliveryDate", values, 1))
	assert.Equal(t, "", ExtractDateAt("deliveryDate", values, 2))
}

func TestSplitDate(t *testing.T) {
	day, month, year := SplitDate("2020-02-09")
	assert.Equal(t, "9", day)
	assert.Equal(t, "2", month)
	assert.Equal(t, "2020", year)
}

func TestSplitDateMalformed(t *testing.T) {
	day, month, year := SplitDate("not-a-date")
	assert.Empty(t, day)
	assert.Empty(t, month)
	assert.Empty(t, year)
}

func TestDateErrorsValid(t *testing.T) {
	assert.Nil(t, DateErrors("deliveryDate", dateValues("9", "2", "2020")))
	assert.Nil(t, DateErrors("deliveryDate", dateValues("29", "2", "2020"))) // leap year
	assert.Nil(t, DateErrors("deliveryDate", dateValues("31", "12", "9999")))
}

func TestDateErrors(t *testing.T) {
	tests := []struct {
		name  string
		day   string
		month string
		year  string
		id    string
		part  []string
	}{
		{"all empty", "", "", "", "DeliveryDateRequired", []string{"day", "month", "year"}},
		{"day missing", "", "2", "2020", "DeliveryDateDayRequired", []string{"day"}},
		{"month missing", "9", "", "2020", "DeliveryDateMonthRequired", []string{"month"}},
		{"year missing", "9", "2", "", "DeliveryDateYearRequired", []string{"year"}},
		{"year too short", "9", "2", "20", "DeliveryDateYearLength", []string{"year"}},
		{"year too long", "9", "2", "20200", "DeliveryDateYearLength", []string{"year"}},
		{"day too big", "32", "2", "2020", "DeliveryDateNotReal", []string{"day"}},
		{"day not numeric", "abc", "2", "2020", "DeliveryDateNotReal", []string{"day"}},
		{"month too big", "9", "13", "2020", "DeliveryDateNotReal", []string{"month"}},
		{"month not numeric", "9", "xy", "2020", "DeliveryDateNotReal", []string{"month"}},
		{"year below minimum", "9", "2", "0999", "DeliveryDateNotReal", []string{"year"}},
		{"year not numeric", "9", "2", "abcd", "DeliveryDateNotReal", []string{"year"}},
		{"rollover", "31", "2", "2020", "DeliveryDateNotReal", []string{"day", "month"}},
		{"not a leap year", "29", "2", "2019", "DeliveryDateNotReal", []string{"day", "month"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := DateErrors("deliveryDate", dateValues(tc.day, tc.month, tc.year))
			require.NotNil(t, err)
			assert.Equal(t, "DeliveryDate", err.Field)
			assert.Equal(t, tc.id, err.ID)
			assert.Equal(t, tc.part, err.Part)
		})
	}
}

func TestDateErrorsPrecedence(t *testing.T) {
	// Missing day wins over everything after it.
	err := DateErrors("deliveryDate", dateValues("", "13", "20"))
	require.NotNil(t, err)
	assert.Equal(t, "DeliveryDateDayRequired", err.ID)

	// Year length wins over calendar checks.
	err = DateErrors("deliveryDate", dateValues("32", "2", "20"))
	require.NotNil(t, err)
	assert.Equal(t, "DeliveryDateYearLength", err.ID)

	// An invalid day reports before an invalid year.
	err = DateErrors("deliveryDate", dateValues("32", "2", "0500"))
	require.NotNil(t, err)
	assert.Equal(t, "DeliveryDateNotReal", err.ID)
	assert.Equal(t, []string{"day"}, err.Part)
}

func TestDateErrorsAt(t *testing.T) {
	values := models.FormValues{
		"deliveryDate-day":   {"9", ""},
		"deliveryDate-month": {"2", "2"},
		"deliveryDate-year":  {"2020", "2020"},
	}

	assert.Nil(t, DateErrorsAt("deliveryDate", values, 0))

	err := DateErrorsAt("deliveryDate", values, 1)
	require.NotNil(t, err)
	assert.Equal(t, "DeliveryDateDayRequired", err.ID)
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/manifest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
)

func TestQuantityErrors(t *testing.T) {
	tests := []struct {
		value string
		id    string
	}{
		{"", "QuantityRequired"},
		{"   ", "QuantityRequired"},
		{"abc", "QuantityMustBeANumber"},
		{"-1", "QuantityGreaterThanZero"},
		{"0", "QuantityGreaterThanZero"},
		{"1.1", "QuantityInvalid"},
		{"2147483647", "QuantityLessThanMax"},
		{"1e3", "QuantityInvalid"},
		{"0x1p4", "QuantityInvalid"},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			err := QuantityErrors(tc.value)
			require.NotNil(t, err)
			assert.Equal(t, "Quantity", err.Field)
			assert.Equal(t, tc.id, err.ID)
		})
	}
}

func TestQuantityErrorsValid(t *testing.T) {
	assert.Nil(t, QuantityErrors("1"))
	assert.Nil(t, QuantityErrors("100"))
	assert.Nil(t, QuantityErrors("2147483646"))
}

func TestPriceErrors(t *testing.T) {
	tests := []struct {
		value string
		id    string
	}{
		{"", "PriceRequired"},
		{"abc", "PriceMustBeANumber"},
		{"1.2345", "PriceMoreThan3dp"},
		{"1000000000000001", "PriceLessThanMax"},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			err := PriceErrors(tc.value)
			require.NotNil(t, err)
			assert.Equal(t, "Price", err.Field)
			assert.Equal(t, tc.id, err.ID)
		})
	}
}

func TestPriceErrorsValid(t *testing.T) {
	assert.Nil(t, PriceErrors("0"))
	assert.Nil(t, PriceErrors("1.25"))
	assert.Nil(t, PriceErrors("1.255"))
	assert.Nil(t, PriceErrors("999999999999999"))
}

func TestEstimationPeriodErrors(t *testing.T) {
	err := EstimationPeriodErrors("")
	require.NotNil(t, err)
	assert.Equal(t, "SelectEstimationPeriod", err.Field)
	assert.Equal(t, "EstimationPeriodRequired", err.ID)

	assert.Nil(t, EstimationPeriodErrors("month"))
}

func TestPracticeSizeErrors(t *testing.T) {
	tests := []struct {
		value string
		id    string
	}{
		{"", "PracticeSizeRequired"},
		{"abc", "PracticeSizeMustBeANumber"},
		{"1.5", "PracticeSizeInvalid"},
		{"2147483647", "PracticeSizeLessThanMax"},
		{"1e3", "PracticeSizeInvalid"},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			err := PracticeSizeErrors(tc.value)
			require.NotNil(t, err)
			assert.Equal(t, "PracticeSize", err.Field)
			assert.Equal(t, tc.id, err.ID)
		})
	}

	assert.Nil(t, PracticeSizeErrors("1200"))
}

func singleItemManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Title: "Catalogue Solution information for",
		Questions: []manifest.Question{
			{ID: "deliveryDate", Type: manifest.QuestionDate},
			{ID: "quantity", Type: manifest.QuestionText},
			{ID: "selectEstimationPeriod", Type: manifest.QuestionRadio},
		},
		AddPriceTable: &manifest.Table{
			ColumnInfo: []manifest.Column{{Data: "Price (£)"}, {Data: "Unit"}},
			CellInfo: []manifest.Cell{
				{Kind: manifest.CellQuestion, Question: &manifest.Question{ID: "price", Type: manifest.QuestionText}},
				{Kind: manifest.CellUnit},
			},
		},
		ErrorMessages: map[string]string{},
	}
}

func bulkManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Title: "Catalogue Solution information for",
		SolutionTable: &manifest.Table{
			ColumnInfo: []manifest.Column{
				{Data: "Recipient name (ODS code)"},
				{Data: "Practice list size"},
				{Data: "Planned delivery date"},
			},
			CellInfo: []manifest.Cell{
				{Kind: manifest.CellRecipient},
				{Kind: manifest.CellQuestion, Question: &manifest.Question{ID: "practiceSize", Type: manifest.QuestionText}},
				{Kind: manifest.CellQuestion, Question: &manifest.Question{ID: "deliveryDate", Type: manifest.QuestionDate}},
			},
		},
		AddPriceTable: &manifest.Table{
			ColumnInfo: []manifest.Column{{Data: "Price (£)"}, {Data: "Unit"}},
			CellInfo: []manifest.Cell{
				{Kind: manifest.CellQuestion, Question: &manifest.Question{ID: "price", Type: manifest.QuestionText}},
				{Kind: manifest.CellUnit},
			},
		},
		ErrorMessages: map[string]string{},
	}
}

func TestValidateOrderItemFormValid(t *testing.T) {
	values := models.FormValues{
		"deliveryDate-day":       {"9"},
		"deliveryDate-month":     {"2"},
		"deliveryDate-year":      {"2020"},
		"quantity":               {"10"},
		"selectEstimationPeriod": {"month"},
		"price":                  {"1.25"},
	}

	assert.Empty(t, ValidateOrderItemForm(singleItemManifest(), values))
}

func TestValidateOrderItemFormAllMissing(t *testing.T) {
	errs := ValidateOrderItemForm(singleItemManifest(), models.FormValues{})

	require.Len(t, errs, 4)
	assert.Equal(t, "DeliveryDateRequired", errs[0].ID)
	assert.Equal(t, "QuantityRequired", errs[1].ID)
	assert.Equal(t, "EstimationPeriodRequired", errs[2].ID)
	assert.Equal(t, "PriceRequired", errs[3].ID)
}

func TestValidateOrderItemFormSkipsUndeclaredQuestions(t *testing.T) {
	m := singleItemManifest()
	m.Questions = []manifest.Question{{ID: "quantity", Type: manifest.QuestionText}}

	errs := ValidateOrderItemForm(m, models.FormValues{"quantity": {"5"}})

	// Only the missing price fires; date and estimation period are not on
	// this page.
	require.Len(t, errs, 1)
	assert.Equal(t, "PriceRequired", errs[0].ID)
}

func TestValidateOrderItemFormBulkPerRow(t *testing.T) {
	values := models.FormValues{
		"practiceSize":       {"100", ""},
		"deliveryDate-day":   {"9", "32"},
		"deliveryDate-month": {"2", "2"},
		"deliveryDate-year":  {"2020", "2020"},
		"price":              {"1.25"},
	}

	errs := ValidateOrderItemFormBulk(bulkManifest(), values, 2)

	require.Len(t, errs, 2)
	assert.Equal(t, "PracticeSizeRequired", errs[0].ID)
	assert.Equal(t, "DeliveryDateNotReal", errs[1].ID)
	assert.Equal(t, []string{"day"}, errs[1].Part)
}

func TestValidateOrderItemFormBulkSharedDate(t *testing.T) {
	// One submitted date applies to every recipient row.
	values := models.FormValues{
		"practiceSize":       {"100", "200", "300"},
		"deliveryDate-day":   {"9"},
		"deliveryDate-month": {"2"},
		"deliveryDate-year":  {"2020"},
		"price":              {"1.25"},
	}

	assert.Empty(t, ValidateOrderItemFormBulk(bulkManifest(), values, 3))
}

func TestValidateOrderItemFormBulkCollapsesRepeatedErrors(t *testing.T) {
	values := models.FormValues{
		"practiceSize":       {"", "", ""},
		"deliveryDate-day":   {"9"},
		"deliveryDate-month": {"2"},
		"deliveryDate-year":  {"2020"},
		"price":              {"1.25"},
	}

	errs := ValidateOrderItemFormBulk(bulkManifest(), values, 3)

	require.Len(t, errs, 1)
	assert.Equal(t, "PracticeSizeRequired", errs[0].ID)
}

func TestDedupe(t *testing.T) {
	errs := []Error{
		{Field: "Quantity", ID: "QuantityRequired"},
		{Field: "Price", ID: "PriceRequired"},
		{Field: "Quantity", ID: "QuantityRequired"},
		{Field: "DeliveryDate", ID: "DeliveryDateNotReal", Part: []string{"day"}},
		{Field: "DeliveryDate", ID: "DeliveryDateNotReal", Part: []string{"month"}},
	}

	out := Dedupe(errs)

	// Same rule on different parts is a distinct error.
	require.Len(t, out, 4)
	assert.Equal(t, "QuantityRequired", out[0].ID)
	assert.Equal(t, "PriceRequired", out[1].ID)
	assert.Equal(t, []string{"day"}, out[2].Part)
	assert.Equal(t, []string{"month"}, out[3].Part)
}

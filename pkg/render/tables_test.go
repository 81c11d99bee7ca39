package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/manifest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/validation"
)

func priceTable() *manifest.Table {
	return &manifest.Table{
		ColumnInfo: []manifest.Column{{Data: "Price (£)"}, {Data: "Unit"}},
		CellInfo: []manifest.Cell{
			{Kind: manifest.CellQuestion, Question: &manifest.Question{ID: "price", Type: manifest.QuestionText}},
			{Kind: manifest.CellUnit},
		},
	}
}

func solutionTable() *manifest.Table {
	return &manifest.Table{
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
	}
}

func flatPrice() models.Price {
	return models.Price{
		ItemUnit: models.ItemUnit{Name: "patient", Description: "per patient"},
		TimeUnit: &models.TimeUnit{Name: "year", Description: "per year"},
		Price:    1.64,
	}
}

func TestGenerateAddPriceTable(t *testing.T) {
	values := models.FormValues{"price": {"1.64"}}

	out := GenerateAddPriceTable(priceTable(), flatPrice(), values, validation.ErrorMap{})

	require.NotNil(t, out)
	require.Len(t, out.Items, 1)
	require.Len(t, out.Items[0], 2)

	priceCell := out.Items[0][0]
	require.NotNil(t, priceCell.Question)
	assert.Equal(t, "price", priceCell.Question.ID)
	assert.Equal(t, "1.64", priceCell.Question.Data)

	assert.Equal(t, "per patient per year", out.Items[0][1].Data)
}

func TestGenerateAddPriceTableNoTimeUnit(t *testing.T) {
	price := flatPrice()
	price.TimeUnit = nil

	out := GenerateAddPriceTable(priceTable(), price, models.FormValues{}, validation.ErrorMap{})

	assert.Equal(t, "per patient", out.Items[0][1].Data)
}

func TestGenerateAddPriceTableNilManifestTable(t *testing.T) {
	assert.Nil(t, GenerateAddPriceTable(nil, flatPrice(), models.FormValues{}, validation.ErrorMap{}))
}

func TestGenerateSolutionTable(t *testing.T) {
	recipients := []models.ServiceRecipient{
		{Name: "Blue Mountain Medical Practice", OdsCode: "A10001"},
		{Name: "Green Valley Surgery", OdsCode: "A10002"},
	}
	values := models.FormValues{
		"practiceSize":       {"100", "250"},
		"deliveryDate-day":   {"9", "10"},
		"deliveryDate-month": {"2", "3"},
		"deliveryDate-year":  {"2020", "2020"},
	}

	out := GenerateSolutionTable(solutionTable(), recipients, flatPrice(), values, validation.ErrorMap{})

	require.NotNil(t, out)
	require.Len(t, out.Items, 2)

	assert.Equal(t, "Blue Mountain Medical Practice (A10001)", out.Items[0][0].Data)
	assert.Equal(t, "100", out.Items[0][1].Question.Data)
	assert.Equal(t, DateData{Day: "9", Month: "2", Year: "2020"}, out.Items[0][2].Question.Data)

	assert.Equal(t, "Green Valley Surgery (A10002)", out.Items[1][0].Data)
	assert.Equal(t, "250", out.Items[1][1].Question.Data)
	assert.Equal(t, DateData{Day: "10", Month: "3", Year: "2020"}, out.Items[1][2].Question.Data)
}

func TestGenerateSolutionTableSharedDate(t *testing.T) {
	recipients := []models.ServiceRecipient{
		{Name: "Blue Mountain Medical Practice", OdsCode: "A10001"},
		{Name: "Green Valley Surgery", OdsCode: "A10002"},
	}
	values := models.FormValues{
		"practiceSize":       {"100", "250"},
		"deliveryDate-day":   {"9"},
		"deliveryDate-month": {"2"},
		"deliveryDate-year":  {"2020"},
	}

	out := GenerateSolutionTable(solutionTable(), recipients, flatPrice(), values, validation.ErrorMap{})

	shared := DateData{Day: "9", Month: "2", Year: "2020"}
	assert.Equal(t, shared, out.Items[0][2].Question.Data)
	assert.Equal(t, shared, out.Items[1][2].Question.Data)

	// Non-date questions still read their own row.
	assert.Equal(t, "100", out.Items[0][1].Question.Data)
	assert.Equal(t, "250", out.Items[1][1].Question.Data)
}

func TestGenerateSolutionTableUnitCell(t *testing.T) {
	table := solutionTable()
	table.ColumnInfo = append(table.ColumnInfo, manifest.Column{Data: "Unit"})
	table.CellInfo = append(table.CellInfo, manifest.Cell{Kind: manifest.CellUnit})

	recipients := []models.ServiceRecipient{
		{Name: "Blue Mountain Medical Practice", OdsCode: "A10001"},
	}

	out := GenerateSolutionTable(table, recipients, flatPrice(), models.FormValues{}, validation.ErrorMap{})

	require.Len(t, out.Items[0], 4)
	assert.Equal(t, "per patient per year", out.Items[0][3].Data)
}

func TestGenerateSolutionTableNil(t *testing.T) {
	assert.Nil(t, GenerateSolutionTable(nil, nil, flatPrice(), models.FormValues{}, validation.ErrorMap{}))
}

func TestGenerateSolutionTableNoRecipients(t *testing.T) {
	out := GenerateSolutionTable(solutionTable(), nil, flatPrice(), models.FormValues{}, validation.ErrorMap{})

	require.NotNil(t, out)
	assert.Empty(t, out.Items)
}

package render

import (
	"fmt"
	"strings"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/manifest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/validation"
)

// CellContext is one rendered table cell: static data or an input question.
type CellContext struct {
	Data     string           `json:"data,omitempty"`
	Question *QuestionContext `json:"question,omitempty"`
}

// TableContext is a rendered table: headings plus one cell row per item.
type TableContext struct {
	ColumnInfo []manifest.Column `json:"columnInfo"`
	Items      [][]CellContext   `json:"items"`
}

// GenerateAddPriceTable renders the single-row price table: the price input
// plus the selected price's unit description.
func GenerateAddPriceTable(t *manifest.Table, price models.Price, values models.FormValues, errMap validation.ErrorMap) *TableContext {
	if t == nil {
		return nil
	}

	row := make([]CellContext, 0, len(t.CellInfo))
	for i := range t.CellInfo {
		cell := &t.CellInfo[i]
		switch cell.Kind {
		case manifest.CellQuestion:
			q := generateQuestion(cell.Question, values, errMap, singleValue)
			row = append(row, CellContext{Question: &q})
		case manifest.CellUnit:
			row = append(row, CellContext{Data: unitDescription(price)})
		default:
			row = append(row, CellContext{})
		}
	}

	return &TableContext{
		ColumnInfo: t.ColumnInfo,
		Items:      [][]CellContext{row},
	}
}

// GenerateSolutionTable renders the multi-recipient table: one row per
// selected service recipient. When a single delivery date was submitted it
// is shared, and every row reads index 0.
func GenerateSolutionTable(t *manifest.Table, recipients []models.ServiceRecipient, price models.Price, values models.FormValues, errMap validation.ErrorMap) *TableContext {
	if t == nil {
		return nil
	}

	sharedDate := values.Len("deliveryDate-day") == 1

	items := make([][]CellContext, 0, len(recipients))
	for i, recipient := range recipients {
		row := make([]CellContext, 0, len(t.CellInfo))
		for j := range t.CellInfo {
			cell := &t.CellInfo[j]
			switch cell.Kind {
			case manifest.CellRecipient:
				row = append(row, CellContext{Data: fmt.Sprintf("%s (%s)", recipient.Name, recipient.OdsCode)})
			case manifest.CellQuestion:
				idx := i
				if sharedDate && cell.Question.Type == manifest.QuestionDate {
					idx = 0
				}
				q := generateQuestion(cell.Question, values, errMap, indexedValue(idx))
				row = append(row, CellContext{Question: &q})
			case manifest.CellUnit:
				row = append(row, CellContext{Data: unitDescription(price)})
			}
		}
		items = append(items, row)
	}

	return &TableContext{
		ColumnInfo: t.ColumnInfo,
		Items:      items,
	}
}

func unitDescription(price models.Price) string {
	parts := []string{price.ItemUnit.Description}
	if price.TimeUnit != nil {
		parts = append(parts, price.TimeUnit.Description)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

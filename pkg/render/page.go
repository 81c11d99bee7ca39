package render

import (
	"github.com/Gobusters/ectolinq"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/manifest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/validation"
)

// ErrorSummaryItem is one line of the error summary box at the top of the
// page, linking to the offending question.
type ErrorSummaryItem struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// PageContext is the full render-ready view model for an order item page.
// It is constructed fresh per request and never persisted.
type PageContext struct {
	Title            string             `json:"title"`
	Description      string             `json:"description,omitempty"`
	InsetAdvice      string             `json:"insetAdvice,omitempty"`
	OrderDescription string             `json:"orderDescription,omitempty"`
	ItemName         string             `json:"itemName,omitempty"`
	Questions        []QuestionContext  `json:"questions,omitempty"`
	AddPriceTable    *TableContext      `json:"addPriceTable,omitempty"`
	SolutionTable    *TableContext      `json:"solutionTable,omitempty"`
	SaveButtonText   string             `json:"saveButtonText,omitempty"`
	DeleteButtonText string             `json:"deleteButtonText,omitempty"`
	Errors           []ErrorSummaryItem `json:"errors,omitempty"`
}

// PageParams carries everything the page context is generated from.
type PageParams struct {
	Manifest   *manifest.Manifest
	ItemName   string
	Values     models.FormValues
	Errors     []validation.Error
	Price      models.Price
	Recipients []models.ServiceRecipient
}

// NewPageContext assembles the view model: questions, tables and the error
// summary, all derived from the manifest, the submitted (or default) values
// and the validation error list.
func NewPageContext(p PageParams) *PageContext {
	errMap := validation.GenerateErrorMap(p.Errors, p.Manifest)

	return &PageContext{
		Title:            p.Manifest.Title,
		Description:      p.Manifest.Description,
		InsetAdvice:      p.Manifest.InsetAdvice,
		OrderDescription: p.Manifest.OrderDescription,
		ItemName:         p.ItemName,
		Questions:        GenerateQuestions(p.Manifest, p.Values, errMap),
		AddPriceTable:    GenerateAddPriceTable(p.Manifest.AddPriceTable, p.Price, p.Values, errMap),
		SolutionTable:    GenerateSolutionTable(p.Manifest.SolutionTable, p.Recipients, p.Price, p.Values, errMap),
		SaveButtonText:   p.Manifest.SaveButtonText,
		DeleteButtonText: p.Manifest.DeleteButtonText,
		Errors:           GenerateErrorSummary(p.Errors, p.Manifest),
	}
}

// GenerateErrorSummary maps the flat error list to summary links in list
// order, one item per error.
func GenerateErrorSummary(errs []validation.Error, m *manifest.Manifest) []ErrorSummaryItem {
	if len(errs) == 0 {
		return nil
	}

	return ectolinq.Map(errs, func(e validation.Error) ErrorSummaryItem {
		return ErrorSummaryItem{
			Href: "#" + validation.LowerFirst(e.Field),
			Text: m.Message(e.ID),
		}
	})
}

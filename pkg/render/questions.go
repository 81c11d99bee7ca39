// Package render builds the render-ready view model for an order item page:
// the page manifest merged with submitted form data and validation errors.
// Generators are pure functions and never mutate the shared manifest.
package render

import (
	"strings"

	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/manifest"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/models"
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/validation"
)

// DateData is a date question's value split for the three-input control.
type DateData struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// QuestionError is the inline error shown under a question. Fields names
// which date inputs are highlighted.
type QuestionError struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// OptionContext is a radio option with its checked state resolved.
type OptionContext struct {
	Value   string `json:"value"`
	Text    string `json:"text"`
	Checked bool   `json:"checked,omitempty"`
}

// QuestionContext is one question of the view model: the manifest question
// plus submitted data and any error.
type QuestionContext struct {
	ID                string                      `json:"id"`
	Type              manifest.QuestionType       `json:"type"`
	MainAdvice        string                      `json:"mainAdvice,omitempty"`
	AdditionalAdvice  string                      `json:"additionalAdvice,omitempty"`
	Rows              int                         `json:"rows,omitempty"`
	Unit              string                      `json:"unit,omitempty"`
	Options           []OptionContext             `json:"options,omitempty"`
	ExpandableSection *manifest.ExpandableSection `json:"expandableSection,omitempty"`
	Data              any                         `json:"data,omitempty"`
	Error             *QuestionError              `json:"error,omitempty"`
}

var dateParts = []string{"day", "month", "year"}

// GenerateQuestions merges every manifest question with the submitted values
// and the error map. A field absent from the values yields the manifest
// question unchanged, with no data set.
func GenerateQuestions(m *manifest.Manifest, values models.FormValues, errMap validation.ErrorMap) []QuestionContext {
	out := make([]QuestionContext, 0, len(m.Questions))
	for i := range m.Questions {
		out = append(out, generateQuestion(&m.Questions[i], values, errMap, singleValue))
	}
	return out
}

// rowValue reads a question's submitted value; the bulk table generators
// swap in an index-aware reader.
type rowValue func(values models.FormValues, key string) string

func singleValue(values models.FormValues, key string) string {
	return values.Get(key)
}

func indexedValue(index int) rowValue {
	return func(values models.FormValues, key string) string {
		return values.At(key, index)
	}
}

func generateQuestion(q *manifest.Question, values models.FormValues, errMap validation.ErrorMap, read rowValue) QuestionContext {
	ctx := QuestionContext{
		ID:                q.ID,
		Type:              q.Type,
		MainAdvice:        q.MainAdvice,
		AdditionalAdvice:  q.AdditionalAdvice,
		Rows:              q.Rows,
		Unit:              q.Unit,
		ExpandableSection: q.ExpandableSection,
	}

	switch q.Type {
	case manifest.QuestionDate:
		day := read(values, q.ID+"-day")
		month := read(values, q.ID+"-month")
		year := read(values, q.ID+"-year")
		if day != "" || month != "" || year != "" {
			ctx.Data = DateData{Day: day, Month: month, Year: year}
		}
	case manifest.QuestionRadio:
		submitted := read(values, q.ID)
		ctx.Options = make([]OptionContext, 0, len(q.Options))
		for _, opt := range q.Options {
			ctx.Options = append(ctx.Options, OptionContext{
				Value:   opt.Value,
				Text:    opt.Text,
				Checked: submitted != "" && strings.EqualFold(opt.Value, submitted),
			})
		}
	default:
		if values.Has(q.ID) {
			data := read(values, q.ID)
			if q.ID == "price" {
				data = FormatPrice(data)
			}
			ctx.Data = data
		}
	}

	if entry, ok := errMap[q.ID]; ok {
		qerr := &QuestionError{
			Message: strings.Join(entry.ErrorMessages, ", "),
			Fields:  entry.Fields,
		}
		// A date error without explicit parts highlights all three inputs.
		if q.Type == manifest.QuestionDate && qerr.Fields == nil {
			qerr.Fields = dateParts
		}
		ctx.Error = qerr
	}

	return ctx
}

// Package manifest holds the typed page schema for one order item page
// variant. A manifest declares which questions the page asks, how its table
// (if any) is laid out, and the human readable text for every validation
// rule that can fire on the page.
package manifest

// QuestionType is the input control a question renders as.
type QuestionType string

const (
	QuestionText  QuestionType = "text"
	QuestionRadio QuestionType = "radio"
	QuestionDate  QuestionType = "date"
)

// Option is one selectable value of a radio question.
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// ExpandableSection is the collapsible help block under a question.
type ExpandableSection struct {
	Title          string `json:"title"`
	InnerComponent string `json:"innerComponent"`
}

// Question declares one form question.
type Question struct {
	ID                string             `json:"id"`
	Type              QuestionType       `json:"type"`
	MainAdvice        string             `json:"mainAdvice,omitempty"`
	AdditionalAdvice  string             `json:"additionalAdvice,omitempty"`
	Rows              int                `json:"rows,omitempty"`
	Unit              string             `json:"unit,omitempty"`
	Options           []Option           `json:"options,omitempty"`
	ExpandableSection *ExpandableSection `json:"expandableSection,omitempty"`
}

// CellKind says where a table cell's content comes from.
type CellKind string

const (
	// CellQuestion renders an input question in every row.
	CellQuestion CellKind = "question"
	// CellRecipient renders the row's service recipient name and ODS code.
	CellRecipient CellKind = "recipient"
	// CellUnit renders the selected price's unit description.
	CellUnit CellKind = "unit"
)

// Column is a table column heading.
type Column struct {
	Data string `json:"data"`
}

// Cell declares the content of one table column's cells.
type Cell struct {
	Kind     CellKind  `json:"kind"`
	Question *Question `json:"question,omitempty"`
}

// Table declares a price or solution table: column headings plus one cell
// declaration per column, in column order.
type Table struct {
	ColumnInfo []Column `json:"columnInfo"`
	CellInfo   []Cell   `json:"cellInfo"`
}

// Cell returns the question cell declared for the given question id, or nil
// when the table does not carry it.
func (t *Table) Cell(questionID string) *Cell {
	if t == nil {
		return nil
	}
	for i := range t.CellInfo {
		cell := &t.CellInfo[i]
		if cell.Kind == CellQuestion && cell.Question != nil && cell.Question.ID == questionID {
			return cell
		}
	}
	return nil
}

// Manifest is the full page schema for one order item page variant. It is
// loaded once, cached, and shared across requests; nothing may mutate it.
type Manifest struct {
	Title            string            `json:"title"`
	Description      string            `json:"description,omitempty"`
	InsetAdvice      string            `json:"insetAdvice,omitempty"`
	OrderDescription string            `json:"orderDescription,omitempty"`
	Questions        []Question        `json:"questions,omitempty"`
	AddPriceTable    *Table            `json:"addPriceTable,omitempty"`
	SolutionTable    *Table            `json:"solutionTable,omitempty"`
	SaveButtonText   string            `json:"saveButtonText,omitempty"`
	DeleteButtonText string            `json:"deleteButtonText,omitempty"`
	ErrorMessages    map[string]string `json:"errorMessages"`
}

// Question returns the declared question with the given id, or nil.
func (m *Manifest) Question(id string) *Question {
	for i := range m.Questions {
		if m.Questions[i].ID == id {
			return &m.Questions[i]
		}
	}
	return nil
}

// HasQuestion reports whether the page declares the question. A field that
// is not declared is not on the page and its validators do not apply.
func (m *Manifest) HasQuestion(id string) bool {
	return m.Question(id) != nil
}

// PriceCell returns the price question wherever the page declares it: as a
// plain question or inside the add-price table.
func (m *Manifest) PriceCell() *Question {
	if q := m.Question("price"); q != nil {
		return q
	}
	if cell := m.AddPriceTable.Cell("price"); cell != nil {
		return cell.Question
	}
	return nil
}

// SolutionCell returns the solution table's question with the given id, or
// nil when the page has no solution table or the table does not ask it.
func (m *Manifest) SolutionCell(id string) *Question {
	if cell := m.SolutionTable.Cell(id); cell != nil {
		return cell.Question
	}
	return nil
}

// Message resolves a validation rule id to its page text. Unresolved ids are
// a caller bug; the raw id is returned so the gap is visible.
func (m *Manifest) Message(errorID string) string {
	if msg, ok := m.ErrorMessages[errorID]; ok {
		return msg
	}
	return errorID
}

package validation

import (
	"github.com/nhs-digital-gp-it-futures/order-form-sub001/pkg/manifest"
)

// ErrorMapEntry collects the resolved messages for one question, plus the
// date parts implicated when the question is a date composite.
type ErrorMapEntry struct {
	ErrorMessages []string `json:"errorMessages"`
	Fields        []string `json:"fields,omitempty"`
}

// ErrorMap maps a lowerCamelCase question id to its resolved errors, ready
// for the page context generators.
type ErrorMap map[string]ErrorMapEntry

// GenerateErrorMap joins a flat error list with the manifest's error message
// catalogue, grouping by question id. Messages keep list order and are not
// deduplicated here. It is a pure fold: every call starts from an empty map.
func GenerateErrorMap(errs []Error, m *manifest.Manifest) ErrorMap {
	out := ErrorMap{}

	for _, e := range errs {
		key := LowerFirst(e.Field)
		entry := out[key]
		entry.ErrorMessages = append(entry.ErrorMessages, m.Message(e.ID))
		// The first error carrying part information wins.
		if entry.Fields == nil && len(e.Part) > 0 {
			entry.Fields = e.Part
		}
		out[key] = entry
	}

	return out
}

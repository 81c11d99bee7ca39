package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
)

// APIFieldErrors is one field path from a server validation response with
// the rule ids that fired against it.
type APIFieldErrors struct {
	Field string
	IDs   []string
}

// APIValidationResponse is the structured body of an ORDAPI 400: a mapping
// from (possibly bulk-indexed) field path to rule ids. Field order is part
// of the contract, so it unmarshals through the token stream rather than a
// Go map.
type APIValidationResponse struct {
	Fields []APIFieldErrors
}

func (r *APIValidationResponse) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("validation response is not a JSON object")
	}

	r.Fields = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("validation response has a non-string key")
		}

		var ids []string
		if err := dec.Decode(&ids); err != nil {
			return fmt.Errorf("validation response field %q is malformed: %w", key, err)
		}

		r.Fields = append(r.Fields, APIFieldErrors{Field: key, IDs: ids})
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// rowIndexPrefix matches the "[n]." prefix bulk responses carry on each
// field path.
var rowIndexPrefix = regexp.MustCompile(`^\[\d+\]\.`)

// TransformAPIValidationResponse normalises a server validation response
// into a flat error list: row index prefixes are stripped, and rule ids are
// unioned per canonical field in order of first appearance.
func TransformAPIValidationResponse(resp APIValidationResponse) []Error {
	fieldOrder := []string{}
	idsByField := map[string][]string{}
	seen := map[string]map[string]bool{}

	for _, f := range resp.Fields {
		field := rowIndexPrefix.ReplaceAllString(f.Field, "")
		if _, ok := idsByField[field]; !ok {
			fieldOrder = append(fieldOrder, field)
			idsByField[field] = nil
			seen[field] = map[string]bool{}
		}
		for _, id := range f.IDs {
			if seen[field][id] {
				continue
			}
			seen[field][id] = true
			idsByField[field] = append(idsByField[field], id)
		}
	}

	errs := []Error{}
	for _, field := range fieldOrder {
		for _, id := range idsByField[field] {
			errs = append(errs, Error{Field: field, ID: id})
		}
	}
	return errs
}

// Package doctype holds the static definition table for supported document
// types: field specs, extraction instructions, and response schemas. Adding a
// document type means adding a definition here; comparison logic is untouched.
package doctype

import (
	"encoding/json"
	"fmt"

	"docverify/internal/domain"
)

// Reserved schema keys appended to every definition's response schema.
const (
	PageSummariesKey     = "pageSummaries"
	AddressComponentsKey = "addressComponents"
)

// FieldKind describes how a schema entry is typed in the model's response.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindAddress FieldKind = "address"
)

// FieldSpec describes a single comparable field of a document type.
type FieldSpec struct {
	Key       string
	Label     string
	NameMatch bool // person-name fields compared with the word-subset rule
}

// Definition is the immutable per-type configuration: ordered comparable
// fields, the extraction instruction sent to the model, the response schema,
// and the required-field set.
type Definition struct {
	Type        domain.DocumentType
	Fields      []FieldSpec
	Instruction string
	Schema      map[string]FieldKind
	Required    []string
}

// ResponseSchema returns the JSON schema the model must conform to: the
// definition's schema plus a required pageSummaries string array.
func (d *Definition) ResponseSchema() json.RawMessage {
	props := map[string]interface{}{
		PageSummariesKey: map[string]interface{}{
			"type":  "ARRAY",
			"items": map[string]interface{}{"type": "STRING"},
		},
	}
	for key, kind := range d.Schema {
		switch kind {
		case KindAddress:
			props[key] = map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"street":   map[string]interface{}{"type": "STRING"},
					"locality": map[string]interface{}{"type": "STRING"},
					"city":     map[string]interface{}{"type": "STRING"},
					"state":    map[string]interface{}{"type": "STRING"},
					"pinCode":  map[string]interface{}{"type": "STRING"},
				},
			}
		default:
			props[key] = map[string]interface{}{"type": "STRING"}
		}
	}

	required := append([]string{}, d.Required...)
	required = append(required, PageSummariesKey)

	return mustJSON(map[string]interface{}{
		"type":       "OBJECT",
		"properties": props,
		"required":   required,
	})
}

// Resolve returns the definition for a document-type identifier. Unknown
// identifiers fail with domain.ErrUnsupportedDocumentType before any model
// call is attempted.
func Resolve(docType string) (*Definition, error) {
	def, ok := definitions[domain.DocumentType(docType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDocumentType, docType)
	}
	return def, nil
}

// All returns the definitions in a stable order (for listing endpoints).
func All() []*Definition {
	out := make([]*Definition, 0, len(definitionOrder))
	for _, t := range definitionOrder {
		out = append(out, definitions[t])
	}
	return out
}

// mustJSON marshals static schema tables; inputs are hand-authored constants.
func mustJSON(v interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

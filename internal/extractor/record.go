package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"docverify/internal/doctype"
	"docverify/internal/domain"
)

// ParseRecord converts a model's raw JSON text into an ExtractedRecord for
// the given definition. The model's output is untrusted: every schema key is
// defaulted to the "Not Found" sentinel when missing or blank, so the
// comparison engine never sees an absent field.
func ParseRecord(rawText string, def *doctype.Definition) (*domain.ExtractedRecord, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return nil, fmt.Errorf("%w", domain.ErrExtractionEmptyResponse)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	dec.UseNumber()
	var payload map[string]interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v (raw: %s)", domain.ErrExtractionParse, err, truncate(trimmed, 500))
	}

	rec := &domain.ExtractedRecord{Fields: make(map[string]string, len(def.Schema))}

	for key, kind := range def.Schema {
		switch kind {
		case doctype.KindAddress:
			rec.Address = parseAddress(payload[key])
		default:
			rec.Fields[key] = stringOrNotFound(payload[key])
		}
	}

	if raw, ok := payload[doctype.PageSummariesKey].([]interface{}); ok {
		for _, item := range raw {
			if s, ok := item.(string); ok {
				rec.PageSummaries = append(rec.PageSummaries, s)
			}
		}
	}
	if rec.PageSummaries == nil {
		rec.PageSummaries = []string{}
	}

	return rec, nil
}

func stringOrNotFound(v interface{}) string {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return domain.NotFoundValue
		}
		return t
	case json.Number:
		return t.String()
	default:
		return domain.NotFoundValue
	}
}

func parseAddress(v interface{}) *domain.AddressComponents {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	str := func(key string) string {
		if s, ok := obj[key].(string); ok {
			return s
		}
		return ""
	}
	return &domain.AddressComponents{
		Street:   str("street"),
		Locality: str("locality"),
		City:     str("city"),
		State:    str("state"),
		PinCode:  str("pinCode"),
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

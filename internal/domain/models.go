package domain

import "github.com/google/uuid"

// Claim is the user-asserted field values to check against the document.
// It may be sparse; missing keys are treated as empty strings.
type Claim map[string]string

// Get returns the claimed value for a field key, or "" when absent.
func (c Claim) Get(key string) string {
	if c == nil {
		return ""
	}
	return c[key]
}

// AddressComponents is the structured location extracted for gift deeds.
type AddressComponents struct {
	Street   string `json:"street"`
	Locality string `json:"locality"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pinCode"`
}

// ExtractedRecord holds the model's structured output after defensive
// defaulting: every schema field key is present, with NotFoundValue standing
// in for anything the model omitted or left blank. Immutable after creation.
type ExtractedRecord struct {
	Fields        map[string]string
	PageSummaries []string
	Address       *AddressComponents
}

// Value returns the extracted value for a field key, or NotFoundValue.
func (r *ExtractedRecord) Value(key string) string {
	if r == nil || r.Fields == nil {
		return NotFoundValue
	}
	if v, ok := r.Fields[key]; ok {
		return v
	}
	return NotFoundValue
}

// FieldComparison is the reconciliation outcome for a single field.
type FieldComparison struct {
	Field            string      `json:"field"`
	UserData         string      `json:"userData"`
	DataFromDocument string      `json:"dataFromDocument"`
	Status           MatchStatus `json:"status"`
}

// VerificationResult is the terminal output of one verification request.
// It is returned to the caller and never retained.
type VerificationResult struct {
	VerificationID    uuid.UUID          `json:"verificationId"`
	DocumentType      DocumentType       `json:"documentType"`
	Status            Verdict            `json:"status"`
	Details           []FieldComparison  `json:"details"`
	PageSummaries     []string           `json:"pageSummaries"`
	AddressComponents *AddressComponents `json:"addressComponents,omitempty"`
	Analysis          string             `json:"analysis"`
}

package port

import (
	"context"
	"encoding/json"
)

// ExtractInput carries the data needed for one extraction round trip.
type ExtractInput struct {
	FileBytes      []byte
	ContentType    string
	Instruction    string
	ResponseSchema json.RawMessage
}

// ExtractOutput contains the model's raw structured reply.
type ExtractOutput struct {
	// RawText is the model's textual response, expected to be JSON
	// conforming to the response schema. Parsing and defaulting happen
	// downstream; providers return the text as-is.
	RawText   string
	ModelUsed string
}

// DocumentExtractor abstracts the external structured-extraction model.
type DocumentExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*ExtractOutput, error)
}

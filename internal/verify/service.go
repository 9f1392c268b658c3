package verify

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"docverify/internal/doctype"
	"docverify/internal/domain"
	"docverify/internal/extractor"
	"docverify/internal/port"
)

// VerifyInput is the DTO for one verification request.
type VerifyInput struct {
	FileBytes    []byte
	ContentType  string
	DocumentType string
	Claim        domain.Claim
}

// Service defines the verification contract.
type Service interface {
	Verify(ctx context.Context, input VerifyInput) (*domain.VerificationResult, error)
}

type service struct {
	extractor port.DocumentExtractor
}

// NewService creates a Service backed by the given extraction model client.
func NewService(ex port.DocumentExtractor) Service {
	return &service{extractor: ex}
}

// Verify runs one request end to end: resolve the definition, extract
// structured data from the document, reconcile it against the claim, and
// narrate the outcome. All request data is request-scoped; nothing is
// retained.
func (s *service) Verify(ctx context.Context, input VerifyInput) (*domain.VerificationResult, error) {
	def, err := doctype.Resolve(input.DocumentType)
	if err != nil {
		return nil, err
	}

	out, err := s.extractor.Extract(ctx, port.ExtractInput{
		FileBytes:      input.FileBytes,
		ContentType:    input.ContentType,
		Instruction:    def.Instruction,
		ResponseSchema: def.ResponseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify document: %w", err)
	}

	rec, err := extractor.ParseRecord(out.RawText, def)
	if err != nil {
		return nil, fmt.Errorf("failed to verify document: %w", err)
	}

	verdict, details := Compare(def, input.Claim, rec)

	result := &domain.VerificationResult{
		VerificationID: uuid.New(),
		DocumentType:   def.Type,
		Status:         verdict,
		Details:        details,
		PageSummaries:  rec.PageSummaries,
		Analysis:       Narrate(def.Type, details),
	}
	if def.Type == domain.DocumentTypeGift {
		result.AddressComponents = rec.Address
	}

	log.Printf("verify.Service: verification %s: type=%s, model=%s, status=%s, fields=%d",
		result.VerificationID, def.Type, out.ModelUsed, verdict, len(details))

	return result, nil
}

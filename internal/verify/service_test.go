package verify_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docverify/internal/domain"
	"docverify/internal/port"
	"docverify/internal/verify"
	"docverify/mocks"
)

func TestService_Verify_RentalEndToEnd(t *testing.T) {
	ex := new(mocks.MockDocumentExtractor)
	ex.On("Extract", mock.Anything, mock.MatchedBy(func(in port.ExtractInput) bool {
		return in.ContentType == "application/pdf" && in.Instruction != "" && len(in.ResponseSchema) > 0
	})).Return(&port.ExtractOutput{
		RawText: `{
			"rentAmount": "10000",
			"startDate": "2024-01-01",
			"endDate": "2024-12-31",
			"tenantName": "Asha Rao",
			"landlordName": "Vikram Singh",
			"pageSummaries": ["Page one sets out the parties and the rent.", "Page two carries the signatures."]
		}`,
		ModelUsed: "gemini-2.0-flash",
	}, nil)

	svc := verify.NewService(ex)
	result, err := svc.Verify(context.Background(), verify.VerifyInput{
		FileBytes:    []byte("%PDF-1.4 test content"),
		ContentType:  "application/pdf",
		DocumentType: "rental",
		Claim: domain.Claim{
			"rentAmount":       "10000",
			"startDate":        "2024-01-01",
			"endDate":          "2024-12-31",
			"tenantName":       "Asha Rao",
			"landlordName":     "Vikram Singh",
			"propertyLocation": "12 MG Road",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.VerdictOriginal, result.Status)
	assert.Equal(t, domain.DocumentTypeRental, result.DocumentType)
	assert.NotEqual(t, "", result.VerificationID.String())

	// Exactly one comparison per definition field; the extra claim key is ignored.
	require.Len(t, result.Details, 5)
	for _, d := range result.Details {
		assert.Equal(t, domain.MatchStatusMatch, d.Status)
	}

	assert.Len(t, result.PageSummaries, 2)
	assert.Contains(t, result.Analysis, "landlord, Vikram Singh")
	assert.Nil(t, result.AddressComponents)

	ex.AssertExpectations(t)
}

func TestService_Verify_UnsupportedTypeSkipsExtraction(t *testing.T) {
	ex := new(mocks.MockDocumentExtractor)

	svc := verify.NewService(ex)
	result, err := svc.Verify(context.Background(), verify.VerifyInput{
		FileBytes:    []byte("%PDF-1.4"),
		ContentType:  "application/pdf",
		DocumentType: "visa",
		Claim:        domain.Claim{},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedDocumentType)
	ex.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestService_Verify_ExtractionFailureIsWrapped(t *testing.T) {
	ex := new(mocks.MockDocumentExtractor)
	ex.On("Extract", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: upstream boom", domain.ErrExtractionService))

	svc := verify.NewService(ex)
	result, err := svc.Verify(context.Background(), verify.VerifyInput{
		FileBytes:    []byte("%PDF-1.4"),
		ContentType:  "application/pdf",
		DocumentType: "rental",
		Claim:        domain.Claim{},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractionService)
	assert.Contains(t, err.Error(), "failed to verify document")
}

func TestService_Verify_GarbageExtractionOutput(t *testing.T) {
	ex := new(mocks.MockDocumentExtractor)
	ex.On("Extract", mock.Anything, mock.Anything).
		Return(&port.ExtractOutput{RawText: "the model said something that is not JSON", ModelUsed: "gemini-2.0-flash"}, nil)

	svc := verify.NewService(ex)
	result, err := svc.Verify(context.Background(), verify.VerifyInput{
		FileBytes:    []byte("%PDF-1.4"),
		ContentType:  "application/pdf",
		DocumentType: "rental",
		Claim:        domain.Claim{},
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtractionParse))
}

func TestService_Verify_GiftCarriesAddressComponents(t *testing.T) {
	ex := new(mocks.MockDocumentExtractor)
	ex.On("Extract", mock.Anything, mock.Anything).Return(&port.ExtractOutput{
		RawText: `{
			"giverName": "Ramesh Kumar",
			"receiverName": "Suresh Patel",
			"giftType": "Immovable property",
			"giftLocation": "12 MG Road, Shanthala Nagar, Bengaluru, Karnataka, 560001",
			"giftDate": "2023-06-10",
			"addressComponents": {
				"street": "12 MG Road",
				"locality": "Shanthala Nagar",
				"city": "Bengaluru",
				"state": "Karnataka",
				"pinCode": "560001"
			},
			"pageSummaries": ["The deed records the gift."]
		}`,
		ModelUsed: "gemini-2.0-flash",
	}, nil)

	svc := verify.NewService(ex)
	result, err := svc.Verify(context.Background(), verify.VerifyInput{
		FileBytes:    []byte("%PDF-1.4"),
		ContentType:  "application/pdf",
		DocumentType: "gift",
		Claim: domain.Claim{
			"giverName":    "Ramesh Kumar",
			"receiverName": "Suresh Patel",
			"giftType":     "Immovable property",
			"giftLocation": "12 MG Road, Shanthala Nagar, Bengaluru, Karnataka, 560001",
			"giftDate":     "2023-06-10",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result.AddressComponents)
	assert.Equal(t, "Bengaluru", result.AddressComponents.City)
	assert.Equal(t, "560001", result.AddressComponents.PinCode)
	assert.Equal(t, domain.VerdictOriginal, result.Status)
}

package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docverify/internal/doctype"
	"docverify/internal/domain"
	"docverify/internal/verify"
)

func rentalDef(t *testing.T) *doctype.Definition {
	t.Helper()
	def, err := doctype.Resolve("rental")
	require.NoError(t, err)
	return def
}

func TestCompare_AllMatch(t *testing.T) {
	def := rentalDef(t)
	claim := domain.Claim{
		"rentAmount":   "10000",
		"startDate":    "2024-01-01",
		"endDate":      "2024-12-31",
		"tenantName":   "Asha Rao",
		"landlordName": "Vikram Singh",
	}
	rec := &domain.ExtractedRecord{Fields: map[string]string{
		"rentAmount":   "10,000",
		"startDate":    "2024-01-01",
		"endDate":      "2024-12-31",
		"tenantName":   "Asha Rao",
		"landlordName": "Vikram Singh",
	}}

	verdict, details := verify.Compare(def, claim, rec)

	assert.Equal(t, domain.VerdictOriginal, verdict)
	require.Len(t, details, len(def.Fields))
	for _, d := range details {
		assert.Equal(t, domain.MatchStatusMatch, d.Status)
	}
}

func TestCompare_DetailOrderFollowsDefinition(t *testing.T) {
	def := rentalDef(t)
	_, details := verify.Compare(def, domain.Claim{}, &domain.ExtractedRecord{})

	require.Len(t, details, len(def.Fields))
	for i, f := range def.Fields {
		assert.Equal(t, f.Label, details[i].Field)
	}
}

func TestCompare_SingleMismatchFailsDocument(t *testing.T) {
	def := rentalDef(t)
	claim := domain.Claim{
		"rentAmount":   "10000",
		"startDate":    "2024-01-01",
		"endDate":      "2024-12-31",
		"tenantName":   "Asha Rao",
		"landlordName": "Vikram Singh",
	}
	rec := &domain.ExtractedRecord{Fields: map[string]string{
		"rentAmount":   "10000",
		"startDate":    "2024-01-01",
		"endDate":      "2024-12-31",
		"tenantName":   "Asha Rao",
		"landlordName": "Someone Else",
	}}

	verdict, details := verify.Compare(def, claim, rec)

	assert.Equal(t, domain.VerdictFake, verdict)
	mismatches := 0
	for _, d := range details {
		if d.Status == domain.MatchStatusMismatch {
			mismatches++
			assert.Equal(t, "Landlord Name", d.Field)
		}
	}
	assert.Equal(t, 1, mismatches)
}

func TestCompare_GiftNamesUseWordSubsetRule(t *testing.T) {
	def, err := doctype.Resolve("gift")
	require.NoError(t, err)

	claim := domain.Claim{
		"giverName":    "Ramesh Kumar",
		"receiverName": "Mr. Suresh Patel",
		"giftType":     "Immovable property",
		"giftLocation": "12 MG Road, Bengaluru",
		"giftDate":     "2023-06-10",
	}
	rec := &domain.ExtractedRecord{Fields: map[string]string{
		// Reordered and with an extra middle name; normalized equality would
		// reject both, the name rule accepts them.
		"giverName":    "Kumar Ramesh Extra",
		"receiverName": "Suresh Bhai Patel",
		"giftType":     "Immovable property",
		"giftLocation": "12 MG Road Bengaluru",
		"giftDate":     "2023-06-10",
	}}

	verdict, details := verify.Compare(def, claim, rec)

	assert.Equal(t, domain.VerdictOriginal, verdict)
	for _, d := range details {
		assert.Equal(t, domain.MatchStatusMatch, d.Status, "field %s", d.Field)
	}
}

func TestCompare_EmptyClaimVsNotFoundIsMismatch(t *testing.T) {
	def := rentalDef(t)
	// Nothing asserted against nothing extracted: every field is "Not Found"
	// on the document side and blank on the user side.
	claim := domain.Claim{}
	rec := &domain.ExtractedRecord{}

	verdict, details := verify.Compare(def, claim, rec)

	assert.Equal(t, domain.VerdictFake, verdict)
	for _, d := range details {
		assert.Equal(t, "", d.UserData)
		assert.Equal(t, domain.NotFoundValue, d.DataFromDocument)
		assert.Equal(t, domain.MatchStatusMismatch, d.Status)
	}
}

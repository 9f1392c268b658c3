package verify

import (
	"docverify/internal/doctype"
	"docverify/internal/domain"
)

// Compare reconciles the user's claim against the extracted record, field by
// field in definition order. Every FieldSpec yields exactly one
// FieldComparison; the verdict is Original iff every field matched. A single
// mismatch anywhere fails the whole document.
func Compare(def *doctype.Definition, claim domain.Claim, rec *domain.ExtractedRecord) (domain.Verdict, []domain.FieldComparison) {
	details := make([]domain.FieldComparison, 0, len(def.Fields))
	verdict := domain.VerdictOriginal

	for _, f := range def.Fields {
		userValue := claim.Get(f.Key)
		docValue := rec.Value(f.Key)

		status := domain.MatchStatusMismatch
		if f.NameMatch {
			if NameMatch(userValue, docValue) {
				status = domain.MatchStatusMatch
			}
		} else if NormalizeGeneric(userValue) == NormalizeGeneric(docValue) {
			status = domain.MatchStatusMatch
		}
		if status == domain.MatchStatusMismatch {
			verdict = domain.VerdictFake
		}

		details = append(details, domain.FieldComparison{
			Field:            f.Label,
			UserData:         userValue,
			DataFromDocument: docValue,
			Status:           status,
		})
	}

	return verdict, details
}

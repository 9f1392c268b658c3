package verify

import (
	"fmt"

	"docverify/internal/domain"
)

// notFoundPlaceholder substitutes for labels missing from the comparison
// list. Narration degrades instead of failing so it never blocks verdict
// delivery.
const notFoundPlaceholder = "[not found]"

// Narrate renders the per-type summary sentence from the comparison output,
// using the document-side values. Unsupported types yield a static sentence.
func Narrate(docType domain.DocumentType, details []domain.FieldComparison) string {
	lookup := func(label string) string {
		for _, d := range details {
			if d.Field == label {
				return d.DataFromDocument
			}
		}
		return notFoundPlaceholder
	}

	switch docType {
	case domain.DocumentTypeSale:
		return fmt.Sprintf(
			"The sale deed records that the seller, %s, transferred the property at %s to the buyer, %s, for a consideration of %s on %s.",
			lookup("Seller Name"), lookup("Property Location"), lookup("Buyer Name"),
			lookup("Sale Amount"), lookup("Sale Date"),
		)
	case domain.DocumentTypeGift:
		return fmt.Sprintf(
			"The gift deed declares that %s gifted %s situated at %s to %s on %s.",
			lookup("Giver Name"), lookup("Gift Type"), lookup("Gift Location"),
			lookup("Receiver Name"), lookup("Gift Date"),
		)
	case domain.DocumentTypeRental:
		return fmt.Sprintf(
			"The rental agreement is between the landlord, %s, and the tenant, %s, for a monthly rent of %s payable from %s to %s.",
			lookup("Landlord Name"), lookup("Tenant Name"), lookup("Rent Amount"),
			lookup("Start Date"), lookup("End Date"),
		)
	case domain.DocumentTypeAuthority:
		return fmt.Sprintf(
			"The power of authority executed on %s appoints %s to act on behalf of %s for the purpose of %s.",
			lookup("Execution Date"), lookup("Agent Name"), lookup("Principal Name"),
			lookup("Purpose"),
		)
	default:
		return "Analysis is not implemented for this document type."
	}
}

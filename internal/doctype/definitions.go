package doctype

import "docverify/internal/domain"

// commonRules is appended to every extraction instruction. The "Not Found"
// sentinel keeps downstream comparison total even when the model honors the
// schema loosely.
const commonRules = `
GENERAL RULES:
- Normalize all dates to YYYY-MM-DD. Strip timestamps and annotations.
- Amounts are plain digit strings with no currency symbols, commas, or words.
- If a field is not present in the document, use exactly "Not Found".
- Summarize every page of the document in one sentence each and return the
  summaries in order in the "pageSummaries" array.

Return ONLY valid JSON conforming to the response schema, with no markdown
formatting, no code fences, no explanation.`

var definitionOrder = []domain.DocumentType{
	domain.DocumentTypeSale,
	domain.DocumentTypeGift,
	domain.DocumentTypeRental,
	domain.DocumentTypeAuthority,
}

var definitions = map[domain.DocumentType]*Definition{
	domain.DocumentTypeSale: {
		Type: domain.DocumentTypeSale,
		Fields: []FieldSpec{
			{Key: "sellerName", Label: "Seller Name"},
			{Key: "buyerName", Label: "Buyer Name"},
			{Key: "saleAmount", Label: "Sale Amount"},
			{Key: "saleDate", Label: "Sale Date"},
			{Key: "propertyLocation", Label: "Property Location"},
		},
		Instruction: `You are a legal document data extraction assistant. Analyze the provided sale deed and extract the following fields:
- "sellerName": full name of the seller (the party transferring the property).
- "buyerName": full name of the buyer (the party acquiring the property).
- "saleAmount": the total sale consideration.
- "saleDate": the date of execution of the sale deed.
- "propertyLocation": the full address of the property being sold.` + commonRules,
		Schema: map[string]FieldKind{
			"sellerName":       KindString,
			"buyerName":        KindString,
			"saleAmount":       KindString,
			"saleDate":         KindString,
			"propertyLocation": KindString,
		},
		Required: []string{"sellerName", "buyerName", "saleAmount", "saleDate", "propertyLocation"},
	},

	domain.DocumentTypeGift: {
		Type: domain.DocumentTypeGift,
		Fields: []FieldSpec{
			{Key: "giverName", Label: "Giver Name", NameMatch: true},
			{Key: "receiverName", Label: "Receiver Name", NameMatch: true},
			{Key: "giftType", Label: "Gift Type"},
			{Key: "giftLocation", Label: "Gift Location"},
			{Key: "giftDate", Label: "Gift Date"},
		},
		Instruction: `You are a legal document data extraction assistant. Analyze the provided gift deed and extract the following fields:
- "giverName": full name of the donor making the gift.
- "receiverName": full name of the donee receiving the gift.
- "giftType": classify the gift. If the document mentions an apartment, flat, house, plot, land, or car parking, the value is "Immovable property". If it mentions a vehicle, jewellery, shares, or cash, the value is "Movable property". Otherwise use the document's own wording.
- "giftLocation": the location of the gifted property, taken specifically from the text that follows the phrase "situated at".
- "giftDate": the date of execution of the gift deed.
- "addressComponents": split the gift location into street, locality, city, state, and pinCode components.` + commonRules,
		Schema: map[string]FieldKind{
			"giverName":          KindString,
			"receiverName":       KindString,
			"giftType":           KindString,
			"giftLocation":       KindString,
			"giftDate":           KindString,
			AddressComponentsKey: KindAddress,
		},
		Required: []string{"giverName", "receiverName", "giftType", "giftLocation", "giftDate"},
	},

	domain.DocumentTypeRental: {
		Type: domain.DocumentTypeRental,
		Fields: []FieldSpec{
			{Key: "rentAmount", Label: "Rent Amount"},
			{Key: "startDate", Label: "Start Date"},
			{Key: "endDate", Label: "End Date"},
			{Key: "tenantName", Label: "Tenant Name"},
			{Key: "landlordName", Label: "Landlord Name"},
		},
		Instruction: `You are a legal document data extraction assistant. Analyze the provided rental agreement and extract the following fields:
- "rentAmount": the monthly rent payable.
- "startDate": the commencement date of the tenancy.
- "endDate": the expiry date of the tenancy.
- "tenantName": full name of the tenant (lessee).
- "landlordName": full name of the landlord (lessor).` + commonRules,
		Schema: map[string]FieldKind{
			"rentAmount":   KindString,
			"startDate":    KindString,
			"endDate":      KindString,
			"tenantName":   KindString,
			"landlordName": KindString,
		},
		Required: []string{"rentAmount", "startDate", "endDate", "tenantName", "landlordName"},
	},

	domain.DocumentTypeAuthority: {
		Type: domain.DocumentTypeAuthority,
		Fields: []FieldSpec{
			{Key: "principalName", Label: "Principal Name"},
			{Key: "agentName", Label: "Agent Name"},
			{Key: "purpose", Label: "Purpose"},
			{Key: "executionDate", Label: "Execution Date"},
		},
		Instruction: `You are a legal document data extraction assistant. Analyze the provided power of authority document and extract the following fields:
- "principalName": full name of the principal granting the authority.
- "agentName": full name of the agent (attorney) receiving the authority.
- "purpose": the stated purpose or scope of the authority granted.
- "executionDate": the date of execution of the document.` + commonRules,
		Schema: map[string]FieldKind{
			"principalName": KindString,
			"agentName":     KindString,
			"purpose":       KindString,
			"executionDate": KindString,
		},
		Required: []string{"principalName", "agentName", "purpose", "executionDate"},
	},
}

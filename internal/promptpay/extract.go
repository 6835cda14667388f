package promptpay

import "strings"

// IdentifierType names which kind of identifier Extract resolved.
type IdentifierType string

const (
	TypeReference   IdentifierType = "reference"
	TypeDonationBox IdentifierType = "donationbox"
	TypeOrgRef      IdentifierType = "organizationref"
	TypeMobile      IdentifierType = "mobile"
	TypeTaxID       IdentifierType = "taxid"
	TypeAccount     IdentifierType = "account"
	TypeUnknown     IdentifierType = "unknown"
)

// Identifier is the single canonical result of priority resolution over a
// Record. Value is empty only when no slot passed its gate, in which case
// Type is TypeUnknown.
type Identifier struct {
	Value string
	Type  IdentifierType
}

// Extract resolves a parsed record down to the one identifier used for
// registry lookups, testing slots in fixed priority order.
//
// Slots are re-validated here even though the classifier already applied
// length rules: a slot set by the classifier's declared-type fallback can
// still fail the stricter gate, and it then degrades to TypeUnknown instead of
// leaking a malformed identifier downstream. References are the exception and
// pass through verbatim; "DIABETQR" must survive unaltered.
func Extract(rec Record) Identifier {
	if rec.ReferenceNumber != "" {
		return Identifier{Value: rec.ReferenceNumber, Type: TypeReference}
	}

	if d := digitsOnly(rec.DonationBoxAccount); rec.DonationBoxAccount != "" && len(d) == donationBoxDigits {
		return Identifier{Value: d, Type: TypeDonationBox}
	}

	if d := digitsOnly(rec.OrganizationReference); rec.OrganizationReference != "" && len(d) == orgRefDigits {
		return Identifier{Value: d, Type: TypeOrgRef}
	}

	if d := digitsOnly(rec.PhoneNumber); rec.PhoneNumber != "" && len(d) == mobileDigits && strings.HasPrefix(d, "0") {
		return Identifier{Value: d, Type: TypeMobile}
	}

	if d := digitsOnly(rec.TaxID); rec.TaxID != "" && len(d) == taxIDDigits {
		return Identifier{Value: d, Type: TypeTaxID}
	}

	if d := digitsOnly(rec.AccountNumber); rec.AccountNumber != "" && len(d) >= mobileDigits {
		return Identifier{Value: d, Type: TypeAccount}
	}

	return Identifier{Type: TypeUnknown}
}

// DecodeAndClassify decodes a raw EMV-QR payload and resolves its canonical
// identifier in one call. It is a pure function: the same payload always
// yields the same identifier.
func DecodeAndClassify(payload string) Identifier {
	return Extract(Parse(payload))
}

// Name returns the merchant display name embedded in a payload, or empty when
// the payload carries none.
func Name(payload string) string {
	return Parse(payload).Name
}

package promptpay

// ProxyType is the PromptPay sub-code naming what kind of identifier a
// merchant-info proxy value claims to be. It is a closed set so the
// classification switch stays exhaustive.
type ProxyType string

const (
	ProxyMobile    ProxyType = "mobile"
	ProxyTaxID     ProxyType = "taxid"
	ProxyEWallet   ProxyType = "ewallet"
	ProxyOrgRef    ProxyType = "organizationref"
	ProxyReference ProxyType = "reference"
	ProxyUnknown   ProxyType = "unknown"
)

// proxyTypeFromCode maps the raw two-character proxy type code from the
// merchant-info sub-template to its semantic type.
func proxyTypeFromCode(code string) ProxyType {
	switch code {
	case proxyCodeMobile:
		return ProxyMobile
	case proxyCodeTaxID:
		return ProxyTaxID
	case proxyCodeEWallet:
		return ProxyEWallet
	case proxyCodeOrgRef:
		return ProxyOrgRef
	case proxyCodeReference:
		return ProxyReference
	}
	return ProxyUnknown
}

// Record is the structured form of one decoded QR payload. It is constructed
// fresh per decode call and never mutated after return.
//
// At most one identifier slot is populated per well-formed payload; the
// classifier enforces this by construction rather than by validation.
type Record struct {
	ProxyType     ProxyType // zero when the payload carried no proxy type tag
	ProxyTypeCode string    // raw two-character code, verbatim

	PhoneNumber           string
	TaxID                 string
	AccountNumber         string
	OrganizationReference string // 17-digit ORN for government recipients
	DonationBoxAccount    string // 16-digit donation box account
	ReferenceNumber       string // text reference such as "DIABETQR"

	Name     string  // merchant/receiver display name (tag 59)
	Amount   float64 // zero when absent or unparseable
	Currency string  // "764" is mapped to "THB", anything else verbatim
	Country  string

	// Raw keeps the original payload for diagnostics.
	Raw string
	// DroppedBytes counts payload bytes discarded because a TLV length failed
	// to parse. Non-zero means a partial decode; callers may log it but the
	// decoded fields remain usable.
	DroppedBytes int
}

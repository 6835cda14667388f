package promptpay

import "strings"

// Digit-length signatures of Thai PromptPay identifier formats.
const (
	mobileDigits      = 10
	taxIDDigits       = 13
	donationBoxDigits = 16
	orgRefDigits      = 17

	// maxAccountDigits caps the default account-number fallback.
	maxAccountDigits = 16
)

// classifyProxyValue assigns a merchant-info proxy value to exactly one
// identifier slot on the record.
//
// The declared type code is not trusted on its own: scanned payloads
// frequently mislabel it, and the digit-length signature is the more reliable
// signal for the long-form Thai identifier formats. The rule order below is a
// tie-break contract; reordering it changes which slot wins for ambiguous
// payloads.
//
//  1. Declared text reference (REF.1): stored verbatim, digits and all.
//  2. Digit-length signature: 16 donation box, 17 organization reference,
//     13 tax ID, 10 starting with "0" phone number.
//  3. Declared type fallback, ignoring length.
//  4. Digitless non-empty text: treated as a reference.
//  5. Anything else: account number, digits only, capped at 16.
func classifyProxyValue(value string, declared ProxyType, code string, rec *Record) {
	digits := digitsOnly(value)

	switch {
	case declared == ProxyReference || code == proxyCodeReference:
		rec.ReferenceNumber = value

	case len(digits) == donationBoxDigits:
		rec.DonationBoxAccount = value
	case len(digits) == orgRefDigits:
		rec.OrganizationReference = value
	case len(digits) == taxIDDigits:
		rec.TaxID = value
	case len(digits) == mobileDigits && strings.HasPrefix(digits, "0"):
		rec.PhoneNumber = value

	case declared == ProxyMobile:
		rec.PhoneNumber = value
	case declared == ProxyTaxID:
		rec.TaxID = value
	case declared == ProxyEWallet:
		rec.AccountNumber = value
	case declared == ProxyOrgRef:
		rec.OrganizationReference = value

	case len(digits) == 0 && value != "":
		rec.ReferenceNumber = value

	default:
		if len(digits) > maxAccountDigits {
			digits = digits[:maxAccountDigits]
		}
		rec.AccountNumber = digits
	}
}

// Package promptpay decodes Thai PromptPay EMV-QR payloads and resolves the
// single identifier a payload pays to.
//
// The pipeline is pure and synchronous: a generic TLV scan, a field
// interpreter for the known top-level tags, a proxy classifier that decides
// which identifier slot a merchant-info proxy value belongs to, and an
// extractor that picks one canonical identifier by fixed priority. Malformed
// input degrades to a partial decode or an unknown identifier; nothing in this
// package returns an error.
package promptpay

import (
	"strconv"
	"strings"
)

// Top-level EMV-QR tags interpreted by Parse. Everything else is ignored.
const (
	tagMerchantInfo    = "26" // merchant account information (standard)
	tagMerchantInfoAlt = "30" // merchant account information (alternate vendor)
	tagCurrency        = "53"
	tagAmount          = "54"
	tagCountry         = "58"
	tagMerchantName    = "59"
	tagAdditionalData  = "62"
)

// Merchant-info sub-template tags.
const (
	subTagGUID       = "00"
	subTagProxyType  = "01"
	subTagProxyValue = "02"
)

// Proxy type codes as they appear on the wire.
const (
	proxyCodeMobile    = "01"
	proxyCodeTaxID     = "02"
	proxyCodeEWallet   = "03"
	proxyCodeOrgRef    = "04"
	proxyCodeReference = "09" // REF.1 text reference
)

// promptPayGUIDPrefix identifies the PromptPay application in the merchant
// info GUID sub-field. Nothing downstream keys off it; payloads with a foreign
// GUID still decode.
const promptPayGUIDPrefix = "A0000006770101"

const currencyCodeTHB = "764"

// Parse decodes a raw EMV-QR payload into a Record. Any value that fails to
// parse is skipped and the rest of the payload still decodes; the result is
// partially populated rather than an error.
func Parse(payload string) Record {
	rec := Record{Raw: payload}

	fields, dropped := scanTLV(payload)
	rec.DroppedBytes = dropped

	for _, f := range fields {
		switch f.Tag {
		case tagMerchantInfo, tagMerchantInfoAlt:
			parseMerchantInfo(f.Value, &rec)
		case tagAmount:
			if amount, err := strconv.ParseFloat(f.Value, 64); err == nil {
				rec.Amount = amount
			}
		case tagCurrency:
			if f.Value == currencyCodeTHB {
				rec.Currency = "THB"
			} else {
				rec.Currency = f.Value
			}
		case tagCountry:
			rec.Country = f.Value
		case tagMerchantName:
			rec.Name = f.Value
		case tagAdditionalData:
			// Bill number and mobile number subtags live here, but nothing
			// downstream consumes them. The sub-scan only keeps the
			// dropped-byte accounting consistent for malformed payloads.
			_, sub := scanTLV(f.Value)
			rec.DroppedBytes += sub
		}
	}

	return rec
}

// parseMerchantInfo scans the merchant account info template (tag 26 or 30)
// and routes the proxy value through the classifier. The proxy type code seen
// most recently in the same template travels with the value.
func parseMerchantInfo(data string, rec *Record) {
	fields, dropped := scanTLV(data)
	rec.DroppedBytes += dropped

	var code string
	for _, f := range fields {
		switch f.Tag {
		case subTagGUID:
			// The PromptPay application GUID (A0000006770101...) sits here.
			// Informational only.
		case subTagProxyType:
			code = f.Value
			if len(code) > 2 {
				// Seen in the wild when a broken encoder folds the proxy
				// value into this sub-field. The declared code is the first
				// two characters.
				code = code[:2]
			}
			rec.ProxyTypeCode = code
			rec.ProxyType = proxyTypeFromCode(code)
		case subTagProxyValue:
			classifyProxyValue(f.Value, rec.ProxyType, code, rec)
		}
	}
}

// digitsOnly strips everything that is not an ASCII digit.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Package bank carries Thai bank display data and identifier validation
// helpers shared by the verification handlers.
package bank

import "strings"

// Code identifies a Thai bank in registry records.
type Code string

const (
	PromptPay Code = "PROMPTPAY"
	KBank     Code = "KBANK"
	SCB       Code = "SCB"
	BBL       Code = "BBL"
	KTB       Code = "KTB"
	BAY       Code = "BAY"
	TTB       Code = "TTB"
	CIMB      Code = "CIMB"
	TISCO     Code = "TISCO"
	UOB       Code = "UOB"
	GSB       Code = "GSB"
	BAAC      Code = "BAAC"
	Other     Code = "OTHER"
)

// displayNames maps bank codes to their Thai display names.
var displayNames = map[Code]string{
	PromptPay: "พร้อมเพย์",
	KBank:     "ธนาคารกสิกรไทย",
	SCB:       "ธนาคารไทยพาณิชย์",
	BBL:       "ธนาคารกรุงเทพ",
	KTB:       "ธนาคารกรุงไทย",
	BAY:       "ธนาคารกรุงศรีอยุธยา",
	TTB:       "ธนาคารทหารไทยธนชาต",
	CIMB:      "ธนาคารซีไอเอ็มบีไทย",
	TISCO:     "ธนาคารทิสโก้",
	UOB:       "ธนาคารยูโอบี",
	GSB:       "ธนาคารออมสิน",
	BAAC:      "ธนาคารเพื่อการเกษตรและสหกรณ์การเกษตร",
	Other:     "อื่นๆ",
}

// DisplayName resolves a stored bank value to its Thai display name. Unknown
// values pass through verbatim; empty means unspecified.
func DisplayName(value string) string {
	if value == "" {
		return "ไม่ระบุ"
	}
	if name, ok := displayNames[Code(strings.ToUpper(value))]; ok {
		return name
	}
	return value
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidThaiMobile reports whether s is a Thai mobile number: ten digits
// starting with 0, formatting characters ignored.
func IsValidThaiMobile(s string) bool {
	d := digits(s)
	return len(d) == 10 && d[0] == '0'
}

// IsValidThaiNationalID reports whether s passes the 13-digit Thai national
// ID / tax ID checksum.
func IsValidThaiNationalID(s string) bool {
	d := digits(s)
	if len(d) != 13 {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(d[i]-'0') * (13 - i)
	}
	check := (11 - sum%11) % 10
	return check == int(d[12]-'0')
}

// FormatThaiMobile renders a mobile number as XXX-XXX-XXXX for display.
// Anything that is not ten digits is returned unchanged.
func FormatThaiMobile(s string) string {
	d := digits(s)
	if len(d) != 10 {
		return s
	}
	return d[:3] + "-" + d[3:6] + "-" + d[6:]
}

// FormatAccountNumber renders a 10-digit account or 13-digit PromptPay
// identifier with display dashes. Other lengths are returned unchanged; bank
// specific account formats vary too much to guess.
func FormatAccountNumber(s string) string {
	d := digits(s)
	switch len(d) {
	case 10:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	case 13:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	default:
		return s
	}
}

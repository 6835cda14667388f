package promptpay

import "strconv"

// tlvField is one Tag-Length-Value triple produced by a scan pass. Fields are
// ephemeral; they never outlive the decode call that produced them.
type tlvField struct {
	Tag    string
	Length int
	Value  string
}

// scanTLV walks s as a flat sequence of Tag(2 chars) / Length(2 decimal chars)
// / Value(Length chars) fields. It carries no PromptPay knowledge; nested
// templates (merchant account info, additional data) are scanned by calling it
// again on a field's value, so top-level and nested scans share the exact same
// edge-case handling.
//
// A length that does not parse as a non-negative integer ends the scan. Fields
// decoded up to that point are returned together with the count of bytes that
// were dropped, so callers can surface data-quality issues without failing the
// decode.
func scanTLV(s string) (fields []tlvField, dropped int) {
	i := 0
	for i < len(s) {
		tag := clamp(s, i, i+2)
		length, err := strconv.Atoi(clamp(s, i+2, i+4))
		if err != nil || length < 0 {
			return fields, len(s) - i
		}
		fields = append(fields, tlvField{
			Tag:    tag,
			Length: length,
			Value:  clamp(s, i+4, i+4+length),
		})
		i += 4 + length
	}
	return fields, 0
}

// clamp slices s[from:to] without reading past the end. A shortened Value is
// accepted as syntactically valid even if semantically garbage; validation
// happens at extraction time.
func clamp(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

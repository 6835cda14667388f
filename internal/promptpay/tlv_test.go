package promptpay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tlv builds one Tag-Length-Value field for test payloads.
func tlv(tag, value string) string {
	return tag + fmt.Sprintf("%02d", len(value)) + value
}

func TestScanTLVWalksFields(t *testing.T) {
	payload := tlv("00", "01") + tlv("58", "TH") + tlv("59", "Mirror Foundation")

	fields, dropped := scanTLV(payload)
	require.Len(t, fields, 3)
	assert.Zero(t, dropped)

	assert.Equal(t, "00", fields[0].Tag)
	assert.Equal(t, "01", fields[0].Value)
	assert.Equal(t, "58", fields[1].Tag)
	assert.Equal(t, "TH", fields[1].Value)
	assert.Equal(t, "59", fields[2].Tag)
	assert.Equal(t, 17, fields[2].Length)
	assert.Equal(t, "Mirror Foundation", fields[2].Value)
}

func TestScanTLVStopsOnUnparseableLength(t *testing.T) {
	// Second field declares length "XX"; the scan keeps the first field and
	// reports the rest of the payload as dropped.
	payload := tlv("00", "01") + "26XXgarbage"

	fields, dropped := scanTLV(payload)
	require.Len(t, fields, 1)
	assert.Equal(t, "00", fields[0].Tag)
	assert.Equal(t, len("26XXgarbage"), dropped)
}

func TestScanTLVNegativeLengthDropsTail(t *testing.T) {
	payload := tlv("58", "TH") + "59-5abcde"

	fields, dropped := scanTLV(payload)
	require.Len(t, fields, 1)
	assert.Equal(t, len("59-5abcde"), dropped)
}

func TestScanTLVNeverReadsPastInput(t *testing.T) {
	// Field declares 20 value chars but only 4 remain. The value is clamped,
	// not an out-of-range slice.
	payload := tlv("58", "TH") + "5920ABCD"

	fields, dropped := scanTLV(payload)
	require.Len(t, fields, 2)
	assert.Zero(t, dropped)
	assert.Equal(t, "ABCD", fields[1].Value)

	// Every field costs at least its 4-char header, so the field count is
	// bounded by the input length.
	assert.LessOrEqual(t, len(fields)*4, len(payload))
}

func TestScanTLVTruncatedHeader(t *testing.T) {
	// A bare tag with no length characters cannot be parsed.
	fields, dropped := scanTLV("58")
	assert.Empty(t, fields)
	assert.Equal(t, 2, dropped)
}

func TestScanTLVEmptyInput(t *testing.T) {
	fields, dropped := scanTLV("")
	assert.Empty(t, fields)
	assert.Zero(t, dropped)
}

package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "ธนาคารไทยพาณิชย์", DisplayName("SCB"))
	assert.Equal(t, "ธนาคารกสิกรไทย", DisplayName("kbank"))
	assert.Equal(t, "ไม่ระบุ", DisplayName(""))
	// Unknown values pass through so stored free-text banks still display.
	assert.Equal(t, "Siam Commercial Bank (SCB)", DisplayName("Siam Commercial Bank (SCB)"))
}

func TestIsValidThaiMobile(t *testing.T) {
	assert.True(t, IsValidThaiMobile("0812345678"))
	assert.True(t, IsValidThaiMobile("081-234-5678"))
	assert.False(t, IsValidThaiMobile("8123456789"))
	assert.False(t, IsValidThaiMobile("081234567"))
	assert.False(t, IsValidThaiMobile(""))
}

func TestIsValidThaiNationalID(t *testing.T) {
	assert.True(t, IsValidThaiNationalID("1101700230708"))
	assert.True(t, IsValidThaiNationalID("1-1017-00230-70-8"))
	assert.False(t, IsValidThaiNationalID("1101700230705"))
	assert.False(t, IsValidThaiNationalID("123456"))
}

func TestFormatThaiMobile(t *testing.T) {
	assert.Equal(t, "081-234-5678", FormatThaiMobile("0812345678"))
	assert.Equal(t, "not-a-number", FormatThaiMobile("not-a-number"))
}

func TestFormatAccountNumber(t *testing.T) {
	assert.Equal(t, "565-471-1061", FormatAccountNumber("5654711061"))
	assert.Equal(t, "123-456-7890123", FormatAccountNumber("1234567890123"))
	assert.Equal(t, "12345", FormatAccountNumber("12345"))
}

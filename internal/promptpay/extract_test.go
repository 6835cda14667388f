package promptpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPriorityReferenceFirst(t *testing.T) {
	rec := Record{
		ReferenceNumber: "DIABETQR",
		AccountNumber:   "1234567890",
	}
	got := Extract(rec)
	assert.Equal(t, TypeReference, got.Type)
	assert.Equal(t, "DIABETQR", got.Value)
}

func TestExtractDigitStripsAllButReferences(t *testing.T) {
	got := Extract(Record{DonationBoxAccount: "1234-5678-9012-3456"})
	assert.Equal(t, TypeDonationBox, got.Type)
	assert.Equal(t, "1234567890123456", got.Value)

	got = Extract(Record{ReferenceNumber: "REF-42"})
	assert.Equal(t, "REF-42", got.Value)
}

func TestExtractOrder(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want Identifier
	}{
		{"donation box", Record{DonationBoxAccount: "1234567890123456"},
			Identifier{Value: "1234567890123456", Type: TypeDonationBox}},
		{"organization reference", Record{OrganizationReference: "12345678901234567"},
			Identifier{Value: "12345678901234567", Type: TypeOrgRef}},
		{"mobile", Record{PhoneNumber: "081-234-5678"},
			Identifier{Value: "0812345678", Type: TypeMobile}},
		{"tax id", Record{TaxID: "0105536112211"},
			Identifier{Value: "0105536112211", Type: TypeTaxID}},
		{"account", Record{AccountNumber: "565-471106-1"},
			Identifier{Value: "5654711061", Type: TypeAccount}},
		{"nothing populated", Record{Name: "Mirror Foundation"},
			Identifier{Type: TypeUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.rec))
		})
	}
}

func TestExtractRevalidationGate(t *testing.T) {
	// Slots set by the classifier's declared-type fallback can still fail the
	// stricter extraction gate; they degrade to unknown instead of leaking.
	tests := []struct {
		name string
		rec  Record
	}{
		{"phone with wrong digit count", Record{PhoneNumber: "812345678"}},
		{"phone without leading zero", Record{PhoneNumber: "8123456789"}},
		{"tax id too short", Record{TaxID: "123456"}},
		{"donation box with 15 digits", Record{DonationBoxAccount: "123456789012345"}},
		{"account below 10 digits", Record{AccountNumber: "123456789"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.rec)
			assert.Equal(t, TypeUnknown, got.Type)
			assert.Empty(t, got.Value)
		})
	}
}

func TestDecodeAndClassifyScenarios(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Identifier
	}{
		{
			name:    "tax id",
			payload: tlv("00", "01") + merchantInfo("02", "1234567890123"),
			want:    Identifier{Value: "1234567890123", Type: TypeTaxID},
		},
		{
			name:    "mobile",
			payload: tlv("00", "01") + merchantInfo("01", "0812345678"),
			want:    Identifier{Value: "0812345678", Type: TypeMobile},
		},
		{
			name:    "text reference",
			payload: tlv("00", "01") + merchantInfo("09", "DIABETQR"),
			want:    Identifier{Value: "DIABETQR", Type: TypeReference},
		},
		{
			name:    "donation box mislabeled as mobile",
			payload: merchantInfo("01", "1234567890123456"),
			want:    Identifier{Value: "1234567890123456", Type: TypeDonationBox},
		},
		{
			name:    "unusable payload",
			payload: "not-a-qr-payload",
			want:    Identifier{Type: TypeUnknown},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeAndClassify(tt.payload))

			// Pure: a second pass over the same payload yields the same result.
			assert.Equal(t, tt.want, DecodeAndClassify(tt.payload))
		})
	}
}

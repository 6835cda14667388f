package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "5654711061", Normalize("565-471106-1"))
	assert.Equal(t, "0812345678", Normalize("081 234 5678"))
	assert.Equal(t, "diabetqr", Normalize("DIABETQR"))
	assert.Equal(t, "ref42", Normalize("REF-42"))
	assert.Equal(t, "", Normalize("---   "))
}

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInvoiceNo(t *testing.T) {
	no := GenerateInvoiceNo("INV")
	assert.True(t, strings.HasPrefix(no, "INV-"))
	assert.Len(t, no, 12)
	assert.Equal(t, no, strings.ToUpper(no))

	// Two consecutive numbers must differ.
	assert.NotEqual(t, no, GenerateInvoiceNo("INV"))
}

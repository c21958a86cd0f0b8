package hash

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hex(t *testing.T) {
	// vetor conhecido de SHA-256
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		SHA256Hex(nil))
	assert.Equal(t,
		"2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		SHA256Hex([]byte("hello")))
}

func TestCertificateIDUsesCallerID(t *testing.T) {
	assert.Equal(t, "FUP-2025-000001", CertificateID("FUP-2025-000001"))
	assert.Equal(t, "FUP-2025-000001", CertificateID("  FUP-2025-000001  "))
}

func TestCertificateIDFallsBackToUUID(t *testing.T) {
	id := CertificateID("")
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	// IDs gerados são aleatórios
	assert.NotEqual(t, id, CertificateID("   "))
}

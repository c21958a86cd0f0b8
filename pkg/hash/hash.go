package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// SHA256Hex calcula o hash SHA-256 do conteúdo e retorna em hexadecimal
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CertificateID deriva o ID do certificado: usa o ID informado pelo chamador
// quando presente, ou gera um UUID aleatório
func CertificateID(callerID string) string {
	if id := strings.TrimSpace(callerID); id != "" {
		return id
	}
	return uuid.New().String()
}

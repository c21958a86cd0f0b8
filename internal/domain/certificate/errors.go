package certificate

import "errors"

// Taxonomia de erros do subsistema de certificados. Erros de validação são
// terminais para o chamador; ErrServiceBusy é transitório e seguro de
// repetir; ErrAlreadyExists é o sinal de idempotência, não uma falha.
var (
	ErrInvalidTemplate = errors.New("modelo de certificado desconhecido")
	ErrInvalidFormat   = errors.New("formato de saída inválido")
	ErrInvalidTokens   = errors.New("tokens obrigatórios ausentes ou vazios")
	ErrMissingTokens   = errors.New("tokens exigidos pelo modelo não informados")
	ErrExtraTokens     = errors.New("tokens informados não são usados pelo modelo")
	ErrAlreadyExists   = errors.New("certificado já existe")
	ErrServiceBusy     = errors.New("geração em andamento para este certificado")
	ErrNotFound        = errors.New("certificado não encontrado")
)

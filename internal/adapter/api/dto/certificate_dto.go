package dto

import (
	"time"

	"github.com/Eduarjn/eralearn-sub001/internal/domain/certificate"
	"github.com/Eduarjn/eralearn-sub001/internal/service"
)

// GenerateRequest representa o corpo da requisição de geração de certificado
type GenerateRequest struct {
	TemplateKey string            `json:"templateKey" binding:"required"`
	Format      string            `json:"format" binding:"required"`
	Tokens      map[string]string `json:"tokens" binding:"required"`
	Overwrite   bool              `json:"overwrite"`
}

// ToDomain converte a requisição para o tipo do domínio
func (r *GenerateRequest) ToDomain() certificate.GenerateRequest {
	return certificate.GenerateRequest{
		TemplateKey: r.TemplateKey,
		Format:      certificate.Format(r.Format),
		Tokens:      r.Tokens,
		Overwrite:   r.Overwrite,
	}
}

// GenerateResponse representa a resposta de uma geração bem-sucedida
type GenerateResponse struct {
	ID          string        `json:"id"`
	TemplateKey string        `json:"templateKey"`
	Format      string        `json:"format"`
	Paths       service.Paths `json:"paths"`
}

// NewGenerateResponse cria um GenerateResponse a partir do resultado do serviço
func NewGenerateResponse(result *service.GenerateResult) *GenerateResponse {
	return &GenerateResponse{
		ID:          result.ID,
		TemplateKey: result.TemplateKey,
		Format:      string(result.Format),
		Paths:       result.Paths,
	}
}

// TemplateResponse descreve um modelo disponível no catálogo
type TemplateResponse struct {
	Key        string                 `json:"key"`
	Name       string                 `json:"name"`
	Tokens     []string               `json:"tokens"`
	Dimensions certificate.Dimensions `json:"dimensions"`
}

// TemplateListResponse representa a resposta do catálogo de modelos
type TemplateListResponse struct {
	Total     int                `json:"total"`
	Templates []TemplateResponse `json:"templates"`
}

// CertificateSummary é a projeção de uma entrada do índice na listagem
type CertificateSummary struct {
	ID           string    `json:"id"`
	TemplateKey  string    `json:"templateKey"`
	CreatedAt    time.Time `json:"createdAt"`
	NomeCompleto string    `json:"nomeCompleto"`
	Curso        string    `json:"curso"`
	PathRelativo string    `json:"pathRelativo"`
}

// CertificateListResponse representa a resposta da listagem de certificados
type CertificateListResponse struct {
	Certificates []CertificateSummary `json:"certificates"`
	Total        int                  `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}

// NewCertificateListResponse cria a resposta de listagem a partir das
// entradas do índice
func NewCertificateListResponse(entries []*certificate.IndexEntry, total, page, pageSize int) *CertificateListResponse {
	response := &CertificateListResponse{
		Certificates: make([]CertificateSummary, 0, len(entries)),
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}

	for _, entry := range entries {
		response.Certificates = append(response.Certificates, CertificateSummary{
			ID:           entry.ID,
			TemplateKey:  entry.TemplateKey,
			CreatedAt:    entry.CreatedAt,
			NomeCompleto: entry.TokensResumo.NomeCompleto,
			Curso:        entry.TokensResumo.Curso,
			PathRelativo: entry.PathRelativo,
		})
	}

	return response
}

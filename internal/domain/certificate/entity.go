package certificate

import (
	"strings"
	"time"
)

// Format é o formato de saída solicitado para o certificado
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// IsValid verifica se o formato é um dos suportados
func (f Format) IsValid() bool {
	switch f {
	case FormatSVG, FormatPNG, FormatPDF:
		return true
	}
	return false
}

// RequiredTokens são os seis tokens obrigatórios em toda requisição de geração
var RequiredTokens = []string{
	"NOME_COMPLETO",
	"CURSO",
	"DATA_CONCLUSAO",
	"CARGA_HORARIA",
	"CERT_ID",
	"QR_URL",
}

const (
	// ManifestVersion é a versão atual do esquema do manifesto
	ManifestVersion = 1

	// CreatedBySystem é o autor registrado nos manifestos; o serviço não
	// vincula identidade autenticada
	CreatedBySystem = "system"

	// EngineSvgToPng e EngineSvgToPdf nomeiam os conversores que seriam
	// usados para os formatos png/pdf; a conversão em si não é executada
	EngineSvgToPng = "resvg"
	EngineSvgToPdf = "rsvg-convert"
)

// ValidID verifica se o ID pode ser usado como um único componente de caminho.
// O ID nomeia o manifesto, o diretório do artefato e o arquivo de lock, todos
// sob CERT_DATA_DIR; separadores ou ".." permitiriam escapar dessa raiz.
func ValidID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`)
}

// GenerateRequest representa uma solicitação de geração de certificado
type GenerateRequest struct {
	TemplateKey string
	Format      Format
	Tokens      map[string]string
	Overwrite   bool
}

// Hashes agrupa os hashes de conteúdo registrados no manifesto, permitindo
// detecção de adulteração do modelo e do SVG renderizado
type Hashes struct {
	TemplateSvgSHA256 string `json:"templateSvgSha256"`
	FinalSvgSHA256    string `json:"finalSvgSha256"`
	PngSHA256         string `json:"pngSha256,omitempty"`
	PdfSHA256         string `json:"pdfSha256,omitempty"`
}

// Dimensions são as dimensões extraídas dos atributos width/height do SVG
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// Engine registra os conversores associados aos formatos png/pdf
// (metadado informativo)
type Engine struct {
	SvgToPng string `json:"svgToPng"`
	SvgToPdf string `json:"svgToPdf"`
}

// Manifest é o registro persistido de um certificado gerado. É criado uma
// única vez na geração (salvo overwrite explícito) e imutável depois disso.
type Manifest struct {
	ID          string            `json:"id"`
	TemplateKey string            `json:"templateKey"`
	Tokens      map[string]string `json:"tokens"`
	CreatedAt   time.Time         `json:"createdAt"`
	CreatedBy   string            `json:"createdBy"`
	Hashes      Hashes            `json:"hashes"`
	Dimensions  Dimensions        `json:"dimensions"`
	Fonts       []string          `json:"fonts"`
	Engine      Engine            `json:"engine"`
	Version     int               `json:"version"`
}

// Shard retorna o shard de armazenamento AAAA/MM derivado de createdAt
func (m *Manifest) Shard() (year, month string) {
	return m.CreatedAt.Format("2006"), m.CreatedAt.Format("01")
}

// TokensResumo é o resumo de tokens gravado no índice compartilhado
type TokensResumo struct {
	NomeCompleto string `json:"NOME_COMPLETO"`
	Curso        string `json:"CURSO"`
}

// IndexEntry é a linha acrescentada ao índice JSONL a cada certificado gerado.
// O índice é append-only: entradas nunca são editadas ou removidas.
type IndexEntry struct {
	ID           string       `json:"id"`
	TemplateKey  string       `json:"templateKey"`
	CreatedAt    time.Time    `json:"createdAt"`
	TokensResumo TokensResumo `json:"tokensResumo"`
	PathRelativo string       `json:"pathRelativo"`
}

// NewIndexEntry cria a entrada de índice correspondente a um manifesto
func NewIndexEntry(m *Manifest, pathRelativo string) *IndexEntry {
	return &IndexEntry{
		ID:          m.ID,
		TemplateKey: m.TemplateKey,
		CreatedAt:   m.CreatedAt,
		TokensResumo: TokensResumo{
			NomeCompleto: m.Tokens["NOME_COMPLETO"],
			Curso:        m.Tokens["CURSO"],
		},
		PathRelativo: pathRelativo,
	}
}

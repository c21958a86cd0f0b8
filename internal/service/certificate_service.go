package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Eduarjn/eralearn-sub001/internal/domain/certificate"
	"github.com/Eduarjn/eralearn-sub001/internal/domain/template"
	"github.com/Eduarjn/eralearn-sub001/internal/infrastructure/storage"
	"github.com/Eduarjn/eralearn-sub001/pkg/hash"
	"github.com/Eduarjn/eralearn-sub001/pkg/lock"
	"github.com/Eduarjn/eralearn-sub001/pkg/logger"
	"github.com/Eduarjn/eralearn-sub001/pkg/svgtemplate"
)

// Paths são os caminhos relativos de API retornados após a geração
type Paths struct {
	Manifest string `json:"manifest"`
	File     string `json:"file"`
	Verify   string `json:"verify"`
}

// GenerateResult é o resultado de uma geração bem-sucedida
type GenerateResult struct {
	ID          string
	TemplateKey string
	Format      certificate.Format
	Paths       Paths
}

// CertificateService orquestra a geração de certificados: validação, lock por
// ID, substituição de tokens, hashes e persistência de SVG, manifesto e índice
type CertificateService struct {
	store    certificate.ManifestStore
	registry *template.Registry
	locker   lock.Locker
	config   *storage.Config
	logger   logger.Logger
	now      func() time.Time
}

// NewCertificateService cria uma nova instância de CertificateService
func NewCertificateService(
	store certificate.ManifestStore,
	registry *template.Registry,
	locker lock.Locker,
	config *storage.Config,
	logger logger.Logger,
) *CertificateService {
	return &CertificateService{
		store:    store,
		registry: registry,
		locker:   locker,
		config:   config,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate executa a sequência completa de geração. Erros de validação e o
// conflito de idempotência são retornados como erros da taxonomia do domínio;
// o lock é liberado em todos os caminhos depois de adquirido.
func (s *CertificateService) Generate(ctx context.Context, req certificate.GenerateRequest) (*GenerateResult, error) {
	// 1. modelo conhecido
	if _, ok := s.registry.Get(req.TemplateKey); !ok {
		return nil, fmt.Errorf("%w: %q", certificate.ErrInvalidTemplate, req.TemplateKey)
	}

	// 2. formato suportado
	if !req.Format.IsValid() {
		return nil, fmt.Errorf("%w: %q", certificate.ErrInvalidFormat, string(req.Format))
	}

	// 3. tokens obrigatórios presentes e não vazios
	if missing := missingRequiredTokens(req.Tokens); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", certificate.ErrInvalidTokens, strings.Join(missing, ", "))
	}

	// 4. derivação do ID e do instante de criação; o ID vira componente de
	// caminho e não pode sair de CERT_DATA_DIR
	id := hash.CertificateID(req.Tokens["CERT_ID"])
	if !certificate.ValidID(id) {
		return nil, fmt.Errorf("%w: CERT_ID não é um componente de caminho válido: %q", certificate.ErrInvalidTokens, id)
	}
	createdAt := s.now().UTC()

	// 5. conflito de idempotência; o manifesto é a fonte de verdade de
	// existência
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if exists && !req.Overwrite {
		return nil, fmt.Errorf("%w: %s", certificate.ErrAlreadyExists, id)
	}

	// 6. lock por ID, não-bloqueante
	acquired, err := s.locker.Acquire(id)
	if err != nil {
		return nil, fmt.Errorf("falha ao adquirir lock do certificado %s: %w", id, err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", certificate.ErrServiceBusy, id)
	}
	defer func() {
		if err := s.locker.Release(id); err != nil {
			s.logger.Warn("Falha ao liberar lock do certificado", "id", id, "error", err)
		}
	}()

	// reconfere a existência dentro da seção crítica: um concorrente pode
	// ter concluído a geração entre a primeira verificação e o lock
	if !req.Overwrite {
		exists, err = s.store.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", certificate.ErrAlreadyExists, id)
		}
	}

	// 7. carga do modelo e extração dos tokens embutidos
	source, err := s.registry.Source(req.TemplateKey)
	if err != nil {
		return nil, err
	}
	templateTokens := svgtemplate.ExtractTokens(string(source))

	// 8. casamento estrito entre tokens do modelo e da requisição
	if err := matchTokens(templateTokens, req.Tokens); err != nil {
		return nil, err
	}

	// 9. substituição e hashes de conteúdo
	rendered := svgtemplate.SubstituteTokens(string(source), req.Tokens)
	templateHash := hash.SHA256Hex(source)
	finalHash := hash.SHA256Hex([]byte(rendered))

	// 10. dimensões e fontes do SVG renderizado
	width, height, unit := svgtemplate.ParseDimensions(rendered)
	fonts := svgtemplate.ParseFonts(rendered)

	manifest := &certificate.Manifest{
		ID:          id,
		TemplateKey: req.TemplateKey,
		Tokens:      req.Tokens,
		CreatedAt:   createdAt,
		CreatedBy:   certificate.CreatedBySystem,
		Hashes: certificate.Hashes{
			TemplateSvgSHA256: templateHash,
			FinalSvgSHA256:    finalHash,
		},
		Dimensions: certificate.Dimensions{Width: width, Height: height, Unit: unit},
		Fonts:      fonts,
		Engine: certificate.Engine{
			SvgToPng: certificate.EngineSvgToPng,
			SvgToPdf: certificate.EngineSvgToPdf,
		},
		Version: certificate.ManifestVersion,
	}

	// 11. persistência: SVG, manifesto e entrada de índice
	if err := s.store.SaveRenderedSVG(ctx, manifest, []byte(rendered)); err != nil {
		return nil, err
	}
	if err := s.store.SaveManifest(ctx, manifest); err != nil {
		return nil, err
	}
	year, month := manifest.Shard()
	entry := certificate.NewIndexEntry(manifest, s.config.FileRelativeDir(year, month, id))
	if err := s.store.AppendIndex(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Certificado gerado",
		"id", id,
		"template", req.TemplateKey,
		"format", string(req.Format),
		"overwrite", req.Overwrite)

	return &GenerateResult{
		ID:          id,
		TemplateKey: req.TemplateKey,
		Format:      req.Format,
		Paths:       PathsFor(id, req.Format),
	}, nil
}

// PathsFor monta os caminhos relativos de API de um certificado
func PathsFor(id string, format certificate.Format) Paths {
	return Paths{
		Manifest: fmt.Sprintf("/api/certificates/%s/manifest", id),
		File:     fmt.Sprintf("/api/certificates/%s/file?format=%s", id, format),
		Verify:   fmt.Sprintf("/verify/%s", id),
	}
}

// missingRequiredTokens retorna os tokens obrigatórios ausentes ou vazios
func missingRequiredTokens(tokens map[string]string) []string {
	var missing []string
	for _, name := range certificate.RequiredTokens {
		if strings.TrimSpace(tokens[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// matchTokens exige correspondência exata entre o conjunto de tokens do
// modelo e o da requisição, nas duas direções
func matchTokens(templateTokens []string, requestTokens map[string]string) error {
	inTemplate := make(map[string]bool, len(templateTokens))
	for _, name := range templateTokens {
		inTemplate[name] = true
	}

	var missing []string
	for _, name := range templateTokens {
		if _, ok := requestTokens[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", certificate.ErrMissingTokens, strings.Join(missing, ", "))
	}

	var extra []string
	for name := range requestTokens {
		if !inTemplate[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return fmt.Errorf("%w: %s", certificate.ErrExtraTokens, strings.Join(extra, ", "))
	}
	return nil
}

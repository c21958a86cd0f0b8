package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Eduarjn/eralearn-sub001/internal/adapter/api/dto"
	"github.com/Eduarjn/eralearn-sub001/internal/domain/certificate"
	"github.com/Eduarjn/eralearn-sub001/internal/domain/template"
	"github.com/Eduarjn/eralearn-sub001/internal/service"
	"github.com/Eduarjn/eralearn-sub001/pkg/logger"
	"github.com/Eduarjn/eralearn-sub001/pkg/svgtemplate"
)

// contentTypes mapeia o formato ao content-type servido no download
var contentTypes = map[certificate.Format]string{
	certificate.FormatSVG: "image/svg+xml",
	certificate.FormatPNG: "image/png",
	certificate.FormatPDF: "application/pdf",
}

// CertificateController manipula as requisições relacionadas a certificados
type CertificateController struct {
	certService *service.CertificateService
	store       certificate.ManifestStore
	registry    *template.Registry
	logger      logger.Logger
}

// NewCertificateController cria uma nova instância de CertificateController
func NewCertificateController(
	certService *service.CertificateService,
	store certificate.ManifestStore,
	registry *template.Registry,
	logger logger.Logger,
) *CertificateController {
	return &CertificateController{
		certService: certService,
		store:       store,
		registry:    registry,
		logger:      logger,
	}
}

// @Summary Gerar certificado
// @Description Gera um certificado a partir de um modelo SVG e dos tokens informados
// @Tags Certificados
// @Accept json
// @Produce json
// @Param certificate body dto.GenerateRequest true "Dados da geração"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/generate [post]
func (c *CertificateController) Generate(ctx *gin.Context) {
	var req dto.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "corpo da requisição inválido", err.Error()))
		return
	}

	result, err := c.certService.Generate(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewGenerateResponse(result))
}

// @Summary Buscar manifesto
// @Description Retorna o manifesto completo de um certificado
// @Tags Certificados
// @Produce json
// @Param id path string true "ID do certificado"
// @Success 200 {object} certificate.Manifest
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/{id}/manifest [get]
func (c *CertificateController) GetManifest(ctx *gin.Context) {
	id := ctx.Param("id")

	manifest, err := c.store.FindByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, manifest)
}

// @Summary Baixar arquivo do certificado
// @Description Retorna o artefato renderizado no formato pedido
// @Tags Certificados
// @Produce octet-stream
// @Param id path string true "ID do certificado"
// @Param format query string false "Formato (svg, png ou pdf)" default(svg)
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /certificates/{id}/file [get]
func (c *CertificateController) GetFile(ctx *gin.Context) {
	id := ctx.Param("id")
	format := certificate.Format(ctx.DefaultQuery("format", string(certificate.FormatSVG)))
	if !format.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "formato de saída inválido", string(format)))
		return
	}

	manifest, err := c.store.FindByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	content, err := c.store.ReadRenderedFile(ctx.Request.Context(), manifest, format)
	if err != nil {
		c.respondDomainError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, contentTypes[format], content)
}

// @Summary Listar modelos
// @Description Lista os modelos de certificado disponíveis, seus tokens e dimensões
// @Tags Certificados
// @Produce json
// @Success 200 {object} dto.TemplateListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/templates [get]
func (c *CertificateController) ListTemplates(ctx *gin.Context) {
	templates := c.registry.All()
	response := dto.TemplateListResponse{
		Total:     len(templates),
		Templates: make([]dto.TemplateResponse, 0, len(templates)),
	}

	for _, t := range templates {
		source, err := c.registry.Source(t.Key)
		if err != nil {
			c.logger.Error("Falha ao ler modelo do catálogo", "key", t.Key, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "falha ao ler modelo do catálogo", t.Key))
			return
		}
		width, height, unit := svgtemplate.ParseDimensions(string(source))
		response.Templates = append(response.Templates, dto.TemplateResponse{
			Key:        t.Key,
			Name:       t.Name,
			Tokens:     svgtemplate.ExtractTokens(string(source)),
			Dimensions: certificate.Dimensions{Width: width, Height: height, Unit: unit},
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// @Summary Listar certificados
// @Description Lista as entradas do índice de certificados com paginação
// @Tags Certificados
// @Produce json
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Itens por página" default(10)
// @Success 200 {object} dto.CertificateListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize
	entries, total, err := c.store.ListIndex(ctx.Request.Context(), pagination.PageSize, offset)
	if err != nil {
		c.logger.Error("Falha ao listar índice de certificados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "falha ao listar certificados", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCertificateListResponse(entries, total, pagination.Page, pagination.PageSize))
}

// respondDomainError traduz a taxonomia de erros do domínio para o status
// HTTP correspondente
func (c *CertificateController) respondDomainError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, certificate.ErrInvalidTemplate),
		errors.Is(err, certificate.ErrInvalidFormat),
		errors.Is(err, certificate.ErrInvalidTokens),
		errors.Is(err, certificate.ErrMissingTokens),
		errors.Is(err, certificate.ErrExtraTokens):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "requisição inválida", err.Error()))
	case errors.Is(err, certificate.ErrAlreadyExists):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "certificado já existe", err.Error()))
	case errors.Is(err, certificate.ErrServiceBusy):
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "geração em andamento, tente novamente", err.Error()))
	case errors.Is(err, certificate.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "certificado não encontrado", err.Error()))
	default:
		c.logger.Error("Falha inesperada no serviço de certificados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "falha interna", err.Error()))
	}
}

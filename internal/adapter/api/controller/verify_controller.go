package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eduarjn/eralearn-sub001/internal/domain/certificate"
	"github.com/Eduarjn/eralearn-sub001/internal/service"
	"github.com/Eduarjn/eralearn-sub001/pkg/logger"
)

// VerifyController renderiza a página pública de verificação de certificados
type VerifyController struct {
	store  certificate.ManifestStore
	logger logger.Logger
}

// NewVerifyController cria uma nova instância de VerifyController
func NewVerifyController(store certificate.ManifestStore, logger logger.Logger) *VerifyController {
	return &VerifyController{store: store, logger: logger}
}

// Verify renderiza a página de verificação do certificado. Quando nenhum
// manifesto corresponde ao ID após varrer todos os shards, a página exibe o
// estado "não encontrado" em vez de erro.
func (c *VerifyController) Verify(ctx *gin.Context) {
	id := ctx.Param("id")

	manifest, err := c.store.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, certificate.ErrNotFound) {
			ctx.HTML(http.StatusNotFound, "verify.html", gin.H{"Found": false, "ID": id})
			return
		}
		c.logger.Error("Falha ao buscar manifesto para verificação", "id", id, "error", err)
		ctx.HTML(http.StatusInternalServerError, "verify.html", gin.H{"Found": false, "ID": id})
		return
	}

	ctx.HTML(http.StatusOK, "verify.html", gin.H{
		"Found":    true,
		"ID":       id,
		"Manifest": manifest,
		"Paths":    service.PathsFor(id, certificate.FormatSVG),
	})
}

package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Eduarjn/eralearn-sub001/internal/adapter/api/controller"
)

// SetupCertificateRoutes configura as rotas do módulo de certificados
func SetupCertificateRoutes(router *gin.RouterGroup, certificateController *controller.CertificateController) {
	certificateRouter := router.Group("/certificates")
	{
		certificateRouter.GET("", certificateController.List)
		certificateRouter.POST("/generate", certificateController.Generate)
		certificateRouter.GET("/templates", certificateController.ListTemplates)
		certificateRouter.GET("/:id/manifest", certificateController.GetManifest)
		certificateRouter.GET("/:id/file", certificateController.GetFile)
	}
}

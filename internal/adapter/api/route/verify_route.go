package route

import (
	"github.com/gin-gonic/gin"

	"github.com/Eduarjn/eralearn-sub001/internal/adapter/api/controller"
)

// SetupVerifyRoutes configura a rota pública de verificação de certificados
func SetupVerifyRoutes(router *gin.Engine, verifyController *controller.VerifyController) {
	router.GET("/verify/:id", verifyController.Verify)
}

package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Eduarjn/eralearn-sub001/docs"
	"github.com/Eduarjn/eralearn-sub001/internal/adapter/api/controller"
	"github.com/Eduarjn/eralearn-sub001/internal/adapter/api/route"
	"github.com/Eduarjn/eralearn-sub001/internal/adapter/repository"
	"github.com/Eduarjn/eralearn-sub001/internal/domain/template"
	"github.com/Eduarjn/eralearn-sub001/internal/infrastructure/storage"
	"github.com/Eduarjn/eralearn-sub001/internal/service"
	"github.com/Eduarjn/eralearn-sub001/pkg/lock"
	"github.com/Eduarjn/eralearn-sub001/pkg/logger"
	"github.com/Eduarjn/eralearn-sub001/web"
)

// App representa a aplicação e suas dependências
type App struct {
	router                *gin.Engine
	config                *storage.Config
	logger                logger.Logger
	certificateController *controller.CertificateController
	verifyController      *controller.VerifyController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()
	config := storage.NewConfigFromEnv()

	// Catálogo de modelos: arquivo YAML quando configurado, catálogo
	// embutido caso contrário
	var registry *template.Registry
	if config.TemplatesFile != "" {
		loaded, err := template.LoadRegistryFile(config.TemplatesDir, config.TemplatesFile)
		if err != nil {
			return nil, err
		}
		registry = loaded
	} else {
		registry = template.NewRegistry(config.TemplatesDir)
	}

	// Locker por topologia de implantação: lock em arquivo quando o
	// CERT_DATA_DIR é compartilhado entre processos, mutex em memória para
	// processo único
	var locker lock.Locker
	switch config.LockMode {
	case storage.LockModeMemory:
		locker = lock.NewMemoryLocker(config.LockTTL)
	default:
		locker = lock.NewFileLocker(config.LocksDir(), config.LockTTL)
	}

	store := repository.NewFileManifestStore(config)
	certService := service.NewCertificateService(store, registry, locker, config, log)

	certificateController := controller.NewCertificateController(certService, store, registry, log)
	verifyController := controller.NewVerifyController(store, log)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.SetHTMLTemplate(web.Templates())

	return &App{
		router:                router,
		config:                config,
		logger:                log,
		certificateController: certificateController,
		verifyController:      verifyController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	api := a.router.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupCertificateRoutes(api, a.certificateController)
	route.SetupVerifyRoutes(a.router, a.verifyController)

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("Servidor de certificados iniciado", "port", port, "data_dir", a.config.DataDir)
	return a.router.Run(fmt.Sprintf(":%s", port))
}

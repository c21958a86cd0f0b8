package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eduarjn/eralearn-sub001/internal/adapter/repository"
	"github.com/Eduarjn/eralearn-sub001/internal/domain/template"
	"github.com/Eduarjn/eralearn-sub001/internal/infrastructure/storage"
	"github.com/Eduarjn/eralearn-sub001/internal/service"
	"github.com/Eduarjn/eralearn-sub001/pkg/lock"
	"github.com/Eduarjn/eralearn-sub001/pkg/logger"
	"github.com/Eduarjn/eralearn-sub001/web"
)

const testTemplateSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="1122" height="794">
  <text font-family="Playfair Display, serif">{{NOME_COMPLETO}}</text>
  <text font-family="Open Sans, sans-serif">{{CURSO}} - {{CARGA_HORARIA}} - {{DATA_CONCLUSAO}}</text>
  <text font-family="Roboto Mono, monospace">{{CERT_ID}} {{QR_URL}}</text>
</svg>`

// newTestRouter monta o router completo com armazenamento temporário e os
// cinco modelos do catálogo embutido
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	templatesDir := t.TempDir()
	registry := template.NewRegistry(templatesDir)
	for _, tmpl := range registry.All() {
		require.NoError(t, os.WriteFile(filepath.Join(templatesDir, tmpl.File), []byte(testTemplateSVG), 0o644))
	}

	config := &storage.Config{
		DataDir:      t.TempDir(),
		TemplatesDir: templatesDir,
		LockMode:     storage.LockModeMemory,
		LockTTL:      time.Minute,
	}

	log := logger.NewLogger()
	store := repository.NewFileManifestStore(config)
	locker := lock.NewMemoryLocker(config.LockTTL)
	certService := service.NewCertificateService(store, registry, locker, config, log)

	certController := NewCertificateController(certService, store, registry, log)
	verifyController := NewVerifyController(store, log)

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())

	api := router.Group("/api")
	certificates := api.Group("/certificates")
	certificates.GET("", certController.List)
	certificates.POST("/generate", certController.Generate)
	certificates.GET("/templates", certController.ListTemplates)
	certificates.GET("/:id/manifest", certController.GetManifest)
	certificates.GET("/:id/file", certController.GetFile)
	router.GET("/verify/:id", verifyController.Verify)

	return router
}

func generateBody() map[string]any {
	return map[string]any{
		"templateKey": "pabx_fundamentos",
		"format":      "svg",
		"tokens": map[string]string{
			"NOME_COMPLETO":  "João Silva",
			"CURSO":          "Fundamentos de PABX",
			"DATA_CONCLUSAO": "2025-01-09",
			"CARGA_HORARIA":  "8h",
			"CERT_ID":        "FUP-2025-000001",
			"QR_URL":         "https://x/verify/FUP-2025-000001",
		},
		"overwrite": false,
	}
}

func postGenerate(t *testing.T, router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/certificates/generate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGenerateEndpointScenario(t *testing.T) {
	router := newTestRouter(t)

	rec := postGenerate(t, router, generateBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response struct {
		ID    string `json:"id"`
		Paths struct {
			Manifest string `json:"manifest"`
			File     string `json:"file"`
			Verify   string `json:"verify"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "FUP-2025-000001", response.ID)
	assert.Equal(t, "/api/certificates/FUP-2025-000001/manifest", response.Paths.Manifest)

	// repetir exatamente a mesma chamada conflita
	rec = postGenerate(t, router, generateBody())
	assert.Equal(t, http.StatusConflict, rec.Code)

	// com overwrite a segunda chamada passa
	body := generateBody()
	body["overwrite"] = true
	rec = postGenerate(t, router, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	body := generateBody()
	body["templateKey"] = "desconhecido"
	assert.Equal(t, http.StatusBadRequest, postGenerate(t, router, body).Code)

	body = generateBody()
	body["format"] = "gif"
	assert.Equal(t, http.StatusBadRequest, postGenerate(t, router, body).Code)

	body = generateBody()
	body["tokens"].(map[string]string)["CURSO"] = ""
	assert.Equal(t, http.StatusBadRequest, postGenerate(t, router, body).Code)

	body = generateBody()
	body["tokens"].(map[string]string)["NAO_USADO"] = "x"
	assert.Equal(t, http.StatusBadRequest, postGenerate(t, router, body).Code)

	// corpo sem campos obrigatórios
	rec := postGenerate(t, router, map[string]any{"format": "svg"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestManifestEndpoint(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, postGenerate(t, router, generateBody()).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/certificates/FUP-2025-000001/manifest", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var manifest struct {
		ID     string `json:"id"`
		Hashes struct {
			FinalSvgSHA256 string `json:"finalSvgSha256"`
		} `json:"hashes"`
		Version int `json:"version"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &manifest))
	assert.Equal(t, "FUP-2025-000001", manifest.ID)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), manifest.Hashes.FinalSvgSHA256)
	assert.Equal(t, 1, manifest.Version)
}

func TestManifestEndpointNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/certificates/desconhecido/manifest", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFileEndpoint(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, postGenerate(t, router, generateBody()).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/certificates/FUP-2025-000001/file?format=svg", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "João Silva")

	// formato aceito na geração mas nunca produzido
	req = httptest.NewRequest(http.MethodGet, "/api/certificates/FUP-2025-000001/file?format=png", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// formato desconhecido
	req = httptest.NewRequest(http.MethodGet, "/api/certificates/FUP-2025-000001/file?format=gif", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTemplatesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/certificates/templates", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response struct {
		Total     int `json:"total"`
		Templates []struct {
			Key        string   `json:"key"`
			Tokens     []string `json:"tokens"`
			Dimensions struct {
				Width float64 `json:"width"`
			} `json:"dimensions"`
		} `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 5, response.Total)
	require.NotEmpty(t, response.Templates)
	assert.Len(t, response.Templates[0].Tokens, 6)
	assert.Equal(t, float64(1122), response.Templates[0].Dimensions.Width)
}

func TestListEndpoint(t *testing.T) {
	router := newTestRouter(t)

	for i := 1; i <= 3; i++ {
		body := generateBody()
		id := fmt.Sprintf("FUP-2025-00000%d", i)
		body["tokens"].(map[string]string)["CERT_ID"] = id
		require.Equal(t, http.StatusOK, postGenerate(t, router, body).Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/certificates?page=1&page_size=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response struct {
		Certificates []struct {
			ID string `json:"id"`
		} `json:"certificates"`
		Total    int `json:"total"`
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 3, response.Total)
	assert.Len(t, response.Certificates, 2)
	assert.Equal(t, "FUP-2025-000001", response.Certificates[0].ID)
}

func TestVerifyPage(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, postGenerate(t, router, generateBody()).Code)

	req := httptest.NewRequest(http.MethodGet, "/verify/FUP-2025-000001", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Certificado válido")
	assert.Contains(t, rec.Body.String(), "João Silva")
	assert.Contains(t, rec.Body.String(), "Fundamentos de PABX")

	req = httptest.NewRequest(http.MethodGet, "/verify/desconhecido", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Certificado não encontrado")
}

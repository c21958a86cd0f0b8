package storage

import (
	"os"
	"path/filepath"
	"time"
)

// Modos de lock suportados pela configuração
const (
	LockModeFile   = "file"
	LockModeMemory = "memory"
)

// Config contém as configurações de armazenamento do serviço de certificados.
// Todo o estado persistido (manifestos, arquivos, locks e índice) vive sob
// DataDir.
type Config struct {
	DataDir       string
	TemplatesDir  string
	TemplatesFile string
	LockMode      string
	LockTTL       time.Duration
}

// NewConfigFromEnv cria uma nova configuração a partir de variáveis de ambiente
func NewConfigFromEnv() *Config {
	ttl, err := time.ParseDuration(getEnv("CERT_LOCK_TTL", "30s"))
	if err != nil || ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &Config{
		DataDir:       getEnv("CERT_DATA_DIR", "./data"),
		TemplatesDir:  getEnv("CERT_TEMPLATES_DIR", "./certificates"),
		TemplatesFile: os.Getenv("CERT_TEMPLATES_FILE"),
		LockMode:      getEnv("CERT_LOCK_MODE", LockModeFile),
		LockTTL:       ttl,
	}
}

// ManifestPath retorna o caminho do manifesto no shard informado
func (c *Config) ManifestPath(year, month, id string) string {
	return filepath.Join(c.DataDir, "manifests", year, month, id+".json")
}

// ManifestsDir retorna o diretório raiz dos manifestos
func (c *Config) ManifestsDir() string {
	return filepath.Join(c.DataDir, "manifests")
}

// IndexPath retorna o caminho do índice JSONL compartilhado
func (c *Config) IndexPath() string {
	return filepath.Join(c.DataDir, "manifests", "index.jsonl")
}

// FileDir retorna o diretório de artefatos do certificado no shard informado
func (c *Config) FileDir(year, month, id string) string {
	return filepath.Join(c.DataDir, "files", year, month, id)
}

// FileRelativeDir retorna o caminho relativo (a partir de DataDir) do
// diretório de artefatos, gravado no índice
func (c *Config) FileRelativeDir(year, month, id string) string {
	return filepath.ToSlash(filepath.Join("files", year, month, id))
}

// LocksDir retorna o diretório dos arquivos de lock
func (c *Config) LocksDir() string {
	return filepath.Join(c.DataDir, "locks")
}

// getEnv retorna o valor da variável de ambiente ou o padrão informado
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

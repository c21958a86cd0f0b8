package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Eduarjn/eralearn-sub001/internal/domain/certificate"
	"github.com/Eduarjn/eralearn-sub001/internal/infrastructure/storage"
	"github.com/Eduarjn/eralearn-sub001/pkg/atomicfile"
)

// renderedFileNames mapeia o formato ao nome do artefato dentro do diretório
// do certificado
var renderedFileNames = map[certificate.Format]string{
	certificate.FormatSVG: "certificate.svg",
	certificate.FormatPNG: "certificate.png",
	certificate.FormatPDF: "certificate.pdf",
}

// FileManifestStore implementa a interface certificate.ManifestStore sobre o
// layout de diretórios de CERT_DATA_DIR
type FileManifestStore struct {
	config *storage.Config

	// indexMu serializa o ciclo de leitura e regravação do índice; o lock
	// por certificado não cobre gerações concorrentes de IDs distintos
	indexMu sync.Mutex
}

// NewFileManifestStore cria uma nova instância de FileManifestStore
func NewFileManifestStore(config *storage.Config) certificate.ManifestStore {
	return &FileManifestStore{config: config}
}

// SaveManifest implementa o método SaveManifest da interface ManifestStore
func (s *FileManifestStore) SaveManifest(ctx context.Context, m *certificate.Manifest) error {
	year, month := m.Shard()
	path := s.config.ManifestPath(year, month, m.ID)
	if err := atomicfile.WriteJSON(path, m); err != nil {
		return fmt.Errorf("falha ao gravar manifesto %s: %w", m.ID, err)
	}
	return nil
}

// FindByID implementa o método FindByID da interface ManifestStore. A busca
// varre os shards AAAA/MM do mais recente para o mais antigo; o custo é
// linear no número de shards, não no número de certificados.
func (s *FileManifestStore) FindByID(ctx context.Context, id string) (*certificate.Manifest, error) {
	path, err := s.findManifestPath(id)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, certificate.ErrNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler manifesto %s: %w", id, err)
	}
	var m certificate.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("falha ao interpretar manifesto %s: %w", id, err)
	}
	return &m, nil
}

// Exists implementa o método Exists da interface ManifestStore
func (s *FileManifestStore) Exists(ctx context.Context, id string) (bool, error) {
	path, err := s.findManifestPath(id)
	if err != nil {
		return false, err
	}
	return path != "", nil
}

// SaveRenderedSVG implementa o método SaveRenderedSVG da interface ManifestStore
func (s *FileManifestStore) SaveRenderedSVG(ctx context.Context, m *certificate.Manifest, content []byte) error {
	year, month := m.Shard()
	path := filepath.Join(s.config.FileDir(year, month, m.ID), renderedFileNames[certificate.FormatSVG])
	if err := atomicfile.WriteFile(path, content); err != nil {
		return fmt.Errorf("falha ao gravar SVG do certificado %s: %w", m.ID, err)
	}
	return nil
}

// ReadRenderedFile implementa o método ReadRenderedFile da interface
// ManifestStore. Formatos nunca produzidos (png/pdf sem conversão) resultam
// em ErrNotFound.
func (s *FileManifestStore) ReadRenderedFile(ctx context.Context, m *certificate.Manifest, format certificate.Format) ([]byte, error) {
	name, ok := renderedFileNames[format]
	if !ok {
		return nil, certificate.ErrInvalidFormat
	}
	year, month := m.Shard()
	data, err := os.ReadFile(filepath.Join(s.config.FileDir(year, month, m.ID), name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, certificate.ErrNotFound
		}
		return nil, fmt.Errorf("falha ao ler artefato do certificado %s: %w", m.ID, err)
	}
	return data, nil
}

// AppendIndex implementa o método AppendIndex da interface ManifestStore
func (s *FileManifestStore) AppendIndex(ctx context.Context, entry *certificate.IndexEntry) error {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()
	if err := atomicfile.AppendJSONLine(s.config.IndexPath(), entry); err != nil {
		return fmt.Errorf("falha ao acrescentar entrada ao índice: %w", err)
	}
	return nil
}

// ListIndex implementa o método ListIndex da interface ManifestStore
func (s *FileManifestStore) ListIndex(ctx context.Context, limit, offset int) ([]*certificate.IndexEntry, int, error) {
	f, err := os.Open(s.config.IndexPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*certificate.IndexEntry{}, 0, nil
		}
		return nil, 0, fmt.Errorf("falha ao abrir índice: %w", err)
	}
	defer f.Close()

	var entries []*certificate.IndexEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry certificate.IndexEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, 0, fmt.Errorf("falha ao interpretar linha do índice: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("falha ao ler índice: %w", err)
	}

	total := len(entries)
	if offset >= total {
		return []*certificate.IndexEntry{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return entries[offset:end], total, nil
}

// findManifestPath procura o manifesto do ID em todos os shards; retorna o
// caminho do primeiro encontrado (shards mais recentes primeiro) ou vazio
func (s *FileManifestStore) findManifestPath(id string) (string, error) {
	// IDs que não são um componente único de caminho nunca foram persistidos
	// e não podem virar caminho de busca
	if !certificate.ValidID(id) {
		return "", nil
	}
	root := s.config.ManifestsDir()
	years, err := readDirNames(root)
	if err != nil {
		return "", err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	for _, year := range years {
		months, err := readDirNames(filepath.Join(root, year))
		if err != nil {
			return "", err
		}
		sort.Sort(sort.Reverse(sort.StringSlice(months)))
		for _, month := range months {
			path := s.config.ManifestPath(year, month, id)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("falha ao verificar manifesto %s: %w", id, err)
			}
		}
	}
	return "", nil
}

// readDirNames lista os subdiretórios de dir; diretório ausente conta como
// vazio
func readDirNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao listar diretório %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

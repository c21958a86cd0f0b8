package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryBuiltinCatalog(t *testing.T) {
	registry := NewRegistry(t.TempDir())

	all := registry.All()
	assert.Len(t, all, 5)

	tmpl, ok := registry.Get("pabx_fundamentos")
	require.True(t, ok)
	assert.Equal(t, "Fundamentos de PABX", tmpl.Name)
	assert.Equal(t, "pabx_fundamentos.svg", tmpl.File)

	_, ok = registry.Get("inexistente")
	assert.False(t, ok)
}

func TestRegistrySource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pabx_fundamentos.svg"), []byte("<svg>{{NOME_COMPLETO}}</svg>"), 0o644))

	registry := NewRegistry(dir)

	source, err := registry.Source("pabx_fundamentos")
	require.NoError(t, err)
	assert.Contains(t, string(source), "{{NOME_COMPLETO}}")

	_, err = registry.Source("pabx_avancado")
	assert.Error(t, err)

	_, err = registry.Source("nao_registrado")
	assert.Error(t, err)
}

func TestLoadRegistryFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "templates.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`templates:
  - key: custom
    name: Modelo Personalizado
    file: custom.svg
`), 0o644))

	registry, err := LoadRegistryFile(dir, file)
	require.NoError(t, err)

	all := registry.All()
	require.Len(t, all, 1)
	assert.Equal(t, "custom", all[0].Key)
	assert.Equal(t, "Modelo Personalizado", all[0].Name)
}

func TestLoadRegistryFileRejectsEmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "templates.yaml")
	require.NoError(t, os.WriteFile(file, []byte("templates: []\n"), 0o644))

	_, err := LoadRegistryFile(dir, file)
	assert.Error(t, err)
}

func TestLoadRegistryFileRejectsIncompleteEntry(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "templates.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`templates:
  - key: sem_arquivo
    name: Sem Arquivo
`), 0o644))

	_, err := LoadRegistryFile(dir, file)
	assert.Error(t, err)
}

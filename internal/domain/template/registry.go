package template

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// builtinCatalog é o catálogo dos cinco modelos desta implantação
var builtinCatalog = []Template{
	{Key: "pabx_fundamentos", Name: "Fundamentos de PABX", File: "pabx_fundamentos.svg"},
	{Key: "pabx_avancado", Name: "PABX Avançado", File: "pabx_avancado.svg"},
	{Key: "omnichannel_empresas", Name: "OmniChannel para Empresas", File: "omnichannel_empresas.svg"},
	{Key: "omnichannel_avancado", Name: "OmniChannel Avançado", File: "omnichannel_avancado.svg"},
	{Key: "voip_configuracao", Name: "Configuração Avançada VoIP", File: "voip_configuracao.svg"},
}

// Registry mapeia chaves de modelo para seus arquivos SVG
type Registry struct {
	dir       string
	templates []Template
	byKey     map[string]Template
}

// NewRegistry cria um registro com o catálogo embutido, lendo os arquivos SVG
// do diretório informado
func NewRegistry(dir string) *Registry {
	return newRegistry(dir, builtinCatalog)
}

// LoadRegistryFile cria um registro a partir de um arquivo YAML, permitindo
// trocar a arte dos certificados sem recompilar o serviço
func LoadRegistryFile(dir, file string) (*Registry, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler arquivo de modelos %s: %w", file, err)
	}

	var catalog struct {
		Templates []Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("falha ao interpretar arquivo de modelos %s: %w", file, err)
	}
	if len(catalog.Templates) == 0 {
		return nil, fmt.Errorf("arquivo de modelos %s não define nenhum modelo", file)
	}
	for _, t := range catalog.Templates {
		if t.Key == "" || t.File == "" {
			return nil, fmt.Errorf("arquivo de modelos %s contém modelo sem chave ou arquivo", file)
		}
	}
	return newRegistry(dir, catalog.Templates), nil
}

func newRegistry(dir string, templates []Template) *Registry {
	byKey := make(map[string]Template, len(templates))
	for _, t := range templates {
		byKey[t.Key] = t
	}
	return &Registry{dir: dir, templates: templates, byKey: byKey}
}

// Get retorna o modelo da chave informada
func (r *Registry) Get(key string) (Template, bool) {
	t, ok := r.byKey[key]
	return t, ok
}

// All retorna todos os modelos na ordem do catálogo
func (r *Registry) All() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Source lê o conteúdo SVG do modelo da chave informada
func (r *Registry) Source(key string) ([]byte, error) {
	t, ok := r.byKey[key]
	if !ok {
		return nil, fmt.Errorf("modelo %q não está registrado", key)
	}
	data, err := os.ReadFile(filepath.Join(r.dir, t.File))
	if err != nil {
		return nil, fmt.Errorf("falha ao ler o modelo %s: %w", t.File, err)
	}
	return data, nil
}

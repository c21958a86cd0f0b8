package certificate

import (
	"context"
)

// ManifestStore define a interface para persistência e consulta de
// manifestos, artefatos renderizados e do índice compartilhado
type ManifestStore interface {
	// SaveManifest grava o manifesto no shard AAAA/MM derivado de createdAt
	SaveManifest(ctx context.Context, m *Manifest) error

	// FindByID busca um manifesto varrendo os shards; retorna ErrNotFound
	// quando nenhum shard contém o ID
	FindByID(ctx context.Context, id string) (*Manifest, error)

	// Exists verifica se já existe manifesto para o ID em qualquer shard.
	// O manifesto, não o SVG renderizado, é a fonte de verdade de existência.
	Exists(ctx context.Context, id string) (bool, error)

	// SaveRenderedSVG grava o SVG renderizado no diretório do certificado
	SaveRenderedSVG(ctx context.Context, m *Manifest, content []byte) error

	// ReadRenderedFile lê o artefato do certificado no formato pedido;
	// retorna ErrNotFound quando o formato nunca foi produzido
	ReadRenderedFile(ctx context.Context, m *Manifest, format Format) ([]byte, error)

	// AppendIndex acrescenta uma entrada ao índice JSONL compartilhado
	AppendIndex(ctx context.Context, entry *IndexEntry) error

	// ListIndex lista entradas do índice com paginação e retorna também o
	// total de entradas
	ListIndex(ctx context.Context, limit, offset int) ([]*IndexEntry, int, error)
}

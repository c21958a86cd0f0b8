package atomicfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile grava o conteúdo em um arquivo temporário no mesmo diretório e o
// renomeia para o destino. O rename é atômico no sistema de arquivos, então um
// leitor concorrente nunca observa um arquivo parcialmente escrito.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("falha ao criar arquivo temporário: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("falha ao escrever arquivo temporário: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("falha ao fechar arquivo temporário: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("falha ao renomear arquivo temporário: %w", err)
	}
	return nil
}

// WriteJSON serializa o valor com indentação e grava via WriteFile
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("falha ao serializar JSON: %w", err)
	}
	return WriteFile(path, append(data, '\n'))
}

// AppendJSONLine lê o arquivo JSONL existente (arquivo ausente conta como
// vazio), acrescenta uma linha com o registro serializado e regrava o
// resultado completo via WriteFile. O custo é O(tamanho do arquivo) por
// chamada, aceitável no volume esperado de certificados.
func AppendJSONLine(path string, record any) error {
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("falha ao serializar registro JSONL: %w", err)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("falha ao ler índice existente: %w", err)
	}
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		existing = append(existing, '\n')
	}

	content := append(existing, line...)
	content = append(content, '\n')
	return WriteFile(path, content)
}

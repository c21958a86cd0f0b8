package lock

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// lockRecord é o conteúdo gravado no arquivo de lock
type lockRecord struct {
	AcquiredAt time.Time `json:"acquiredAt"`
	TTLMillis  int64     `json:"ttlMillis"`
}

// FileLocker implementa Locker com um arquivo por ID em um diretório
// compartilhado. Funciona entre processos que compartilham o mesmo sistema de
// arquivos; não oferece garantia entre hosts.
type FileLocker struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewFileLocker cria um FileLocker com o diretório de locks e o TTL de
// recuperação de locks abandonados
func NewFileLocker(dir string, ttl time.Duration) *FileLocker {
	return &FileLocker{dir: dir, ttl: ttl, now: time.Now}
}

// Acquire tenta criar o arquivo de lock. Se o arquivo já existe e o TTL do
// registro expirou, o lock é considerado abandonado: é removido e a criação é
// tentada mais uma vez. Caso contrário retorna false.
func (l *FileLocker) Acquire(id string) (bool, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return false, fmt.Errorf("falha ao criar diretório de locks: %w", err)
	}

	path := l.path(id)
	ok, err := l.tryCreate(path)
	if err != nil || ok {
		return ok, err
	}

	expired, err := l.isExpired(path)
	if err != nil {
		return false, err
	}
	if !expired {
		return false, nil
	}

	// lock abandonado: remove e tenta criar uma única vez
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("falha ao remover lock expirado: %w", err)
	}
	return l.tryCreate(path)
}

// Release remove o arquivo de lock; arquivo inexistente é estado terminal
// válido
func (l *FileLocker) Release(id string) error {
	if err := os.Remove(l.path(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("falha ao liberar lock: %w", err)
	}
	return nil
}

func (l *FileLocker) path(id string) string {
	return filepath.Join(l.dir, id+".lock")
}

func (l *FileLocker) tryCreate(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("falha ao criar arquivo de lock: %w", err)
	}
	record := lockRecord{AcquiredAt: l.now(), TTLMillis: l.ttl.Milliseconds()}
	data, err := json.Marshal(record)
	if err == nil {
		_, err = f.Write(data)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return false, fmt.Errorf("falha ao gravar arquivo de lock: %w", err)
	}
	return true, nil
}

func (l *FileLocker) isExpired(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// liberado entre a tentativa de criação e a leitura
			return true, nil
		}
		return false, fmt.Errorf("falha ao ler arquivo de lock: %w", err)
	}

	var record lockRecord
	if err := json.Unmarshal(data, &record); err != nil {
		// registro ilegível conta como abandonado
		return true, nil
	}
	ttl := time.Duration(record.TTLMillis) * time.Millisecond
	return l.now().Sub(record.AcquiredAt) > ttl, nil
}

package lock

import (
	"sync"
	"time"
)

// MemoryLocker implementa Locker em memória para implantações de processo
// único. Mantém o mesmo contrato de TTL do FileLocker para que locks de
// requisições abortadas não fiquem presos para sempre.
type MemoryLocker struct {
	mu   sync.Mutex
	ttl  time.Duration
	held map[string]time.Time
	now  func() time.Time
}

// NewMemoryLocker cria um MemoryLocker com o TTL informado
func NewMemoryLocker(ttl time.Duration) *MemoryLocker {
	return &MemoryLocker{
		ttl:  ttl,
		held: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Acquire tenta obter o lock do ID; locks cujo TTL expirou são recuperados
func (l *MemoryLocker) Acquire(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if acquiredAt, ok := l.held[id]; ok {
		if l.now().Sub(acquiredAt) <= l.ttl {
			return false, nil
		}
	}
	l.held[id] = l.now()
	return true, nil
}

// Release libera o lock do ID; liberar um lock não mantido é um no-op
func (l *MemoryLocker) Release(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, id)
	return nil
}

package lock

// Locker é a primitiva de exclusão mútua por certificado usada durante a
// geração. Acquire é não-bloqueante: quando o lock já está em uso retorna
// false e o chamador deve tratar como sinal transitório de "tente novamente".
type Locker interface {
	// Acquire tenta obter o lock do ID informado
	Acquire(id string) (bool, error)

	// Release libera o lock do ID; liberar um lock inexistente não é erro
	Release(id string) error
}

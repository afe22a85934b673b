package auth

import (
	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// Costo fijo de bcrypt; la sal aleatoria hace que dos hashes del mismo
// password nunca coincidan.
const bcryptCost = 10

// Profundidad del historial de contraseñas contra el que se rechaza la
// reutilización.
const passwordHistoryDepth = 5

// HashPassword hashea una contraseña con bcrypt. Contraseña vacía es
// ErrInvalidInput.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compara contraseña y hash. Nunca retorna error: entrada
// vacía o hash ausente es simplemente false.
func VerifyPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsReused reporta si candidate coincide con alguno de los últimos 5 hashes
// del historial. El historial llega en orden de inserción (más viejo
// primero).
func IsReused(candidate string, history []entity.PasswordHistoryEntry) bool {
	start := 0
	if len(history) > passwordHistoryDepth {
		start = len(history) - passwordHistoryDepth
	}
	for _, h := range history[start:] {
		if VerifyPassword(candidate, h.PasswordHash) {
			return true
		}
	}
	return false
}

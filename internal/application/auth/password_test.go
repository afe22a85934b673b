package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
)

func TestHashPassword_VerificaSuPropioHash(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("secreto123", hash),
		"la contraseña debe verificar contra su propio hash")
	assert.False(t, VerifyPassword("otra-cosa", hash),
		"una contraseña distinta no debe verificar")
}

func TestHashPassword_SalAleatoria_HashesDistintos(t *testing.T) {
	h1, err := HashPassword("secreto123")
	require.NoError(t, err)
	h2, err := HashPassword("secreto123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2,
		"dos hashes de la misma contraseña deben diferir por la sal")
	assert.True(t, VerifyPassword("secreto123", h1))
	assert.True(t, VerifyPassword("secreto123", h2))
}

func TestHashPassword_Vacia_RetornaError(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVerifyPassword_EntradasVacias_False(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("secreto123", ""))
	assert.False(t, VerifyPassword("", ""))
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestIsReused_DetectaUltimasCinco(t *testing.T) {
	var history []entity.PasswordHistoryEntry
	for _, p := range []string{"pass1", "pass2", "pass3", "pass4", "pass5"} {
		history = append(history, entity.PasswordHistoryEntry{UserID: "1", PasswordHash: mustHash(t, p)})
	}

	for _, p := range []string{"pass1", "pass2", "pass3", "pass4", "pass5"} {
		assert.True(t, IsReused(p, history), "la contraseña %s está en el historial", p)
	}
	assert.False(t, IsReused("pass6", history),
		"una contraseña nunca usada no debe reportarse como reutilizada")
}

func TestIsReused_SextaMasVieja_SeAcepta(t *testing.T) {
	// Con 6 entradas, solo cuentan las últimas 5: la primera vuelve a estar
	// disponible.
	var history []entity.PasswordHistoryEntry
	for _, p := range []string{"pass1", "pass2", "pass3", "pass4", "pass5", "pass6"} {
		history = append(history, entity.PasswordHistoryEntry{UserID: "1", PasswordHash: mustHash(t, p)})
	}

	assert.False(t, IsReused("pass1", history),
		"la sexta contraseña más vieja queda fuera de la ventana de 5")
	assert.True(t, IsReused("pass6", history))
}

func TestIsReused_HistorialVacio_False(t *testing.T) {
	assert.False(t, IsReused("cualquiera", nil))
}

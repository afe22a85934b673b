package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

func newTestActivity() (*ActivityLog, *fakeClock, localstore.Store) {
	store := localstore.NewMemory()
	clock := newFakeClock()
	l := NewActivityLog(store)
	l.now = clock.Now
	return l, clock, store
}

func TestActivity_SinSesion_IPyUADesconocidos(t *testing.T) {
	l, _, _ := newTestActivity()

	require.NoError(t, l.Append("user-1", entity.ActionPasswordChange, "detalle"))

	logs, err := l.Query("")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "unknown", logs[0].IPAddress)
	assert.Equal(t, "unknown", logs[0].UserAgent)
}

func TestActivity_ConSesionVigente_TomaIPyUA(t *testing.T) {
	l, clock, store := newTestActivity()
	require.NoError(t, localstore.WriteOne(store, localstore.BucketSession, entity.Session{
		UserID:    "user-1",
		Token:     "tok",
		ExpiresAt: clock.Now().Add(time.Hour),
		IPAddress: "10.0.0.9",
		UserAgent: "agente-test",
	}))

	require.NoError(t, l.Append("user-1", entity.ActionPasswordChange, "detalle"))

	logs, err := l.Query("user-1")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "10.0.0.9", logs[0].IPAddress)
	assert.Equal(t, "agente-test", logs[0].UserAgent)
}

func TestActivity_SesionExpirada_IPDesconocida(t *testing.T) {
	l, clock, store := newTestActivity()
	require.NoError(t, localstore.WriteOne(store, localstore.BucketSession, entity.Session{
		UserID:    "user-1",
		ExpiresAt: clock.Now().Add(-time.Minute),
		IPAddress: "10.0.0.9",
	}))

	require.NoError(t, l.Append("user-1", entity.ActionPasswordChange, "detalle"))

	logs, err := l.Query("")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "unknown", logs[0].IPAddress,
		"una sesión vencida no aporta IP ni user agent")
}

func TestActivity_Query_FiltraPorUsuario(t *testing.T) {
	l, _, _ := newTestActivity()
	require.NoError(t, l.Append("user-1", entity.ActionUserUpdate, "a"))
	require.NoError(t, l.Append("user-2", entity.ActionUserUpdate, "b"))
	require.NoError(t, l.Append("user-1", entity.ActionUserDelete, "c"))

	all, err := l.Query("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	own, err := l.Query("user-1")
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "a", own[0].Details)
	assert.Equal(t, "c", own[1].Details, "el filtro preserva el orden de inserción")
}

func TestActivity_TopeFIFO_MilEntradas(t *testing.T) {
	l, _, _ := newTestActivity()

	for i := 0; i < 1005; i++ {
		require.NoError(t, l.Append("user-1", entity.ActionUserUpdate, fmt.Sprintf("entrada-%d", i)))
	}

	logs, err := l.Query("")
	require.NoError(t, err)
	require.Len(t, logs, 1000, "el log se recorta a 1000 descartando lo más viejo")
	assert.Equal(t, "entrada-5", logs[0].Details)
	assert.Equal(t, "entrada-1004", logs[999].Details)
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/licorera-pos/internal/application/dto"
	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
	"github.com/tu-usuario/licorera-pos/pkg/token"
)

const testJWTSecret = "secret-solo-para-tests"

type authFixture struct {
	uc    *AuthUseCase
	clock *fakeClock
	store localstore.Store
}

// newAuthFixture arma el caso de uso completo sobre un store en memoria con
// reloj simulado compartido por todos los componentes.
func newAuthFixture(t *testing.T, users ...entity.User) *authFixture {
	t.Helper()
	store := localstore.NewMemory()
	clock := newFakeClock()

	activity := NewActivityLog(store)
	activity.now = clock.Now
	sessions := NewSessionManager(store, activity)
	sessions.now = clock.Now
	throttle := NewThrottle(store)
	throttle.now = clock.Now

	uc := NewAuthUseCase(store, throttle, sessions, activity, JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 480,
		Issuer:     "licorera-pos-test",
	})
	uc.now = clock.Now

	require.NoError(t, localstore.WriteList(store, localstore.BucketUsers, users))
	return &authFixture{uc: uc, clock: clock, store: store}
}

func testUser(t *testing.T, id, email, role, password string) entity.User {
	t.Helper()
	return entity.User{
		ID:           id,
		Email:        email,
		Name:         "Usuario " + id,
		Role:         role,
		PasswordHash: mustHash(t, password),
		Status:       entity.StatusActive,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLogin_Exitoso(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))

	out, err := f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "admin123"}, "10.0.0.5", "test-agent")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "admin@licorera.local", out.User.Email)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	// El JWT de transporte envuelve el token opaco de la sesión activa.
	_, role, sessionToken, err := token.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)

	session, err := f.uc.Sessions().Current()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, sessionToken, session.Token)
	assert.Equal(t, "1", session.UserID)

	// El usuario actual queda persistido sin hash.
	current, err := localstore.ReadOne[entity.User](f.store, localstore.BucketCurrentUser)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Empty(t, current.PasswordHash, "el hash nunca se persiste en current_user")
}

func TestLogin_EmailDesconocido_MensajeGenerico(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))

	_, err := f.uc.Login(dto.LoginRequest{Email: "nadie@licorera.local", Password: "lo-que-sea"}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"un email inexistente responde igual que una contraseña mala")

	// El intento fallido cuenta para el throttle.
	failures, err := f.uc.throttle.RecentFailures("nadie@licorera.local")
	require.NoError(t, err)
	assert.Equal(t, 1, failures)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))

	_, err := f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "incorrecta"}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid email or password")
}

func TestLogin_CuentaSuspendida(t *testing.T) {
	user := testUser(t, "1", "vendedor@licorera.local", entity.RoleVendedor, "ventas123")
	user.Status = entity.StatusSuspended
	f := newAuthFixture(t, user)

	_, err := f.uc.Login(dto.LoginRequest{Email: "vendedor@licorera.local", Password: "ventas123"}, "", "")
	assert.ErrorIs(t, err, domain.ErrAccountSuspended)

	// El rechazo por suspensión no cuenta como intento fallido.
	failures, ferr := f.uc.throttle.RecentFailures("vendedor@licorera.local")
	require.NoError(t, ferr)
	assert.Equal(t, 0, failures)
}

func TestLogin_Bootstrap_FijaPrimeraPassword(t *testing.T) {
	user := testUser(t, "1", "nuevo@licorera.local", entity.RoleVendedor, "x")
	user.PasswordHash = "" // cuenta sin credencial
	f := newAuthFixture(t, user)

	out, err := f.uc.Login(dto.LoginRequest{Email: "nuevo@licorera.local", Password: "primera123"}, "", "")
	require.NoError(t, err, "una cuenta bootstrap acepta la primera contraseña presentada")
	require.NotNil(t, out)

	// La contraseña quedó fijada: la misma entra, otra no.
	require.NoError(t, f.uc.Logout())
	_, err = f.uc.Login(dto.LoginRequest{Email: "nuevo@licorera.local", Password: "otra456"}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.uc.Login(dto.LoginRequest{Email: "nuevo@licorera.local", Password: "primera123"}, "", "")
	assert.NoError(t, err)
}

func TestLogin_Bloqueo_InclusoConPasswordCorrecta(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))

	for i := 0; i < 5; i++ {
		_, err := f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "mala"}, "", "")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}

	_, err := f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "admin123"}, "", "")
	require.Error(t, err)
	assert.True(t, domain.IsTooManyAttempts(err),
		"bloqueado, ni la contraseña correcta entra")

	// Vencida la ventana el login correcto vuelve a funcionar.
	f.clock.Advance(31 * time.Minute)
	_, err = f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "admin123"}, "", "")
	assert.NoError(t, err)
}

func TestLogin_CuatroFallos_TodaviaEntra(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))

	for i := 0; i < 4; i++ {
		_, err := f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "mala"}, "", "")
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}
	_, err := f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "admin123"}, "", "")
	assert.NoError(t, err, "con 4 fallos el quinto intento correcto entra")
}

func TestLogout_BorraSesionYUsuarioActual(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))
	_, err := f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "admin123"}, "", "")
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout())

	session, err := f.uc.Sessions().Current()
	require.NoError(t, err)
	assert.Nil(t, session)
	current, err := localstore.ReadOne[entity.User](f.store, localstore.BucketCurrentUser)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestChangePassword_Exitoso_InvalidaSesion(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))
	_, err := f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "admin123"}, "", "")
	require.NoError(t, err)

	require.NoError(t, f.uc.ChangePassword("1", "admin123", "nueva456"))

	// La sesión se invalida para forzar re-autenticación.
	session, err := f.uc.Sessions().Current()
	require.NoError(t, err)
	assert.Nil(t, session)

	// La nueva contraseña entra, la vieja no.
	_, err = f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "admin123"}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "nueva456"}, "", "")
	assert.NoError(t, err)
}

func TestChangePassword_ActualIncorrecta(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))

	err := f.uc.ChangePassword("1", "equivocada", "nueva456")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestChangePassword_RechazaUltimasCinco(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "pass0"))

	// Encadenar 5 cambios: pass0 → pass1 → ... → pass5.
	previous := "pass0"
	for _, next := range []string{"pass1", "pass2", "pass3", "pass4", "pass5"} {
		require.NoError(t, f.uc.ChangePassword("1", previous, next))
		previous = next
	}

	// Cualquiera de las últimas 5 se rechaza.
	for _, reused := range []string{"pass1", "pass2", "pass3", "pass4", "pass5"} {
		err := f.uc.ChangePassword("1", "pass5", reused)
		assert.ErrorIs(t, err, domain.ErrPasswordReused, "la contraseña %s está en el historial", reused)
	}
}

func TestChangePassword_SextaMasVieja_SeAcepta(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "pass0"))

	previous := "pass0"
	for _, next := range []string{"pass1", "pass2", "pass3", "pass4", "pass5", "pass6"} {
		require.NoError(t, f.uc.ChangePassword("1", previous, next))
		previous = next
	}

	// pass1 quedó fuera de la ventana de 5 (la cubren pass2..pass6).
	assert.NoError(t, f.uc.ChangePassword("1", "pass6", "pass1"),
		"una contraseña más vieja que las últimas 5 vuelve a ser válida")
}

func TestChangePassword_RegistraActividad(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))

	require.NoError(t, f.uc.ChangePassword("1", "admin123", "nueva456"))

	logs, err := f.uc.Activity().Query("1")
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, entity.ActionPasswordChange, logs[len(logs)-1].Action)
}

func TestAdminReset_SoloAdmins(t *testing.T) {
	f := newAuthFixture(t,
		testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"),
		testUser(t, "2", "ventas@licorera.local", entity.RoleVendedor, "ventas123"),
		testUser(t, "3", "bodega@licorera.local", entity.RoleBodeguero, "bodega123"),
	)

	err := f.uc.AdminResetPassword("2", "3", "nueva123")
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.EqualError(t, err, "Only admins can reset passwords")
}

func TestAdminReset_NoPuedeResetearOtroAdmin(t *testing.T) {
	f := newAuthFixture(t,
		testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"),
		testUser(t, "2", "admin2@licorera.local", entity.RoleAdmin, "admin456"),
	)

	err := f.uc.AdminResetPassword("1", "2", "nueva123")
	require.ErrorIs(t, err, domain.ErrCannotResetAdmin)
	assert.EqualError(t, err, "Cannot reset another admin password")
}

func TestAdminReset_PasswordCorta(t *testing.T) {
	f := newAuthFixture(t,
		testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"),
		testUser(t, "2", "ventas@licorera.local", entity.RoleVendedor, "ventas123"),
	)

	err := f.uc.AdminResetPassword("1", "2", "corta")
	require.ErrorIs(t, err, domain.ErrWeakPassword)
	assert.EqualError(t, err, "Password must be at least 6 characters long")
}

func TestAdminReset_TargetInexistente(t *testing.T) {
	f := newAuthFixture(t, testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"))

	err := f.uc.AdminResetPassword("1", "99", "nueva123")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAdminReset_Exitoso(t *testing.T) {
	f := newAuthFixture(t,
		testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"),
		testUser(t, "2", "ventas@licorera.local", entity.RoleVendedor, "vieja123"),
	)

	require.NoError(t, f.uc.AdminResetPassword("1", "2", "newpass123"))

	// La credencial vieja deja de funcionar y la nueva entra.
	_, err := f.uc.Login(dto.LoginRequest{Email: "ventas@licorera.local", Password: "vieja123"}, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = f.uc.Login(dto.LoginRequest{Email: "ventas@licorera.local", Password: "newpass123"}, "", "")
	assert.NoError(t, err)

	// El hash almacenado nunca es la contraseña literal.
	users, err := localstore.ReadList[entity.User](f.store, localstore.BucketUsers)
	require.NoError(t, err)
	for _, u := range users {
		if u.ID == "2" {
			assert.NotEqual(t, "newpass123", u.PasswordHash)
		}
	}

	// Queda en el log de auditoría con ambos emails.
	logs, err := f.uc.Activity().Query("1")
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	last := logs[len(logs)-1]
	assert.Equal(t, entity.ActionAdminResetPassword, last.Action)
	assert.Contains(t, last.Details, "admin@licorera.local")
	assert.Contains(t, last.Details, "ventas@licorera.local")
}

func TestAdminReset_InvalidaSesionDelTarget(t *testing.T) {
	f := newAuthFixture(t,
		testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"),
		testUser(t, "2", "ventas@licorera.local", entity.RoleVendedor, "vieja123"),
	)
	// El target tiene la sesión activa (modelo de sesión única).
	_, err := f.uc.Login(dto.LoginRequest{Email: "ventas@licorera.local", Password: "vieja123"}, "", "")
	require.NoError(t, err)

	require.NoError(t, f.uc.AdminResetPassword("1", "2", "newpass123"))

	session, err := f.uc.Sessions().Current()
	require.NoError(t, err)
	assert.Nil(t, session, "la sesión del target se invalida al resetear su contraseña")
}

func TestAdminReset_NoTocaSesionAjena(t *testing.T) {
	f := newAuthFixture(t,
		testUser(t, "1", "admin@licorera.local", entity.RoleAdmin, "admin123"),
		testUser(t, "2", "ventas@licorera.local", entity.RoleVendedor, "vieja123"),
	)
	// La sesión activa es la del admin, no la del target.
	_, err := f.uc.Login(dto.LoginRequest{Email: "admin@licorera.local", Password: "admin123"}, "", "")
	require.NoError(t, err)

	require.NoError(t, f.uc.AdminResetPassword("1", "2", "newpass123"))

	session, err := f.uc.Sessions().Current()
	require.NoError(t, err)
	require.NotNil(t, session, "la sesión del admin sobrevive al reseteo de otro usuario")
	assert.Equal(t, "1", session.UserID)
}

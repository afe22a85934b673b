package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// Expiración absoluta de la sesión desde su creación.
const sessionTTL = 8 * time.Hour

// Valor centinela cuando no se puede determinar la dirección del cliente.
const localAddress = "local"

// SessionManager administra la sesión única activa: creación, lectura con
// expiración perezosa y limpieza.
type SessionManager struct {
	store    localstore.Store
	activity *ActivityLog
	now      func() time.Time
	newToken func() string
}

// NewSessionManager construye el manager sobre el store inyectado.
func NewSessionManager(store localstore.Store, activity *ActivityLog) *SessionManager {
	return &SessionManager{
		store:    store,
		activity: activity,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// Create emite una sesión nueva con token opaco y expiración now+8h,
// reemplazando cualquier sesión previa (modelo de sesión única), y registra
// SESSION_CREATE en el log de actividad.
func (m *SessionManager) Create(userID, ipAddress, userAgent string) (*entity.Session, error) {
	if ipAddress == "" {
		ipAddress = localAddress
	}
	now := m.now()
	session := entity.Session{
		UserID:       userID,
		Token:        m.newToken(),
		ExpiresAt:    now.Add(sessionTTL),
		LastActivity: now,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}
	if err := localstore.WriteOne(m.store, localstore.BucketSession, session); err != nil {
		return nil, err
	}
	if err := m.activity.Append(userID, entity.ActionSessionCreate, fmt.Sprintf("New session created from %s", ipAddress)); err != nil {
		return nil, err
	}
	return &session, nil
}

// Current devuelve la sesión vigente, o nil si no hay o ya expiró. La
// expiración es perezosa: una sesión vencida se borra en esta lectura. Cada
// lectura exitosa actualiza LastActivity.
func (m *SessionManager) Current() (*entity.Session, error) {
	session, err := localstore.ReadOne[entity.Session](m.store, localstore.BucketSession)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if m.now().After(session.ExpiresAt) {
		if err := m.store.Remove(localstore.BucketSession); err != nil {
			return nil, err
		}
		return nil, nil
	}
	session.LastActivity = m.now()
	if err := localstore.WriteOne(m.store, localstore.BucketSession, *session); err != nil {
		return nil, err
	}
	return session, nil
}

// Clear borra la sesión y el puntero de usuario actual juntos: después de
// la llamada no queda ninguno de los dos.
func (m *SessionManager) Clear() error {
	if err := m.store.Remove(localstore.BucketSession); err != nil {
		return err
	}
	return m.store.Remove(localstore.BucketCurrentUser)
}

// Invalidate borra solo la sesión, dejando el puntero de usuario actual.
// Lo usa el reseteo administrativo cuando el target tiene la sesión activa.
func (m *SessionManager) Invalidate() error {
	return m.store.Remove(localstore.BucketSession)
}

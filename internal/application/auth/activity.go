package auth

import (
	"time"

	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// Tope del log de actividad; al superarlo se descarta la entrada más vieja
// (FIFO).
const maxActivityEntries = 1000

// ActivityLog log de auditoría append-only sobre el bucket activity_log.
type ActivityLog struct {
	store localstore.Store
	now   func() time.Time
}

// NewActivityLog construye el log sobre el store inyectado.
func NewActivityLog(store localstore.Store) *ActivityLog {
	return &ActivityLog{store: store, now: time.Now}
}

// Append agrega una entrada. IP y user agent se resuelven de la sesión
// vigente; sin sesión quedan en "unknown".
func (l *ActivityLog) Append(userID, action, details string) error {
	ip, ua := "unknown", "unknown"
	if session, err := localstore.ReadOne[entity.Session](l.store, localstore.BucketSession); err == nil && session != nil {
		if l.now().Before(session.ExpiresAt) || l.now().Equal(session.ExpiresAt) {
			ip, ua = session.IPAddress, session.UserAgent
		}
	}

	logs, err := localstore.ReadList[entity.ActivityLogEntry](l.store, localstore.BucketActivityLog)
	if err != nil {
		return err
	}
	logs = append(logs, entity.ActivityLogEntry{
		Timestamp: l.now(),
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
		UserAgent: ua,
	})
	if len(logs) > maxActivityEntries {
		logs = logs[len(logs)-maxActivityEntries:]
	}
	return localstore.WriteList(l.store, localstore.BucketActivityLog, logs)
}

// Query devuelve las entradas en orden de inserción; con userID vacío
// devuelve todas.
func (l *ActivityLog) Query(userID string) ([]entity.ActivityLogEntry, error) {
	logs, err := localstore.ReadList[entity.ActivityLogEntry](l.store, localstore.BucketActivityLog)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return logs, nil
	}
	var filtered []entity.ActivityLogEntry
	for _, e := range logs {
		if e.UserID == userID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

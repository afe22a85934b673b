package auth

import (
	"time"

	"github.com/tu-usuario/licorera-pos/internal/domain"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

const (
	// Ventana deslizante sobre la que cuentan los intentos fallidos.
	attemptWindow = 30 * time.Minute
	// Fallos dentro de la ventana a partir de los cuales se bloquea.
	maxFailures = 5
	// Tope global de intentos retenidos (se descarta el más viejo).
	maxAttempts = 100
)

// Throttle registra intentos de login y aplica el bloqueo por fallos
// repetidos. El estado vive en el bucket login_attempts del store local.
type Throttle struct {
	store localstore.Store
	now   func() time.Time
}

// NewThrottle construye el throttle sobre el store inyectado.
func NewThrottle(store localstore.Store) *Throttle {
	return &Throttle{store: store, now: time.Now}
}

// RecordAttempt agrega un intento y recorta la lista global a los últimos
// 100.
func (t *Throttle) RecordAttempt(email string, successful bool) error {
	attempts, err := localstore.ReadList[entity.LoginAttempt](t.store, localstore.BucketLoginAttempts)
	if err != nil {
		return err
	}
	attempts = append(attempts, entity.LoginAttempt{
		Email:      email,
		Timestamp:  t.now(),
		Successful: successful,
	})
	if len(attempts) > maxAttempts {
		attempts = attempts[len(attempts)-maxAttempts:]
	}
	return localstore.WriteList(t.store, localstore.BucketLoginAttempts, attempts)
}

// RecentFailures cuenta los fallos de email dentro de la ventana.
func (t *Throttle) RecentFailures(email string) (int, error) {
	recent, err := t.recentAttempts(email)
	if err != nil {
		return 0, err
	}
	failures := 0
	for _, a := range recent {
		if !a.Successful {
			failures++
		}
	}
	return failures, nil
}

// Check retorna TooManyAttemptsError si email superó el límite de fallos.
// Es una compuerta: consultarla no cuenta como intento.
func (t *Throttle) Check(email string) error {
	recent, err := t.recentAttempts(email)
	if err != nil {
		return err
	}
	failures := 0
	for _, a := range recent {
		if !a.Successful {
			failures++
		}
	}
	if failures < maxFailures {
		return nil
	}
	last := recent[len(recent)-1]
	remaining := attemptWindow - t.now().Sub(last.Timestamp)
	minutes := int((remaining + time.Minute - 1) / time.Minute) // redondeo hacia arriba
	if minutes < 0 {
		minutes = 0
	}
	return &domain.TooManyAttemptsError{Minutes: minutes}
}

// recentAttempts devuelve los intentos de email dentro de la ventana, en
// orden de inserción.
func (t *Throttle) recentAttempts(email string) ([]entity.LoginAttempt, error) {
	attempts, err := localstore.ReadList[entity.LoginAttempt](t.store, localstore.BucketLoginAttempts)
	if err != nil {
		return nil, err
	}
	now := t.now()
	var recent []entity.LoginAttempt
	for _, a := range attempts {
		if a.Email == email && now.Sub(a.Timestamp) < attemptWindow {
			recent = append(recent, a)
		}
	}
	return recent, nil
}

package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los mensajes de seguridad
// visibles al usuario se mantienen en inglés porque el dashboard los muestra
// tal cual.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrAccountSuspended   = errors.New("This account has been suspended. Please contact the administrator.")
	ErrUserNotFound       = errors.New("User not found")
	ErrEmailAlreadyExists = errors.New("A user with that email already exists")
	ErrPasswordReused     = errors.New("New password cannot be the same as any of your last 5 passwords")
	ErrWeakPassword       = errors.New("Password must be at least 6 characters long")
	ErrForbidden          = errors.New("Only admins can reset passwords")
	ErrCannotResetAdmin   = errors.New("Cannot reset another admin password")
	ErrNotFound           = errors.New("recurso no encontrado")
)

// TooManyAttemptsError bloqueo temporal por intentos fallidos. Minutes es el
// tiempo restante de bloqueo, redondeado hacia arriba.
type TooManyAttemptsError struct {
	Minutes int
}

func (e *TooManyAttemptsError) Error() string {
	return fmt.Sprintf("Too many failed attempts. Please try again in %d minutes.", e.Minutes)
}

// IsTooManyAttempts reporta si err es un bloqueo del throttle.
func IsTooManyAttempts(err error) bool {
	var e *TooManyAttemptsError
	return errors.As(err, &e)
}

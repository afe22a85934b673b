package entity

import "time"

// LoginAttempt intento de login registrado por el throttle.
type LoginAttempt struct {
	Email      string    `json:"email"`
	Timestamp  time.Time `json:"timestamp"`
	Successful bool      `json:"successful"`
}

// Acciones registradas en el log de actividad.
const (
	ActionSessionCreate      = "SESSION_CREATE"
	ActionPasswordChange     = "PASSWORD_CHANGE"
	ActionAdminResetPassword = "ADMIN_RESET_PASSWORD"
	ActionUserCreate         = "USER_CREATE"
	ActionUserUpdate         = "USER_UPDATE"
	ActionUserDelete         = "USER_DELETE"
	ActionUserStatusChange   = "USER_STATUS_CHANGE"
)

// ActivityLogEntry entrada append-only del log de auditoría.
type ActivityLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
}

// PasswordHistoryEntry hash histórico de contraseña; solo se usa para
// rechazar reutilización, nunca para autenticar.
type PasswordHistoryEntry struct {
	UserID       string    `json:"userId"`
	PasswordHash string    `json:"password"`
	ChangedAt    time.Time `json:"changedAt"`
}

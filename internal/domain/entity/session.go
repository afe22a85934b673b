package entity

import "time"

// Session sesión única activa del sistema (modelo de sesión simple: una
// sola sesión viva a la vez, reemplazada en cada login).
type Session struct {
	UserID       string    `json:"userId"`
	Token        string    `json:"token"` // opaco, aleatorio
	ExpiresAt    time.Time `json:"expiresAt"`
	LastActivity time.Time `json:"lastActivity"`
	IPAddress    string    `json:"ipAddress"`
	UserAgent    string    `json:"userAgent"`
}

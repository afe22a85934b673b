package entity

import "time"

// Roles válidos para User. admin administra el local, bodeguero maneja
// inventario y asignaciones, vendedor opera el punto de venta.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// Estados de ciclo de vida de la cuenta.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusFrozen    = "frozen"
)

// User usuario del sistema. PasswordHash vacío significa cuenta en estado
// bootstrap: el primer login fija la contraseña.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"` // admin, bodeguero, vendedor
	PasswordHash string    `json:"password,omitempty"`
	Status       string    `json:"status"` // active, suspended, frozen
	CreatedAt    time.Time `json:"createdAt"`
}

// Sanitized devuelve una copia sin el hash de contraseña.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

package sync

// Durability nivel de durabilidad alcanzado por una operación del shim.
// LocalFallback no es un fallo: la acción del usuario se completó, pero
// quedó persistida solo en el store local.
type Durability string

const (
	Remote        Durability = "remote"
	LocalFallback Durability = "local"
)

// IsRemote reporta si la operación quedó confirmada por el espejo remoto.
func (d Durability) IsRemote() bool { return d == Remote }

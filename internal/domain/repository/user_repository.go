package repository

import (
	"context"

	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
)

// UserRepository puerto del almacén remoto de usuarios. El shim solo lo usa
// para listar vendedores; la autenticación siempre trabaja contra el store
// local.
type UserRepository interface {
	FetchByRole(ctx context.Context, role string) ([]entity.User, error)
}

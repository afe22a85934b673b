package sync

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/tu-usuario/licorera-pos/internal/domain/repository"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// Repos adaptadores remotos del shim. Cualquiera puede ser nil: esa entidad
// opera entonces solo contra el store local (arranque sin conectividad).
type Repos struct {
	Products    repository.ProductRepository
	Sales       repository.SaleRepository
	Assignments repository.AssignmentRepository
	Users       repository.UserRepository
}

// Service shim de datos local/remoto: intenta primero el espejo remoto y,
// ante cualquier fallo, cae en silencio al store local reportando
// LocalFallback. No hay reconciliación posterior: la durabilidad local es
// el contrato (ver DESIGN.md).
type Service struct {
	repos   Repos
	store   localstore.Store
	log     zerolog.Logger
	timeout time.Duration
}

// NewService construye el shim. timeout acota cada intento remoto para que
// un remoto colgado no retrase el fallback indefinidamente.
func NewService(repos Repos, store localstore.Store, log zerolog.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{repos: repos, store: store, log: log, timeout: timeout}
}

// write intenta la escritura remota y cae a la local. La escritura local
// solo ocurre en el fallback: un remoto exitoso no toca el store local.
func (s *Service) write(ctx context.Context, entityName, op string, remote func(context.Context) error, local func() error) (Durability, error) {
	if remote != nil {
		rctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := remote(rctx)
		cancel()
		if err == nil {
			return Remote, nil
		}
		s.log.Warn().Err(err).Str("entity", entityName).Str("op", op).
			Msg("remoto falló, escribiendo solo en store local")
	}
	if err := local(); err != nil {
		return LocalFallback, err
	}
	return LocalFallback, nil
}

// fetch intenta la lectura remota y cae a la copia local.
func fetch[T any](ctx context.Context, s *Service, entityName string, remote func(context.Context) ([]T, error), local func() ([]T, error)) ([]T, Durability, error) {
	if remote != nil {
		rctx, cancel := context.WithTimeout(ctx, s.timeout)
		list, err := remote(rctx)
		cancel()
		if err == nil {
			return list, Remote, nil
		}
		s.log.Warn().Err(err).Str("entity", entityName).Str("op", "fetch").
			Msg("remoto falló, leyendo copia local")
	}
	list, err := local()
	if err != nil {
		return nil, LocalFallback, err
	}
	return list, LocalFallback, nil
}

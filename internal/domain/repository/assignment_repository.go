package repository

import (
	"context"

	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
)

// AssignmentRepository puerto del almacén remoto de asignaciones.
type AssignmentRepository interface {
	FetchAll(ctx context.Context) ([]entity.Assignment, error)
	Create(ctx context.Context, a *entity.Assignment) error
	Delete(ctx context.Context, id string) error
}

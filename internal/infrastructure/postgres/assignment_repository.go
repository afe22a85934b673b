package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo adaptador del espejo remoto de asignaciones sobre
// PostgreSQL.
type AssignmentRepo struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository construye el adaptador de asignaciones.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{pool: pool}
}

// FetchAll lista todas las asignaciones.
func (r *AssignmentRepo) FetchAll(ctx context.Context) ([]entity.Assignment, error) {
	query := `
		SELECT id, product_id, product_name, attendant_id, attendant_name, quantity_assigned, assignment_type, quantity_per_crate, assigned_at
		FROM assignments ORDER BY assigned_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		if err := rows.Scan(&a.ID, &a.ProductID, &a.ProductName, &a.AttendantID, &a.AttendantName, &a.QuantityAssigned, &a.AssignmentType, &a.QuantityPerCrate, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Create inserta una asignación.
func (r *AssignmentRepo) Create(ctx context.Context, a *entity.Assignment) error {
	query := `
		INSERT INTO assignments (id, product_id, product_name, attendant_id, attendant_name, quantity_assigned, assignment_type, quantity_per_crate, assigned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.ProductID, a.ProductName, a.AttendantID, a.AttendantName, a.QuantityAssigned, a.AssignmentType, a.QuantityPerCrate, a.AssignedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// Delete elimina una asignación por ID.
func (r *AssignmentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo adaptador del espejo remoto de usuarios sobre PostgreSQL. El
// shim solo lee por rol; las identidades autoritativas viven en el store
// local.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FetchByRole lista los usuarios de un rol.
func (r *UserRepo) FetchByRole(ctx context.Context, role string) ([]entity.User, error) {
	query := `
		SELECT id, email, name, role, status, created_at
		FROM users WHERE role = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()
	var list []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Status, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if u.Status == "" {
			u.Status = entity.StatusActive
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

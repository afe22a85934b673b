package sync

import (
	"context"

	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// FetchAttendants lista los usuarios con rol vendedor, remoto primero. El
// hash de contraseña nunca sale del shim.
func (s *Service) FetchAttendants(ctx context.Context) ([]entity.User, Durability, error) {
	var remote func(context.Context) ([]entity.User, error)
	if s.repos.Users != nil {
		remote = func(rctx context.Context) ([]entity.User, error) {
			return s.repos.Users.FetchByRole(rctx, entity.RoleVendedor)
		}
	}
	list, durability, err := fetch(ctx, s, "users", remote, func() ([]entity.User, error) {
		users, err := localstore.ReadList[entity.User](s.store, localstore.BucketUsers)
		if err != nil {
			return nil, err
		}
		var attendants []entity.User
		for _, u := range users {
			if u.Role == entity.RoleVendedor {
				attendants = append(attendants, u)
			}
		}
		return attendants, nil
	})
	if err != nil {
		return nil, durability, err
	}
	for i := range list {
		list[i] = list[i].Sanitized()
	}
	return list, durability, nil
}

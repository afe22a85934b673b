package sync

import (
	"context"

	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// FetchAssignments lista las asignaciones, remoto primero.
func (s *Service) FetchAssignments(ctx context.Context) ([]entity.Assignment, Durability, error) {
	var remote func(context.Context) ([]entity.Assignment, error)
	if s.repos.Assignments != nil {
		remote = s.repos.Assignments.FetchAll
	}
	return fetch(ctx, s, "assignments", remote, func() ([]entity.Assignment, error) {
		return localstore.ReadList[entity.Assignment](s.store, localstore.BucketAssignments)
	})
}

// CreateAssignment registra una asignación.
func (s *Service) CreateAssignment(ctx context.Context, a entity.Assignment) (Durability, error) {
	var remote func(context.Context) error
	if s.repos.Assignments != nil {
		remote = func(rctx context.Context) error { return s.repos.Assignments.Create(rctx, &a) }
	}
	return s.write(ctx, "assignments", "create", remote, func() error {
		assignments, err := localstore.ReadList[entity.Assignment](s.store, localstore.BucketAssignments)
		if err != nil {
			return err
		}
		assignments = append(assignments, a)
		return localstore.WriteList(s.store, localstore.BucketAssignments, assignments)
	})
}

// RemoveAssignment elimina una asignación por ID.
func (s *Service) RemoveAssignment(ctx context.Context, id string) (Durability, error) {
	var remote func(context.Context) error
	if s.repos.Assignments != nil {
		remote = func(rctx context.Context) error { return s.repos.Assignments.Delete(rctx, id) }
	}
	return s.write(ctx, "assignments", "remove", remote, func() error {
		assignments, err := localstore.ReadList[entity.Assignment](s.store, localstore.BucketAssignments)
		if err != nil {
			return err
		}
		filtered := assignments[:0]
		for _, a := range assignments {
			if a.ID != id {
				filtered = append(filtered, a)
			}
		}
		return localstore.WriteList(s.store, localstore.BucketAssignments, filtered)
	})
}

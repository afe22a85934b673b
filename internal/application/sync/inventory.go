package sync

import (
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
	"github.com/tu-usuario/licorera-pos/internal/localstore"
)

// Los registros de inventario no tienen espejo remoto: viven solo en el
// store local, como en el sistema original.

// FetchInventoryLogs lista los movimientos de inventario locales.
func (s *Service) FetchInventoryLogs() ([]entity.InventoryLog, error) {
	return localstore.ReadList[entity.InventoryLog](s.store, localstore.BucketInventory)
}

// AppendInventoryLog agrega un movimiento de inventario (append-only).
func (s *Service) AppendInventoryLog(log entity.InventoryLog) error {
	logs, err := localstore.ReadList[entity.InventoryLog](s.store, localstore.BucketInventory)
	if err != nil {
		return err
	}
	logs = append(logs, log)
	return localstore.WriteList(s.store, localstore.BucketInventory, logs)
}

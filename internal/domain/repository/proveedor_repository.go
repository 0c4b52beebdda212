package repository

import (
	"time"

	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
)

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	// GetByRFC busca una coincidencia exacta de RFC (ya normalizado). Devuelve nil si no existe.
	GetByRFC(rfc string) (*entity.Proveedor, error)
	// List devuelve todos los proveedores, más recientes primero (creado_en DESC).
	List() ([]*entity.Proveedor, error)
	UpdateEstatus(id, estatus string, actualizadoEn time.Time) error
	Delete(id string) error
}

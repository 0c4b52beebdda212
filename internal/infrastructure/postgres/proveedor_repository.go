package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL.
// El registro completo vive en la columna JSONB datos; rfc, tipo, estatus y
// timestamps se extraen a columnas para consultas e índices. En los cambios
// de estatus el documento se actualiza junto con las columnas para que nunca
// queden desfasados.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un nuevo proveedor. Un RFC repetido (índice único parcial)
// se reporta como domain.ErrDuplicate.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	datos, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serializar proveedor: %w", err)
	}
	query := `
		INSERT INTO proveedores (id, rfc, tipo, estatus, carpeta_id, datos, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.DatosGenerales.RFC, p.Tipo, p.Estatus, p.CarpetaID, datos, p.CreadoEn, p.ActualizadoEn,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT datos FROM proveedores WHERE id = $1`, id))
}

// GetByRFC busca una coincidencia exacta de RFC. Devuelve nil si no existe.
func (r *ProveedorRepo) GetByRFC(rfc string) (*entity.Proveedor, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT datos FROM proveedores WHERE rfc = $1 LIMIT 1`, rfc))
}

// List devuelve todos los proveedores, más recientes primero.
func (r *ProveedorRepo) List() ([]*entity.Proveedor, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT datos FROM proveedores ORDER BY creado_en DESC`)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var datos []byte
		if err := rows.Scan(&datos); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		p, err := decodeProveedor(datos)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdateEstatus cambia estatus y actualizado_en, en columnas y en el documento.
func (r *ProveedorRepo) UpdateEstatus(id, estatus string, actualizadoEn time.Time) error {
	query := `
		UPDATE proveedores
		SET estatus = $2,
		    actualizado_en = $3,
		    datos = datos || jsonb_build_object('estatus', $2::text, 'actualizadoEn', to_jsonb($3::timestamptz))
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, estatus, actualizadoEn)
	if err != nil {
		return fmt.Errorf("update estatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *ProveedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}

func (r *ProveedorRepo) scanOne(row pgx.Row) (*entity.Proveedor, error) {
	var datos []byte
	if err := row.Scan(&datos); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return decodeProveedor(datos)
}

func decodeProveedor(datos []byte) (*entity.Proveedor, error) {
	var p entity.Proveedor
	if err := json.Unmarshal(datos, &p); err != nil {
		return nil, fmt.Errorf("deserializar proveedor: %w", err)
	}
	return &p, nil
}

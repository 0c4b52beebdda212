package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas e índices si no existen. Se ejecuta al
// arranque; todas las sentencias son idempotentes.
//
// El índice único parcial sobre rfc cierra la ventana de carrera entre el
// chequeo de duplicado y el insert: dos altas concurrentes con el mismo RFC
// no pueden persistir ambas, la segunda recibe 23505 y se reporta como
// duplicado.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS proveedores (
			id             UUID PRIMARY KEY,
			rfc            TEXT,
			tipo           TEXT NOT NULL,
			estatus        TEXT NOT NULL,
			carpeta_id     TEXT NOT NULL DEFAULT '',
			datos          JSONB NOT NULL,
			creado_en      TIMESTAMPTZ NOT NULL,
			actualizado_en TIMESTAMPTZ
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS proveedores_rfc_uniq
			ON proveedores (rfc) WHERE rfc IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS proveedores_creado_en_idx
			ON proveedores (creado_en DESC)`,
		`CREATE TABLE IF NOT EXISTS usuarios (
			id            UUID PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name          TEXT NOT NULL,
			role          TEXT NOT NULL,
			status        TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL,
			updated_at    TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

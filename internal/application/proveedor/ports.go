package proveedor

import (
	"context"

	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
)

// ArchivoSubido referencia devuelta por el almacén tras subir un PDF.
type ArchivoSubido struct {
	ID          string // identificador estable del objeto
	URLVista    string
	URLDescarga string
}

// FileStore puerto hacia el almacén de objetos remoto (S3-compatible).
// Carpeta = prefijo bajo el que viven los PDF de un proveedor.
type FileStore interface {
	CrearCarpeta(ctx context.Context, nombre string) (string, error)
	SubirPDF(ctx context.Context, carpetaID, nombre string, contenido []byte, mimeType string) (*ArchivoSubido, error)
	// EliminarCarpeta borra la carpeta y todo su contenido.
	EliminarCarpeta(ctx context.Context, carpetaID string) error
}

// HojaGenerator puerto hacia el generador de la hoja PDF del proveedor.
type HojaGenerator interface {
	GenerarHoja(ctx context.Context, p *entity.Proveedor) ([]byte, error)
}

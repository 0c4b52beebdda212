package dto

import "github.com/tu-usuario/proveedores-api/internal/domain/entity"

// ArchivoAdjunto PDF recibido en el alta multipart, ya validado (solo
// application/pdf, máximo 15 MB). Campo es el name del input del formulario.
type ArchivoAdjunto struct {
	Campo          string
	NombreOriginal string
	MimeType       string
	Size           int64
	Contenido      []byte
}

// ListaProveedoresResponse salida del listado para el panel.
type ListaProveedoresResponse struct {
	Total       int                 `json:"total"`
	Proveedores []*entity.Proveedor `json:"proveedores"`
}

// ExisteResponse salida del chequeo previo de RFC.
type ExisteResponse struct {
	Existe bool `json:"existe"`
}

// ActualizarEstatusRequest entrada del PATCH de estatus.
type ActualizarEstatusRequest struct {
	Estatus string `json:"estatus"`
}

// EliminarResponse salida de la baja de un proveedor.
type EliminarResponse struct {
	ID        string `json:"id"`
	Eliminado bool   `json:"eliminado"`
}

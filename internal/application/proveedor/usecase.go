package proveedor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
	"github.com/tu-usuario/proveedores-api/pkg/logger"
)

// Marcadores usados en el nombre de la carpeta remota cuando faltan datos.
const (
	sinRFC  = "SIN_RFC"
	sinTipo = "SIN_TIPO"
)

// ProveedorUseCase orquesta el alta y ciclo de vida de proveedores:
// builder -> chequeo de RFC duplicado -> carpeta remota -> subida de PDFs ->
// persistencia, más listado, detalle, cambio de estatus y baja.
type ProveedorUseCase struct {
	repo  repository.ProveedorRepository
	store FileStore
	log   *logger.Logger
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository, store FileStore, log *logger.Logger) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo, store: store, log: log}
}

// Crear da de alta un proveedor. Valida la categoría, rechaza RFC duplicado
// antes de tocar el almacén (sin efectos parciales en ese caso), crea la
// carpeta remota, sube cada PDF etiquetado y persiste el registro con estatus
// inicial pendiente_revision.
//
// Si el almacén o la DB fallan después de crear la carpeta, la operación
// aborta y la carpeta (con lo que se haya subido) queda huérfana; no hay
// limpieza compensatoria.
func (uc *ProveedorUseCase) Crear(ctx context.Context, tipo string, campos map[string]string, archivos []dto.ArchivoAdjunto) (*entity.Proveedor, error) {
	if !entity.TipoValido(tipo) {
		return nil, fmt.Errorf("%w: tipo debe ser %q o %q", domain.ErrInvalidInput, entity.TipoFisica, entity.TipoMoral)
	}

	p := BuildProveedor(tipo, campos)

	rfc := ""
	if p.DatosGenerales.RFC != nil {
		rfc = *p.DatosGenerales.RFC
	}
	if rfc != "" {
		existente, err := uc.repo.GetByRFC(rfc)
		if err != nil {
			return nil, fmt.Errorf("verificar RFC duplicado: %w", err)
		}
		if existente != nil {
			return nil, domain.ErrDuplicate
		}
	}

	// Nombre de carpeta: RFC_tipo_fecha
	nombreCarpeta := fmt.Sprintf("%s_%s_%s",
		oDefecto(rfc, sinRFC), oDefecto(tipo, sinTipo), time.Now().Format("2006-01-02-15-04-05"))

	carpetaID, err := uc.store.CrearCarpeta(ctx, nombreCarpeta)
	if err != nil {
		return nil, fmt.Errorf("crear carpeta remota: %w", err)
	}
	p.CarpetaID = carpetaID

	docs := make([]entity.Documento, 0, len(archivos))
	for _, a := range archivos {
		etiqueta := EtiquetaDocumento(tipo, a.Campo)

		// Nombre remoto: RFC_ETIQUETA.pdf
		nombreRemoto := fmt.Sprintf("%s_%s.pdf", oDefecto(rfc, sinRFC), etiqueta)

		subido, err := uc.store.SubirPDF(ctx, carpetaID, nombreRemoto, a.Contenido, a.MimeType)
		if err != nil {
			return nil, fmt.Errorf("subir %s: %w", a.Campo, err)
		}
		docs = append(docs, entity.Documento{
			Campo:          a.Campo,
			TipoDocumento:  etiqueta,
			NombreOriginal: a.NombreOriginal,
			MimeType:       a.MimeType,
			Size:           a.Size,
			ArchivoID:      subido.ID,
			URLVista:       subido.URLVista,
			URLDescarga:    subido.URLDescarga,
		})
	}
	p.Documentos = docs

	p.ID = uuid.New().String()
	p.Estatus = entity.EstatusPendienteRevision
	p.CreadoEn = time.Now()

	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ExistePorRFC chequeo previo de duplicado desde el formulario, antes de
// completar los pasos del alta.
func (uc *ProveedorUseCase) ExistePorRFC(rfc string) (bool, error) {
	rfc = NormalizarRFC(rfc)
	if rfc == "" {
		return false, fmt.Errorf("%w: rfc es requerido", domain.ErrInvalidInput)
	}
	existente, err := uc.repo.GetByRFC(rfc)
	if err != nil {
		return false, fmt.Errorf("buscar RFC: %w", err)
	}
	return existente != nil, nil
}

// Listar devuelve todos los proveedores, más recientes primero.
func (uc *ProveedorUseCase) Listar() ([]*entity.Proveedor, error) {
	return uc.repo.List()
}

// ObtenerPorID devuelve un proveedor o domain.ErrNotFound.
func (uc *ProveedorUseCase) ObtenerPorID(id string) (*entity.Proveedor, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ActualizarEstatus cambia el estatus de revisión y fija actualizadoEn.
// El estatus debe ser uno de los tres valores permitidos.
func (uc *ProveedorUseCase) ActualizarEstatus(id, estatus string) (*entity.Proveedor, error) {
	if !entity.EstatusValido(estatus) {
		return nil, fmt.Errorf("%w: estatus no válido: %q", domain.ErrInvalidInput, estatus)
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateEstatus(id, estatus, time.Now()); err != nil {
		return nil, err
	}
	return uc.ObtenerPorID(id)
}

// Eliminar borra el proveedor. La carpeta remota se intenta borrar antes;
// si eso falla solo se registra en el log y la baja local procede igual.
func (uc *ProveedorUseCase) Eliminar(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}

	if p.CarpetaID != "" {
		if err := uc.store.EliminarCarpeta(ctx, p.CarpetaID); err != nil {
			uc.log.Warn().Err(err).
				Str("proveedor_id", id).
				Str("carpeta_id", p.CarpetaID).
				Msg("no se pudo eliminar la carpeta remota, la baja local continúa")
		}
	}

	return uc.repo.Delete(id)
}

func oDefecto(v, defecto string) string {
	if v == "" {
		return defecto
	}
	return v
}

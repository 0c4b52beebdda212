package proveedor_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/application/proveedor"
	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
	"github.com/tu-usuario/proveedores-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	porID  map[string]*entity.Proveedor
	orden  []string // ids en orden de inserción
	errGet error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{porID: map[string]*entity.Proveedor{}}
}

func (r *fakeRepo) Create(p *entity.Proveedor) error {
	r.porID[p.ID] = p
	r.orden = append(r.orden, p.ID)
	return nil
}

func (r *fakeRepo) GetByID(id string) (*entity.Proveedor, error) {
	if r.errGet != nil {
		return nil, r.errGet
	}
	return r.porID[id], nil
}

func (r *fakeRepo) GetByRFC(rfc string) (*entity.Proveedor, error) {
	if r.errGet != nil {
		return nil, r.errGet
	}
	for _, p := range r.porID {
		if p.DatosGenerales.RFC != nil && *p.DatosGenerales.RFC == rfc {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) List() ([]*entity.Proveedor, error) {
	// Más recientes primero, como el repositorio real
	out := make([]*entity.Proveedor, 0, len(r.orden))
	for i := len(r.orden) - 1; i >= 0; i-- {
		out = append(out, r.porID[r.orden[i]])
	}
	return out, nil
}

func (r *fakeRepo) UpdateEstatus(id, estatus string, actualizadoEn time.Time) error {
	p, ok := r.porID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Estatus = estatus
	p.ActualizadoEn = &actualizadoEn
	return nil
}

func (r *fakeRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

type fakeStore struct {
	carpetas   []string // nombres de carpeta creados
	subidas    []string // nombres remotos subidos
	eliminadas []string // ids de carpeta eliminados

	errCrearCarpeta error
	errEliminar     error
}

func (s *fakeStore) CrearCarpeta(_ context.Context, nombre string) (string, error) {
	if s.errCrearCarpeta != nil {
		return "", s.errCrearCarpeta
	}
	s.carpetas = append(s.carpetas, nombre)
	return "carpeta/" + nombre, nil
}

func (s *fakeStore) SubirPDF(_ context.Context, carpetaID, nombre string, _ []byte, _ string) (*proveedor.ArchivoSubido, error) {
	s.subidas = append(s.subidas, nombre)
	return &proveedor.ArchivoSubido{
		ID:          carpetaID + "/" + nombre,
		URLVista:    "https://files.example.com/vista/" + nombre,
		URLDescarga: "https://files.example.com/descarga/" + nombre,
	}, nil
}

func (s *fakeStore) EliminarCarpeta(_ context.Context, carpetaID string) error {
	if s.errEliminar != nil {
		return s.errEliminar
	}
	s.eliminadas = append(s.eliminadas, carpetaID)
	return nil
}

func newUseCase(repo *fakeRepo, store *fakeStore) *proveedor.ProveedorUseCase {
	return proveedor.NewProveedorUseCase(repo, store, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_Exitoso(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	uc := newUseCase(repo, store)

	campos := map[string]string{
		"nombre": "Juan",
		"rfc":    "abc010101aaa",
	}
	archivos := []dto.ArchivoAdjunto{
		{Campo: "csf", NombreOriginal: "constancia.pdf", MimeType: "application/pdf", Size: 4, Contenido: []byte("%PDF")},
	}

	p, err := uc.Crear(context.Background(), entity.TipoFisica, campos, archivos)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, entity.EstatusPendienteRevision, p.Estatus)
	assert.False(t, p.CreadoEn.IsZero())
	assert.NotEmpty(t, p.CarpetaID)

	// Carpeta: RFC_tipo_fecha
	require.Len(t, store.carpetas, 1)
	assert.True(t, strings.HasPrefix(store.carpetas[0], "ABC010101AAA_fisica_"),
		"el nombre de la carpeta debe empezar con RFC_tipo, fue %q", store.carpetas[0])

	// Documento etiquetado y con nombre remoto RFC_ETIQUETA.pdf
	require.Len(t, p.Documentos, 1)
	doc := p.Documentos[0]
	assert.Equal(t, "csf", doc.Campo)
	assert.Equal(t, "CONSTANCIA_SITUACION_FISCAL", doc.TipoDocumento)
	assert.Equal(t, "constancia.pdf", doc.NombreOriginal)
	require.Len(t, store.subidas, 1)
	assert.Equal(t, "ABC010101AAA_CONSTANCIA_SITUACION_FISCAL.pdf", store.subidas[0])

	// Persistido
	guardado, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, guardado)
}

func TestCrear_TipoInvalido(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	uc := newUseCase(repo, store)

	_, err := uc.Crear(context.Background(), "gobierno", map[string]string{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.carpetas, "no debe tocar el almacén con tipo inválido")
}

func TestCrear_RFCDuplicado_SinEfectosParciales(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	uc := newUseCase(repo, store)

	// Primer alta con el RFC
	_, err := uc.Crear(context.Background(), entity.TipoFisica, map[string]string{"rfc": "ABC010101AAA"}, nil)
	require.NoError(t, err)
	carpetasAntes := len(store.carpetas)

	// Segundo intento con el mismo RFC (distinta capitalización)
	_, err = uc.Crear(context.Background(), entity.TipoMoral, map[string]string{"rfc": " abc010101aaa "}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// El duplicado se detecta antes de tocar el almacén
	assert.Len(t, store.carpetas, carpetasAntes, "el rechazo por duplicado no debe crear carpetas")
	assert.Len(t, repo.porID, 1, "el rechazo por duplicado no debe persistir nada")
}

func TestCrear_SinRFC_UsaMarcador(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	uc := newUseCase(repo, store)

	archivos := []dto.ArchivoAdjunto{
		{Campo: "doc_libre", NombreOriginal: "x.pdf", MimeType: "application/pdf", Contenido: []byte("%PDF")},
	}
	p, err := uc.Crear(context.Background(), entity.TipoFisica, map[string]string{}, archivos)
	require.NoError(t, err)
	require.NotNil(t, p)

	require.Len(t, store.carpetas, 1)
	assert.True(t, strings.HasPrefix(store.carpetas[0], "SIN_RFC_fisica_"), "fue %q", store.carpetas[0])

	// Fallback de etiqueta: campo no mapeado en mayúsculas
	require.Len(t, store.subidas, 1)
	assert.Equal(t, "SIN_RFC_DOC_LIBRE.pdf", store.subidas[0])
}

func TestCrear_FallaCrearCarpeta(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{errCrearCarpeta: fmt.Errorf("almacén caído")}
	uc := newUseCase(repo, store)

	_, err := uc.Crear(context.Background(), entity.TipoFisica, map[string]string{"rfc": "ABC010101AAA"}, nil)
	require.Error(t, err)
	assert.Empty(t, repo.porID, "si falla el almacén no debe persistir nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// ExistePorRFC
// ──────────────────────────────────────────────────────────────────────────────

func TestExistePorRFC(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	uc := newUseCase(repo, store)

	_, err := uc.Crear(context.Background(), entity.TipoFisica, map[string]string{"rfc": "ABC010101AAA"}, nil)
	require.NoError(t, err)

	// La consulta normaliza antes de buscar
	existe, err := uc.ExistePorRFC(" abc010101aaa ")
	require.NoError(t, err)
	assert.True(t, existe)

	existe, err = uc.ExistePorRFC("XYZ990505BB1")
	require.NoError(t, err)
	assert.False(t, existe)
}

func TestExistePorRFC_Vacio(t *testing.T) {
	uc := newUseCase(newFakeRepo(), &fakeStore{})

	_, err := uc.ExistePorRFC("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// ActualizarEstatus
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarEstatus_Aprobado(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo, &fakeStore{})

	p, err := uc.Crear(context.Background(), entity.TipoFisica, map[string]string{"rfc": "ABC010101AAA"}, nil)
	require.NoError(t, err)
	require.Nil(t, p.ActualizadoEn)

	actualizado, err := uc.ActualizarEstatus(p.ID, entity.EstatusAprobado)
	require.NoError(t, err)
	assert.Equal(t, entity.EstatusAprobado, actualizado.Estatus)
	require.NotNil(t, actualizado.ActualizadoEn)
}

func TestActualizarEstatus_ValorInvalido_NoCambiaNada(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo, &fakeStore{})

	p, err := uc.Crear(context.Background(), entity.TipoFisica, map[string]string{"rfc": "ABC010101AAA"}, nil)
	require.NoError(t, err)

	_, err = uc.ActualizarEstatus(p.ID, "archivado")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	guardado, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstatusPendienteRevision, guardado.Estatus, "el registro no debe cambiar con un estatus inválido")
	assert.Nil(t, guardado.ActualizadoEn)
}

func TestActualizarEstatus_NoEncontrado(t *testing.T) {
	uc := newUseCase(newFakeRepo(), &fakeStore{})

	_, err := uc.ActualizarEstatus("no-existe", entity.EstatusRechazado)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestEliminar_BorraCarpetaYRegistro(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	uc := newUseCase(repo, store)

	p, err := uc.Crear(context.Background(), entity.TipoFisica, map[string]string{"rfc": "ABC010101AAA"}, nil)
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), p.ID))

	assert.Equal(t, []string{p.CarpetaID}, store.eliminadas)
	guardado, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, guardado)
}

func TestEliminar_FallaDelAlmacen_LaBajaLocalProcede(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	uc := newUseCase(repo, store)

	p, err := uc.Crear(context.Background(), entity.TipoFisica, map[string]string{"rfc": "ABC010101AAA"}, nil)
	require.NoError(t, err)

	store.errEliminar = errors.New("almacén caído")
	require.NoError(t, uc.Eliminar(context.Background(), p.ID), "la falla del almacén no debe bloquear la baja")

	guardado, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, guardado, "el registro local debe borrarse igual")
}

func TestEliminar_NoEncontrado(t *testing.T) {
	uc := newUseCase(newFakeRepo(), &fakeStore{})
	assert.ErrorIs(t, uc.Eliminar(context.Background(), "no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar / ObtenerPorID
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_MasRecientesPrimero(t *testing.T) {
	repo := newFakeRepo()
	uc := newUseCase(repo, &fakeStore{})

	p1, err := uc.Crear(context.Background(), entity.TipoFisica, map[string]string{"rfc": "AAA010101AA1"}, nil)
	require.NoError(t, err)
	p2, err := uc.Crear(context.Background(), entity.TipoMoral, map[string]string{"rfc": "BBB020202BB2"}, nil)
	require.NoError(t, err)

	lista, err := uc.Listar()
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, p2.ID, lista[0].ID)
	assert.Equal(t, p1.ID, lista[1].ID)
}

func TestObtenerPorID_NoEncontrado(t *testing.T) {
	uc := newUseCase(newFakeRepo(), &fakeStore{})

	_, err := uc.ObtenerPorID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package proveedor

import (
	"context"
	"fmt"

	"github.com/tu-usuario/proveedores-api/internal/domain"
	"github.com/tu-usuario/proveedores-api/internal/domain/repository"
)

// HojaUseCase genera la hoja de proveedor (resumen PDF) para el panel.
type HojaUseCase struct {
	repo      repository.ProveedorRepository
	generator HojaGenerator
}

// NewHojaUseCase construye el caso de uso inyectando sus dependencias.
func NewHojaUseCase(repo repository.ProveedorRepository, generator HojaGenerator) *HojaUseCase {
	return &HojaUseCase{repo: repo, generator: generator}
}

// DescargarHoja carga el proveedor y genera el PDF con sus secciones.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el proveedor no existe.
func (uc *HojaUseCase) DescargarHoja(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("hoja: obtener proveedor: %w", err)
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerarHoja(ctx, p)
	if err != nil {
		return nil, "", fmt.Errorf("hoja: generación fallida: %w", err)
	}

	ref := p.ID
	if p.DatosGenerales.RFC != nil {
		ref = *p.DatosGenerales.RFC
	}
	filename = fmt.Sprintf("proveedor_%s.pdf", ref)
	return pdfBytes, filename, nil
}

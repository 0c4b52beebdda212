// Package pdf implementa la generación de la Hoja de Proveedor: el resumen
// imprimible que el panel descarga por proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre / Razón Social  │  RFC + Estatus + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATOS GENERALES                                             │
//	│  DOMICILIO FISCAL                                            │
//	│  CONTACTO  /  DATOS BANCARIOS                                │
//	│  ── solo persona moral ──────────────────────────────────── │
//	│  REPRESENTANTE LEGAL + DOMICILIO DEL REPRESENTANTE           │
//	│  ACTA CONSTITUTIVA + PODER DEL REPRESENTANTE (si hay datos)  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DOCUMENTOS ENTREGADOS                                       │
//	└─────────────────────────────────────────────────────────────┘
//
// Los campos en nil se omiten por completo (no se imprimen renglones vacíos);
// es el mismo contrato null-vs-ausente del registro.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appproveedor "github.com/tu-usuario/proveedores-api/internal/application/proveedor"
	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appproveedor.HojaGenerator = (*MarotoHojaGenerator)(nil)

// MarotoHojaGenerator implementa proveedor.HojaGenerator usando Maroto v2.
type MarotoHojaGenerator struct{}

// NewMarotoHojaGenerator construye el generador.
func NewMarotoHojaGenerator() *MarotoHojaGenerator { return &MarotoHojaGenerator{} }

// GenerarHoja genera el PDF de la hoja de proveedor y devuelve sus bytes.
func (g *MarotoHojaGenerator) GenerarHoja(_ context.Context, p *entity.Proveedor) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de Proveedor", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(seccion("DATOS GENERALES"))
	m.AddRows(camposSeccion(datosGeneralesCampos(p))...)

	m.AddRows(seccion("DOMICILIO FISCAL"))
	m.AddRows(camposSeccion(domicilioCampos(&p.DomicilioFiscal))...)

	m.AddRows(seccion("CONTACTO"))
	m.AddRows(camposSeccion([]campoHoja{
		{"Correo", p.Contacto.Email},
		{"Teléfono", p.Contacto.Telefono},
	})...)

	m.AddRows(seccion("DATOS BANCARIOS"))
	m.AddRows(camposSeccion([]campoHoja{
		{"Banco", p.Bancario.Banco},
		{"Cuenta", p.Bancario.Cuenta},
		{"CLABE", p.Bancario.CLABE},
	})...)

	if p.Tipo == entity.TipoMoral {
		agregarSeccionesMoral(m, p)
	}

	if len(p.Documentos) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(seccion("DOCUMENTOS ENTREGADOS"))
		for _, r := range documentosRows(p.Documentos) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre o razón social (izq) y RFC + estatus + fecha de alta (der).
func headerRow(p *entity.Proveedor) core.Row {
	titulo := nombreCompleto(
		p.DatosGenerales.ApellidoPaterno,
		p.DatosGenerales.ApellidoMaterno,
		p.DatosGenerales.Nombre,
		p.DatosGenerales.OtrosNombres,
	)
	if p.Tipo == entity.TipoMoral {
		titulo = valorO(p.DatosGenerales.RazonSocial, "")
	}
	if titulo == "" {
		titulo = "Proveedor sin nombre"
	}

	fecha := ""
	if !p.CreadoEn.IsZero() {
		fecha = p.CreadoEn.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tipo: "+p.Tipo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("HOJA DE PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("RFC: "+valorO(p.DatosGenerales.RFC, "—"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Estatus: %s   Alta: %s", p.Estatus, fecha), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func agregarSeccionesMoral(m core.Maroto, p *entity.Proveedor) {
	if rep := p.Representante; rep != nil {
		m.AddRows(seccion("REPRESENTANTE LEGAL"))
		m.AddRows(camposSeccion([]campoHoja{
			{"Nombre", opcional(nombreCompleto(rep.ApellidoPaterno, rep.ApellidoMaterno, rep.Nombre, rep.OtrosNombres))},
			{"RFC", rep.RFC},
			{"CURP", rep.CURP},
			{"Ocupación", rep.Ocupacion},
		})...)
	}

	if p.DomicilioRepresentante != nil {
		m.AddRows(seccion("DOMICILIO DEL REPRESENTANTE"))
		m.AddRows(camposSeccion(domicilioCampos(p.DomicilioRepresentante))...)
	}

	if acta := p.ActaConstitutiva; acta != nil && tieneDatosActa(acta) {
		m.AddRows(seccion("ACTA CONSTITUTIVA"))
		m.AddRows(camposSeccion(actaCampos(acta))...)
	}

	if poder := p.PoderRepresentante; poder != nil && tieneDatosActa(poder) {
		m.AddRows(seccion("PODER DEL REPRESENTANTE"))
		m.AddRows(camposSeccion(actaCampos(poder))...)
	}
}

func seccion(titulo string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		})),
	)
}

// campoHoja un renglón etiqueta/valor de la hoja; Valor en nil omite el renglón.
type campoHoja struct {
	Etiqueta string
	Valor    *string
}

func camposSeccion(campos []campoHoja) []core.Row {
	rows := make([]core.Row, 0, len(campos))
	for _, c := range campos {
		if c.Valor == nil || *c.Valor == "" {
			continue
		}
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(c.Etiqueta+":", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
			col.New(9).Add(text.New(*c.Valor, props.Text{Size: 9, Top: 1})),
		))
	}
	return rows
}

func datosGeneralesCampos(p *entity.Proveedor) []campoHoja {
	g := p.DatosGenerales
	if p.Tipo == entity.TipoMoral {
		return []campoHoja{
			{"Razón Social", g.RazonSocial},
			{"RFC", g.RFC},
			{"Giro", p.DatosAdicionales.Giro},
			{"Ocupación", p.DatosAdicionales.Ocupacion},
		}
	}
	return []campoHoja{
		{"Nombre", opcional(nombreCompleto(g.ApellidoPaterno, g.ApellidoMaterno, g.Nombre, g.OtrosNombres))},
		{"RFC", g.RFC},
		{"CURP", g.CURP},
		{"Giro", p.DatosAdicionales.Giro},
		{"Ocupación", p.DatosAdicionales.Ocupacion},
	}
}

func domicilioCampos(d *entity.Domicilio) []campoHoja {
	return []campoHoja{
		{"Calle", d.Calle},
		{"Número Exterior", d.NumExterior},
		{"Número Interior", d.NumInterior},
		{"CP", d.CP},
		{"Colonia / Asentamiento", d.Colonia},
		{"Municipio / Alcaldía", d.Municipio},
		{"Estado", d.Estado},
		{"País", d.Pais},
	}
}

func actaCampos(a *entity.ActaNotarial) []campoHoja {
	return []campoHoja{
		{"Número de escritura", a.NumEscritura},
		{"Fecha de constitución", a.FechaConstitucion},
		{"Número de notaría", a.NumNotaria},
		{"Estado notaría", a.EstadoNotaria},
		{"Notario", opcional(nombreCompleto(
			a.Notario.ApellidoPaterno, a.Notario.ApellidoMaterno,
			a.Notario.Nombre, a.Notario.OtrosNombres,
		))},
	}
}

// tieneDatosActa evita imprimir una sección de acta completamente vacía.
func tieneDatosActa(a *entity.ActaNotarial) bool {
	for _, c := range actaCampos(a) {
		if c.Valor != nil && *c.Valor != "" {
			return true
		}
	}
	return false
}

func documentosRows(docs []entity.Documento) []core.Row {
	rows := make([]core.Row, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(d.TipoDocumento, props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(d.NombreOriginal, props.Text{
				Size: 8, Top: 1, Color: colorGray, Align: align.Right,
			})),
		))
	}
	return rows
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func nombreCompleto(partes ...*string) string {
	valores := make([]string, 0, len(partes))
	for _, p := range partes {
		if p != nil && *p != "" {
			valores = append(valores, *p)
		}
	}
	return strings.Join(valores, " ")
}

func valorO(v *string, defecto string) string {
	if v == nil || *v == "" {
		return defecto
	}
	return *v
}

func opcional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

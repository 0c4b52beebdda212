package proveedor

import (
	"strings"

	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
)

// PaisPorDefecto se aplica a los domicilios cuando el formulario no envía país.
const PaisPorDefecto = "México"

// BuildProveedor construye el registro canónico a partir del mapa plano de
// campos del formulario. Es total: cualquier mapa produce un registro válido,
// sin id, documentos, estatus ni timestamps (eso lo fija el caso de uso).
//
// Contrato de normalización: campo ausente o vacío -> nil, nunca cadena
// vacía; el panel y la hoja PDF dependen de esto. Para persona física las
// subestructuras de persona moral quedan en nil (null explícito).
func BuildProveedor(tipo string, campos map[string]string) *entity.Proveedor {
	p := &entity.Proveedor{
		Tipo: tipo,
		DatosGenerales: entity.DatosGenerales{
			ApellidoPaterno: campo(campos, "apellidoPaterno"),
			ApellidoMaterno: campo(campos, "apellidoMaterno"),
			Nombre:          campo(campos, "nombre"),
			OtrosNombres:    campo(campos, "otrosNombres"),
			RazonSocial:     campo(campos, "razonSocial"),
			RFC:             rfcNormalizado(campos["rfc"]),
			CURP:            campo(campos, "curp"),
		},
		DomicilioFiscal: entity.Domicilio{
			Calle:       campo(campos, "calle"),
			NumExterior: campo(campos, "numExterior"),
			NumInterior: campo(campos, "numInterior"),
			CP:          campo(campos, "cp"),
			Colonia:     campo(campos, "colonia"),
			Municipio:   campo(campos, "municipio"),
			Estado:      campo(campos, "estado"),
			Pais:        campoConDefecto(campos, "pais", PaisPorDefecto),
		},
		DatosAdicionales: entity.DatosAdicionales{
			Ocupacion: campo(campos, "ocupacion"),
			Giro:      campo(campos, "giro"),
		},
		Contacto: entity.Contacto{
			Email:    campo(campos, "email"),
			Telefono: campo(campos, "telefono"),
		},
		Bancario: entity.DatosBancarios{
			Banco:  campo(campos, "banco"),
			Cuenta: campo(campos, "cuenta"),
			CLABE:  campo(campos, "clabe"),
		},
	}

	if tipo == entity.TipoMoral {
		p.Representante = &entity.Representante{
			ApellidoPaterno: campo(campos, "repApellidoPaterno"),
			ApellidoMaterno: campo(campos, "repApellidoMaterno"),
			Nombre:          campo(campos, "repNombre"),
			OtrosNombres:    campo(campos, "repOtrosNombres"),
			RFC:             rfcNormalizado(campos["repRfc"]),
			CURP:            campo(campos, "repCurp"),
			Ocupacion:       campo(campos, "repOcupacion"),
		}
		p.DomicilioRepresentante = &entity.Domicilio{
			Calle:       campo(campos, "repCalle"),
			NumExterior: campo(campos, "repNumExterior"),
			NumInterior: campo(campos, "repNumInterior"),
			CP:          campo(campos, "repCp"),
			Colonia:     campo(campos, "repColonia"),
			Municipio:   campo(campos, "repMunicipio"),
			Estado:      campo(campos, "repEstado"),
			Pais:        campoConDefecto(campos, "repPais", PaisPorDefecto),
		}
		p.ActaConstitutiva = &entity.ActaNotarial{
			NumEscritura:      campo(campos, "actaNumEscritura"),
			FechaConstitucion: campo(campos, "actaFechaConstitucion"),
			NumNotaria:        campo(campos, "actaNumNotaria"),
			EstadoNotaria:     campo(campos, "actaNotarioEstado"),
			Notario: entity.Notario{
				ApellidoPaterno: campo(campos, "actaNotarioApellidoPaterno"),
				ApellidoMaterno: campo(campos, "actaNotarioApellidoMaterno"),
				Nombre:          campo(campos, "actaNotarioNombre"),
				OtrosNombres:    campo(campos, "actaNotarioOtrosNombres"),
			},
		}
		p.PoderRepresentante = &entity.ActaNotarial{
			NumEscritura:      campo(campos, "poderNumEscritura"),
			FechaConstitucion: campo(campos, "poderFechaConstitucion"),
			NumNotaria:        campo(campos, "poderNumNotaria"),
			EstadoNotaria:     campo(campos, "poderNotarioEstado"),
			Notario: entity.Notario{
				ApellidoPaterno: campo(campos, "poderNotarioApellidoPaterno"),
				ApellidoMaterno: campo(campos, "poderNotarioApellidoMaterno"),
				Nombre:          campo(campos, "poderNotarioNombre"),
				OtrosNombres:    campo(campos, "poderNotarioOtrosNombres"),
			},
		}
	}

	return p
}

// NormalizarRFC aplica la normalización autoritativa del servidor: mayúsculas
// y sin espacios alrededor. El cliente hace lo mismo, pero esta es la que vale.
func NormalizarRFC(rfc string) string {
	return strings.ToUpper(strings.TrimSpace(rfc))
}

func rfcNormalizado(raw string) *string {
	rfc := NormalizarRFC(raw)
	if rfc == "" {
		return nil
	}
	return &rfc
}

func campo(campos map[string]string, clave string) *string {
	v := strings.TrimSpace(campos[clave])
	if v == "" {
		return nil
	}
	return &v
}

func campoConDefecto(campos map[string]string, clave, defecto string) *string {
	if v := campo(campos, clave); v != nil {
		return v
	}
	d := defecto
	return &d
}

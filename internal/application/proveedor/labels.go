package proveedor

import (
	"strings"

	"github.com/tu-usuario/proveedores-api/internal/domain/entity"
)

// Tablas de mapeo campo-del-formulario -> etiqueta de documento. La etiqueta
// se usa como tipoDocumento del descriptor y en el nombre del archivo remoto
// (RFC_ETIQUETA.pdf), así que es parte del contrato con el cliente.

var mapeoDocumentosFisica = map[string]string{
	"identificacion_oficial": "IDENTIFICACION_OFICIAL",
	"csf":                    "CONSTANCIA_SITUACION_FISCAL",
	"domicilio":              "COMPROBANTE_DOMICILIO_FISCAL",
	"caratula_banco":         "CARATULA_ESTADO_CUENTA",
	"cumplimiento_sat":       "CONSTANCIA_CUMPLIMIENTO_SAT",
	"cumplimiento_imss":      "CONSTANCIA_CUMPLIMIENTO_IMSS",
	"cumplimiento_infonavit": "CONSTANCIA_CUMPLIMIENTO_INFONAVIT",
	"repse":                  "REPSE",
	"registro_patronal":      "REGISTRO_PATRONAL",
	"portafolio":             "PORTAFOLIO_EXPERIENCIA",
}

var mapeoDocumentosMoral = map[string]string{
	"id_representante":       "IDENTIFICACION_REPRESENTANTE",
	"csf_pm":                 "CONSTANCIA_SITUACION_FISCAL_EMPRESA",
	"csf_rep":                "CONSTANCIA_SITUACION_FISCAL_REPRESENTANTE",
	"domicilio_pm":           "COMPROBANTE_DOMICILIO_FISCAL_EMPRESA",
	"acta_constitutiva":      "ACTA_CONSTITUTIVA",
	"poder_rep":              "PODER_REPRESENTANTE",
	"caratula_banco":         "ESTADO_CUENTA",
	"cumplimiento_sat":       "CONSTANCIA_CUMPLIMIENTO_SAT",
	"cumplimiento_imss":      "CONSTANCIA_CUMPLIMIENTO_IMSS",
	"cumplimiento_infonavit": "CONSTANCIA_CUMPLIMIENTO_INFONAVIT",
	"repse":                  "REGISTRO_REPSE",
	"registro_patronal":      "REGISTRO_PATRONAL",
	"estados_financieros":    "ESTADOS_FINANCIEROS",
	"portafolio":             "PORTAFOLIO_PROYECTOS",
	"cfdis_nomina":           "CFDIS_NOMINA",
	"decl_pagos_imss":        "DECLARACIONES_PAGOS_IMSS",
	"decl_pagos_infonavit":   "DECLARACIONES_PAGOS_INFONAVIT",
	"decl_pagos_federales":   "DECLARACIONES_PAGOS_FEDERALES",
}

// EtiquetaDocumento devuelve la etiqueta del documento para un campo del
// formulario según la categoría. Campos no mapeados caen al nombre del campo
// en mayúsculas; los nombres de archivo generados dependen de ese fallback.
func EtiquetaDocumento(tipo, campo string) string {
	var mapeo map[string]string
	switch tipo {
	case entity.TipoFisica:
		mapeo = mapeoDocumentosFisica
	case entity.TipoMoral:
		mapeo = mapeoDocumentosMoral
	}
	if etiqueta, ok := mapeo[campo]; ok {
		return etiqueta
	}
	return strings.ToUpper(campo)
}

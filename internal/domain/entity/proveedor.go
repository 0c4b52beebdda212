package entity

import "time"

// Tipos de proveedor.
const (
	TipoFisica = "fisica"
	TipoMoral  = "moral"
)

// Estatus de revisión de un proveedor.
const (
	EstatusPendienteRevision = "pendiente_revision"
	EstatusAprobado          = "aprobado"
	EstatusRechazado         = "rechazado"
)

// TipoValido indica si el tipo corresponde a una de las dos categorías.
func TipoValido(tipo string) bool {
	return tipo == TipoFisica || tipo == TipoMoral
}

// EstatusValido indica si el estatus es uno de los tres permitidos.
func EstatusValido(estatus string) bool {
	switch estatus {
	case EstatusPendienteRevision, EstatusAprobado, EstatusRechazado:
		return true
	}
	return false
}

// Proveedor es el registro central del alta de proveedores. Los tags JSON
// definen tanto el documento persistido (columna JSONB) como la respuesta de
// la API: campo ausente = null, nunca cadena vacía. Las subestructuras
// exclusivas de persona moral son punteros y quedan en nil para persona
// física (null explícito, no objeto vacío).
type Proveedor struct {
	ID                     string            `json:"id"`
	Tipo                   string            `json:"tipo"` // fisica | moral
	DatosGenerales         DatosGenerales    `json:"datosGenerales"`
	DomicilioFiscal        Domicilio         `json:"domicilioFiscal"`
	Representante          *Representante    `json:"representante"`
	DomicilioRepresentante *Domicilio        `json:"domicilioRepresentante"`
	ActaConstitutiva       *ActaNotarial     `json:"actaConstitutiva"`
	PoderRepresentante     *ActaNotarial     `json:"poderRepresentante"`
	DatosAdicionales       DatosAdicionales  `json:"datosAdicionales"`
	Contacto               Contacto          `json:"contacto"`
	Bancario               DatosBancarios    `json:"bancario"`
	Documentos             []Documento       `json:"documentos"`
	CarpetaID              string            `json:"carpetaId"` // carpeta remota con los PDF del proveedor
	Estatus                string            `json:"estatus"`
	CreadoEn               time.Time         `json:"creadoEn"`
	ActualizadoEn          *time.Time        `json:"actualizadoEn"` // se fija en cada cambio de estatus
}

// DatosGenerales identidad fiscal: nombre de persona física o razón social de la empresa.
type DatosGenerales struct {
	ApellidoPaterno *string `json:"apellidoPaterno"`
	ApellidoMaterno *string `json:"apellidoMaterno"`
	Nombre          *string `json:"nombre"`
	OtrosNombres    *string `json:"otrosNombres"`
	RazonSocial     *string `json:"razonSocial"`
	RFC             *string `json:"rfc"`  // llave de negocio para deduplicación (mayúsculas, sin espacios)
	CURP            *string `json:"curp"` // persona física; en moral se usa el CURP del representante
}

// Domicilio dirección fiscal (empresa, persona o representante).
type Domicilio struct {
	Calle       *string `json:"calle"`
	NumExterior *string `json:"numExterior"`
	NumInterior *string `json:"numInterior"`
	CP          *string `json:"cp"`
	Colonia     *string `json:"colonia"`
	Municipio   *string `json:"municipio"`
	Estado      *string `json:"estado"`
	Pais        *string `json:"pais"`
}

// Representante representante legal de una persona moral.
type Representante struct {
	ApellidoPaterno *string `json:"apellidoPaterno"`
	ApellidoMaterno *string `json:"apellidoMaterno"`
	Nombre          *string `json:"nombre"`
	OtrosNombres    *string `json:"otrosNombres"`
	RFC             *string `json:"rfc"`
	CURP            *string `json:"curp"`
	Ocupacion       *string `json:"ocupacion"`
}

// Notario fedatario que protocolizó un acta.
type Notario struct {
	ApellidoPaterno *string `json:"apellidoPaterno"`
	ApellidoMaterno *string `json:"apellidoMaterno"`
	Nombre          *string `json:"nombre"`
	OtrosNombres    *string `json:"otrosNombres"`
}

// ActaNotarial datos de escritura pública: acta constitutiva o poder del representante.
type ActaNotarial struct {
	NumEscritura      *string `json:"numEscritura"`
	FechaConstitucion *string `json:"fechaConstitucion"`
	NumNotaria        *string `json:"numNotaria"`
	EstadoNotaria     *string `json:"estadoNotaria"`
	Notario           Notario `json:"notario"`
}

// DatosAdicionales ocupación y giro, opcionales para ambas categorías.
type DatosAdicionales struct {
	Ocupacion *string `json:"ocupacion"`
	Giro      *string `json:"giro"`
}

// Contacto datos de contacto del proveedor.
type Contacto struct {
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
}

// DatosBancarios cuenta para pagos. CLABE es la clave estandarizada de 18 dígitos.
type DatosBancarios struct {
	Banco  *string `json:"banco"`
	Cuenta *string `json:"cuenta"`
	CLABE  *string `json:"clabe"`
}

// Documento descriptor de un PDF subido al almacén de objetos en el alta.
type Documento struct {
	Campo          string `json:"campo"`          // name del input en el formulario
	TipoDocumento  string `json:"tipoDocumento"`  // etiqueta de la tabla de mapeo (o campo en mayúsculas)
	NombreOriginal string `json:"nombreOriginal"`
	MimeType       string `json:"mimeType"`
	Size           int64  `json:"size"`
	ArchivoID      string `json:"archivoId"`   // identificador estable en el almacén
	URLVista       string `json:"urlVista"`    // link de visualización
	URLDescarga    string `json:"urlDescarga"` // link de descarga
}

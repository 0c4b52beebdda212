package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tu-usuario/proveedores-api/internal/application/dto"
)

// MaxPDFSize tamaño máximo por archivo adjunto: 15 MB.
const MaxPDFSize = 15 * 1024 * 1024

const pdfMimeType = "application/pdf"

// Errores de validación de adjuntos; se reportan como VALIDATION al cliente.
var (
	ErrArchivoNoPDF     = errors.New("solo se permiten archivos PDF")
	ErrArchivoMuyGrande = fmt.Errorf("el archivo excede el tamaño máximo de %d MB", MaxPDFSize/(1024*1024))
)

// leerAdjuntos valida y lee todos los archivos del formulario multipart, sin
// importar el name del input (el backend usa el name como campo del
// documento). Un archivo es válido solo si declara application/pdf Y tiene
// extensión .pdf; una discrepancia entre ambos lo rechaza.
//
// Los campos se procesan en orden alfabético para que el orden de los
// documentos del registro sea estable.
func leerAdjuntos(form *multipart.Form) ([]dto.ArchivoAdjunto, error) {
	if form == nil || len(form.File) == 0 {
		return nil, nil
	}

	campos := make([]string, 0, len(form.File))
	for campo := range form.File {
		campos = append(campos, campo)
	}
	sort.Strings(campos)

	var adjuntos []dto.ArchivoAdjunto
	for _, campo := range campos {
		for _, fh := range form.File[campo] {
			adjunto, err := leerAdjunto(campo, fh)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", campo, err)
			}
			adjuntos = append(adjuntos, *adjunto)
		}
	}
	return adjuntos, nil
}

func leerAdjunto(campo string, fh *multipart.FileHeader) (*dto.ArchivoAdjunto, error) {
	mimeType := fh.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if mimeType != pdfMimeType || ext != ".pdf" {
		return nil, ErrArchivoNoPDF
	}
	if fh.Size > MaxPDFSize {
		return nil, ErrArchivoMuyGrande
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir adjunto: %w", err)
	}
	defer f.Close()

	contenido, err := io.ReadAll(io.LimitReader(f, MaxPDFSize+1))
	if err != nil {
		return nil, fmt.Errorf("leer adjunto: %w", err)
	}
	if int64(len(contenido)) > MaxPDFSize {
		return nil, ErrArchivoMuyGrande
	}

	return &dto.ArchivoAdjunto{
		Campo:          campo,
		NombreOriginal: fh.Filename,
		MimeType:       mimeType,
		Size:           int64(len(contenido)),
		Contenido:      contenido,
	}, nil
}

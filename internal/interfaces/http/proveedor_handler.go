package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/proveedores-api/internal/application/dto"
	"github.com/tu-usuario/proveedores-api/internal/application/proveedor"
	"github.com/tu-usuario/proveedores-api/internal/domain"
)

// ProveedorHandler maneja las peticiones HTTP de proveedores: el alta pública
// desde el formulario y las operaciones del panel.
type ProveedorHandler struct {
	uc   *proveedor.ProveedorUseCase
	hoja *proveedor.HojaUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *proveedor.ProveedorUseCase, hoja *proveedor.HojaUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc, hoja: hoja}
}

// ExistePorRFC godoc
// @Summary      Chequeo previo de RFC duplicado
// @Tags         proveedores
// @Produce      json
// @Param        rfc  query  string  true  "RFC a verificar"
// @Success      200  {object}  dto.ExisteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/proveedores/existe [get]
func (h *ProveedorHandler) ExistePorRFC(c *fiber.Ctx) error {
	rfc := c.Query("rfc")
	if rfc == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rfc es requerido"})
	}
	existe, err := h.uc.ExistePorRFC(rfc)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rfc es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ExisteResponse{Existe: existe})
}

// Crear godoc
// @Summary      Alta de proveedor con sus PDF adjuntos
// @Tags         proveedores
// @Accept       multipart/form-data
// @Produce      json
// @Param        tipo  formData  string  true  "fisica | moral"
// @Success      201  {object}  entity.Proveedor
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba un formulario multipart"})
	}

	campos := make(map[string]string, len(form.Value))
	for clave, valores := range form.Value {
		if len(valores) > 0 {
			campos[clave] = valores[0]
		}
	}
	tipo := campos["tipo"]

	adjuntos, err := leerAdjuntos(form)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	p, err := h.uc.Crear(c.Context(), tipo, campos, adjuntos)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser 'fisica' o 'moral'"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROVEEDOR_DUPLICADO", Message: "Ya existe un proveedor con el mismo RFC"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// Listar godoc
// @Summary      Listado de proveedores para el panel (más recientes primero)
// @Tags         proveedores
// @Produce      json
// @Success      200  {object}  dto.ListaProveedoresResponse
// @Router       /api/proveedores [get]
func (h *ProveedorHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ListaProveedoresResponse{Total: len(list), Proveedores: list})
}

// ObtenerPorID godoc
// @Summary      Detalle de un proveedor
// @Tags         proveedores
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  entity.Proveedor
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [get]
func (h *ProveedorHandler) ObtenerPorID(c *fiber.Ctx) error {
	p, err := h.uc.ObtenerPorID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(p)
}

// DescargarHoja godoc
// @Summary      Hoja de proveedor en PDF
// @Tags         proveedores
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id}/hoja [get]
func (h *ProveedorHandler) DescargarHoja(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.hoja.DescargarHoja(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdfBytes)
}

// ActualizarEstatus godoc
// @Summary      Cambio de estatus de revisión
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.ActualizarEstatusRequest  true  "pendiente_revision | aprobado | rechazado"
// @Success      200  {object}  entity.Proveedor
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id}/estatus [patch]
func (h *ProveedorHandler) ActualizarEstatus(c *fiber.Ctx) error {
	var in dto.ActualizarEstatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Estatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estatus es requerido"})
	}
	p, err := h.uc.ActualizarEstatus(c.Params("id"), in.Estatus)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estatus no válido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(p)
}

// Eliminar godoc
// @Summary      Baja de proveedor (la carpeta remota se borra best-effort)
// @Tags         proveedores
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.EliminarResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proveedores/{id} [delete]
func (h *ProveedorHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.EliminarResponse{ID: id, Eliminado: true})
}

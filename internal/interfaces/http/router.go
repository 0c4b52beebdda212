package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/proveedores-api/internal/application/auth"
	"github.com/tu-usuario/proveedores-api/internal/application/proveedor"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProveedorUC *proveedor.ProveedorUseCase
	HojaUC      *proveedor.HojaUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Proveedores (público: el formulario de alta no requiere sesión;
	// se puede proteger el panel con AuthMiddleware(deps.JWTSecret))
	proveedores := api.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC, deps.HojaUC)

	// /existe va antes de /:id para que Fiber no lo capture como parámetro
	proveedores.Get("/existe", proveedorHandler.ExistePorRFC)
	proveedores.Post("/", proveedorHandler.Crear)
	proveedores.Get("/", proveedorHandler.Listar)
	proveedores.Get("/:id/hoja", proveedorHandler.DescargarHoja)
	proveedores.Get("/:id", proveedorHandler.ObtenerPorID)
	proveedores.Patch("/:id/estatus", proveedorHandler.ActualizarEstatus)
	proveedores.Delete("/:id", proveedorHandler.Eliminar)
}

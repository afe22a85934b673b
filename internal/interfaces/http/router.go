package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/licorera-pos/internal/application/auth"
	"github.com/tu-usuario/licorera-pos/internal/application/sync"
	"github.com/tu-usuario/licorera-pos/internal/application/usecase"
	"github.com/tu-usuario/licorera-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	SaleUC       *usecase.SaleUseCase
	AssignmentUC *usecase.AssignmentUseCase
	UserUC       *usecase.UserUseCase
	Shim         *sync.Service
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público solo el login)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (Bearer Token + sesión del servidor vigente)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC.Sessions()))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Products: catálogo visible para todos; escrituras de bodega/admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Delete)
	products.Post("/:id/restock", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Restock)

	// Sales (cualquier usuario autenticado puede vender)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)

	// Assignments (bodega/admin asignan; todos consultan)
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Get("/", assignmentHandler.List)
	assignments.Get("/attendants", assignmentHandler.Attendants)
	assignments.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), assignmentHandler.Create)
	assignments.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), assignmentHandler.Remove)

	// Inventory (movimientos locales)
	inventoryHandler := NewInventoryHandler(deps.Shim)
	protected.Get("/inventory", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.List)

	// Users + actividad (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC.Activity())
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Put("/:id/status", userHandler.SetStatus)
	users.Post("/:id/reset-password", authHandler.AdminResetPassword)

	protected.Get("/activity", RequireRole(entity.RoleAdmin), userHandler.ActivityLogs)
}

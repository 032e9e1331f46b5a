package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alcaldia-digital/patrimonio-api/internal/application/auth"
	"github.com/alcaldia-digital/patrimonio-api/internal/application/inventory"
	"github.com/alcaldia-digital/patrimonio-api/internal/application/movement"
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	MovementUC  *movement.MovementUseCase
	ActaUC      *movement.ActaUseCase
	InventoryUC *inventory.InventoryUseCase
	DetailUC    *inventory.DetailUseCase
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

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/refresh", authHandler.Refresh)
	protected.Get("/auth/me", authHandler.Me)

	// Los roles consulta solo leen; admin y patrimonio operan.
	operate := RequireRole(entity.RoleAdmin, entity.RolePatrimonio)

	// Movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.ActaUC)
	movements.Get("/count", movementHandler.Count)
	movements.Get("/deleted", movementHandler.ListDeleted)
	movements.Get("/", movementHandler.List)
	movements.Post("/", operate, movementHandler.Create)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", operate, movementHandler.Update)
	movements.Delete("/:id", operate, movementHandler.Delete)
	movements.Post("/:id/restore", operate, movementHandler.Restore)
	movements.Post("/:id/approve", operate, movementHandler.Approve)
	movements.Post("/:id/reject", operate, movementHandler.Reject)
	movements.Post("/:id/in-process", operate, movementHandler.MarkInProcess)
	movements.Post("/:id/complete", operate, movementHandler.Complete)
	movements.Post("/:id/cancel", operate, movementHandler.Cancel)
	movements.Get("/:id/acta", movementHandler.Acta)

	// Consultas derivadas por bien (protegido)
	assets := protected.Group("/assets")
	assets.Get("/:assetId/origin", movementHandler.InferOrigin)
	assets.Get("/:assetId/timeline", movementHandler.Timeline)

	// Inventories (protegido)
	inventories := protected.Group("/inventories")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.DetailUC)
	inventories.Get("/", inventoryHandler.List)
	inventories.Post("/", operate, inventoryHandler.Create)
	inventories.Get("/:id", inventoryHandler.GetByID)
	inventories.Put("/:id", operate, inventoryHandler.Update)
	inventories.Delete("/:id", operate, inventoryHandler.Delete)
	inventories.Post("/:id/start", operate, inventoryHandler.Start)
	inventories.Post("/:id/complete", operate, inventoryHandler.Complete)
	inventories.Post("/:id/cancel", operate, inventoryHandler.Cancel)
	inventories.Get("/:id/details", inventoryHandler.ListDetails)
	inventories.Post("/:id/details", operate, inventoryHandler.CreateDetail)
	inventories.Put("/:id/details/:detailId", operate, inventoryHandler.UpdateDetail)
	inventories.Delete("/:id/details/:detailId", operate, inventoryHandler.DeleteDetail)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/leadscope-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LeadUC    *usecase.LeadUseCase
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todas las rutas de /api requieren
// Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Sesión del actor
	authGroup := api.Group("/auth")
	userHandler := NewUserHandler(deps.UserUC)
	authGroup.Post("/session", userHandler.SaveSession)

	// Leads
	leads := api.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Get("/", leadHandler.List)
	leads.Get("/categories", leadHandler.Categories)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Delete("/:id", leadHandler.Delete)
	leads.Post("/:id/contacted", leadHandler.MarkContacted)

	// Notas
	noteHandler := NewNoteHandler(deps.LeadUC)
	leads.Get("/:id/notes", noteHandler.ListByLead)
	leads.Post("/:id/notes", noteHandler.Create)
	notes := api.Group("/notes")
	notes.Put("/:id", noteHandler.Update)
	notes.Delete("/:id", noteHandler.Delete)
}

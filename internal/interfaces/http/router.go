package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventanilla-api/internal/application/audit"
	"github.com/jhoicas/Ventanilla-api/internal/application/auth"
	"github.com/jhoicas/Ventanilla-api/internal/application/card"
	"github.com/jhoicas/Ventanilla-api/internal/application/customer"
	"github.com/jhoicas/Ventanilla-api/internal/application/onlinemode"
	"github.com/jhoicas/Ventanilla-api/internal/application/usecase"
	"github.com/jhoicas/Ventanilla-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	SearchUC   *customer.SearchUseCase
	DetailUC   *customer.DetailUseCase
	CardUC     *card.CardUseCase
	AuditUC    *audit.RecordUseCase
	LocationUC *usecase.LocationUseCase
	OnlineMode *onlinemode.Service
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Modo en línea (público: la terminal lo consulta antes de iniciar sesión)
	onlineHandler := NewOnlineHandler(deps.OnlineMode)
	api.Get("/online-mode", onlineHandler.Get)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de cajero)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleCajero, jwt.RoleSupervisor))

	// Bitácora: fuera de la compuerta de modo en línea, va antes del grupo registry
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Post("/audit", auditHandler.Record)

	// Rutas que consultan el registro: solo en modo en línea
	registry := protected.Group("/", RequireOnlineMode(deps.OnlineMode))

	customers := registry.Group("/customers")
	customerHandler := NewCustomerHandler(deps.SearchUC, deps.DetailUC, deps.CardUC, deps.AuditUC)
	customers.Post("/search", customerHandler.Search)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/:id/select", customerHandler.Select)
	customers.Get("/:id/cards", customerHandler.ListCards)

	cards := registry.Group("/cards")
	cardHandler := NewCardHandler(deps.CardUC)
	cards.Get("/:id", cardHandler.GetByID)
	cards.Post("/:id/select", cardHandler.Select)

	locations := registry.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/states", locationHandler.ListStates)
	locations.Get("/states/:id/municipalities", locationHandler.ListMunicipalities)
	locations.Get("/municipalities/:id/neighborhoods", locationHandler.ListNeighborhoods)
}

package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/suministros-api/internal/application/acceptance"
	"github.com/tu-usuario/suministros-api/internal/application/auth"
	"github.com/tu-usuario/suministros-api/internal/application/hierarchy"
	"github.com/tu-usuario/suministros-api/internal/application/orders"
	"github.com/tu-usuario/suministros-api/internal/application/usecase"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/infrastructure/bff"
	"github.com/tu-usuario/suministros-api/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AcceptanceUC *acceptance.UseCase
	HierarchyUC  *hierarchy.UseCase
	OrderUC      *orders.UseCase
	CustomerUC   *usecase.CustomerUseCase
	PaymentUC    *usecase.PaymentUseCase
	ProfileUC    *usecase.ProfileUseCase
	DashboardUC  *usecase.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	BFFProxy     *bff.Proxy
	Hub          *ws.Hub
	JWTSecret    string
	ServiceName  string
	Environment  string
	UploadDir    string
	UploadPath   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público)
	healthHandler := NewHealthHandler(deps.ServiceName, deps.Environment)
	app.Get("/health", healthHandler.Check)

	// Fotos de evidencia servidas como estático
	if deps.UploadDir != "" {
		app.Static(deps.UploadPath, deps.UploadDir)
	}

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	authMW := AuthMiddleware(deps.JWTSecret)

	// Recepciones (protegido; envoltorio {success,data,message})
	acc := api.Group("/acceptance", authMW)
	acceptanceHandler := NewAcceptanceHandler(deps.AcceptanceUC)
	acc.Get("/", acceptanceHandler.List)
	acc.Post("/", acceptanceHandler.Create)
	acc.Post("/upload-photo", acceptanceHandler.UploadPhoto)
	acc.Get("/order/:orderId", acceptanceHandler.ListByOrder)
	acc.Get("/:id", acceptanceHandler.GetByID)
	acc.Put("/:id", acceptanceHandler.Update)
	acc.Put("/:id/complete", acceptanceHandler.Complete)
	acc.Get("/:id/receipt", acceptanceHandler.Receipt)

	// Jerarquía de clientes (protegido; escritura solo admin)
	hier := app.Group("/v2/hierarchy", authMW)
	hierarchyHandler := NewHierarchyHandler(deps.HierarchyUC)
	hier.Get("/tree", hierarchyHandler.Tree)
	hier.Get("/search", hierarchyHandler.Search)
	hier.Get("/nodes/:id", hierarchyHandler.GetNode)
	adminOnly := RequireRole(entity.RoleAdmin)
	hier.Post("/nodes", adminOnly, hierarchyHandler.CreateNode)
	hier.Put("/nodes/:id", adminOnly, hierarchyHandler.UpdateNode)
	hier.Delete("/nodes/:id", adminOnly, hierarchyHandler.DeleteNode)

	// BFF passthrough hacia el servicio de jerarquía (protegido)
	bffHandler := NewBFFHandler(deps.BFFProxy)
	api.All("/bff/*", authMW, bffHandler.Forward)

	// Órdenes (protegido; cambio de estado solo admin/manager)
	ordersGroup := api.Group("/orders", authMW)
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Post("/import", orderHandler.Import)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleManager), orderHandler.ChangeStatus)

	// WebSocket de eventos de órdenes (protegido; el auth corre antes del upgrade)
	api.Use("/ws/orders", authMW, func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	api.Get("/ws/orders", websocket.New(deps.Hub.Handler()))

	// Clientes (protegido)
	customers := api.Group("/customers", authMW)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), customerHandler.Delete)

	// Pagos (protegido)
	payments := api.Group("/payments", authMW)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)
	payments.Get("/summary", paymentHandler.Summary)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/:id", paymentHandler.GetByID)

	// Perfil (protegido)
	profile := api.Group("/profile", authMW)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Put("/password", profileHandler.ChangePassword)

	// Dashboard (protegido)
	dashboard := api.Group("/dashboard", authMW)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/", dashboardHandler.Summary)
	dashboard.Get("/summary", dashboardHandler.Summary)
}

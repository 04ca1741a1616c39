package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/boutique-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Staff       *handlers.StaffHandler
	Orders      *handlers.OrdersHandler
	Worklog     *handlers.WorklogHandler
	Performance *handlers.PerformanceHandler
	Dashboard   *handlers.DashboardHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/staff", cfg.Staff.ListStaff)

	orders := app.Group("/orders")
	orders.Post("", cfg.Orders.CreateOrder)
	orders.Get("", cfg.Orders.ListOrders)
	orders.Get("/:id", cfg.Orders.GetOrder)
	orders.Patch("/:id/stage", cfg.Orders.UpdateStage)
	orders.Patch("/:id/tailor", cfg.Orders.UpdateTailor)

	worklog := app.Group("/worklog")
	worklog.Post("", cfg.Worklog.LogWork)
	worklog.Get("", cfg.Worklog.ListByDateRange)
	worklog.Get("/staff/:name", cfg.Worklog.ListByStaff)

	performance := app.Group("/performance")
	performance.Get("/:role/daily", cfg.Performance.Daily)
	performance.Get("/:role/range", cfg.Performance.Range)

	app.Get("/dashboard", cfg.Dashboard.Summary)
}

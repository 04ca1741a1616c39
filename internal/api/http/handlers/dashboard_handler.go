package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/boutique-service/internal/service"
)

// DashboardHandler serves the derived dashboard view.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Summary GET /dashboard. The reference date defaults to the current date
// here at the edge; the aggregator always receives it explicitly.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	today := c.Query("today")
	if today == "" {
		today = time.Now().Format("2006-01-02")
	}

	summary, err := h.service.Summary(c.UserContext(), today)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": summary})
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/boutique-service/internal/api/dto"
	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/service"
)

// PerformanceHandler serves per-staff performance rollups.
type PerformanceHandler struct {
	service *service.PerformanceService
}

// NewPerformanceHandler constructs handler.
func NewPerformanceHandler(performanceService *service.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{service: performanceService}
}

// Daily GET /performance/:role/daily. Defaults to the current date; the
// aggregation core itself never reads the clock.
func (h *PerformanceHandler) Daily(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	rows, err := h.service.DailyPerformance(c.UserContext(), domain.StaffRole(c.Params("role")), date)
	if err != nil {
		return err
	}

	items := make([]dto.DailyPerformanceResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.DailyPerformanceResponse{
			StaffName: row.StaffName,
			ReportsTo: row.ReportsTo,
			Counts:    workTypeCounts(row.Counts),
		})
	}
	return c.JSON(fiber.Map{"data": items, "date": date})
}

// Range GET /performance/:role/range.
func (h *PerformanceHandler) Range(c *fiber.Ctx) error {
	rows, err := h.service.RangePerformance(c.UserContext(),
		domain.StaffRole(c.Params("role")), c.Query("from"), c.Query("to"))
	if err != nil {
		return err
	}

	items := make([]dto.RangePerformanceResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.RangePerformanceResponse{
			StaffName:   row.StaffName,
			ReportsTo:   row.ReportsTo,
			Counts:      workTypeCounts(row.Counts),
			Days:        row.Days,
			TotalOrders: row.TotalOrders,
			PerDayRate:  row.PerDayRate,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

func workTypeCounts(counts []service.WorkTypeCount) []dto.WorkTypeCountResponse {
	items := make([]dto.WorkTypeCountResponse, 0, len(counts))
	for _, count := range counts {
		items = append(items, dto.WorkTypeCountResponse{
			WorkType: count.WorkType,
			Count:    count.Count,
			Target:   count.Target,
		})
	}
	return items
}

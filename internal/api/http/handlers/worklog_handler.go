package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/boutique-service/internal/api/dto"
	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/service"
	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

// WorklogHandler manages work ledger endpoints.
type WorklogHandler struct {
	service *service.WorklogService
}

// NewWorklogHandler constructs handler.
func NewWorklogHandler(worklogService *service.WorklogService) *WorklogHandler {
	return &WorklogHandler{service: worklogService}
}

// LogWork POST /worklog.
func (h *WorklogHandler) LogWork(c *fiber.Ctx) error {
	var req dto.LogWorkRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.WorkLogInput{
		WorkDate:  req.WorkDate,
		OrderID:   req.OrderID,
		StaffName: req.StaffName,
		Role:      req.Role,
		WorkType:  req.WorkType,
		Notes:     req.Notes,
	}
	event, err := h.service.LogWork(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": workEventResponse(event)})
}

// ListByStaff GET /worklog/staff/:name.
func (h *WorklogHandler) ListByStaff(c *fiber.Ctx) error {
	var workDate *string
	if dateStr := c.Query("date"); dateStr != "" {
		workDate = &dateStr
	}

	result, err := h.service.QueryByStaff(c.UserContext(), c.Params("name"), workDate)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": workEventResponses(result)})
}

// ListByDateRange GET /worklog.
func (h *WorklogHandler) ListByDateRange(c *fiber.Ctx) error {
	result, err := h.service.QueryByDateRange(c.UserContext(), c.Query("from"), c.Query("to"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": workEventResponses(result)})
}

func workEventResponse(event *domain.WorkEvent) dto.WorkEventResponse {
	return dto.WorkEventResponse{
		ID:        event.ID,
		WorkDate:  event.WorkDate,
		OrderID:   event.OrderID,
		StaffName: event.StaffName,
		Role:      event.Role,
		WorkType:  event.WorkType,
		Notes:     event.Notes,
	}
}

func workEventResponses(result []domain.WorkEvent) []dto.WorkEventResponse {
	items := make([]dto.WorkEventResponse, 0, len(result))
	for i := range result {
		items = append(items, workEventResponse(&result[i]))
	}
	return items
}

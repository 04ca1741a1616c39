package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/boutique-service/internal/api/dto"
	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/service"
	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

// OrdersHandler manages order endpoints.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// CreateOrder POST /orders.
func (h *OrdersHandler) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.OrderCreateInput{
		OrderNumber:     req.OrderNumber,
		ClientName:      req.ClientName,
		Phone:           req.Phone,
		OrderDate:       req.OrderDate,
		DueDate:         req.DueDate,
		NeedsDyeing:     req.NeedsDyeing,
		NeedsEmbroidery: req.NeedsEmbroidery,
		NeedsMarket:     req.NeedsMarket,
		MasterAssigned:  req.MasterAssigned,
		TailorAssigned:  req.TailorAssigned,
		Comments:        req.Comments,
	}
	order, err := h.service.CreateOrder(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": orderResponse(order)})
}

// ListOrders GET /orders.
func (h *OrdersHandler) ListOrders(c *fiber.Ctx) error {
	var stage *domain.Stage
	if stageStr := c.Query("stage"); stageStr != "" {
		parsed := domain.Stage(stageStr)
		stage = &parsed
	}

	orders, err := h.service.ListOrders(c.UserContext(), stage)
	if err != nil {
		return err
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, orderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetOrder GET /orders/:id.
func (h *OrdersHandler) GetOrder(c *fiber.Ctx) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}
	order, err := h.service.GetOrder(c.UserContext(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(order)})
}

// UpdateStage PATCH /orders/:id/stage.
func (h *OrdersHandler) UpdateStage(c *fiber.Ctx) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	order, err := h.service.UpdateStage(c.UserContext(), orderID, req.Stage)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(order)})
}

// UpdateTailor PATCH /orders/:id/tailor.
func (h *OrdersHandler) UpdateTailor(c *fiber.Ctx) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTailorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	order, err := h.service.UpdateTailor(c.UserContext(), orderID, req.Tailor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(order)})
}

func parseOrderID(c *fiber.Ctx) (int64, error) {
	orderID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return 0, apperrors.NewValidationError("order id must be a positive integer",
			map[string]any{"field": "id", "value": c.Params("id")})
	}
	return orderID, nil
}

func orderResponse(order *domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		ClientName:      order.ClientName,
		Phone:           order.Phone,
		OrderDate:       order.OrderDate,
		DueDate:         order.DueDate,
		NeedsDyeing:     order.NeedsDyeing,
		NeedsEmbroidery: order.NeedsEmbroidery,
		NeedsMarket:     order.NeedsMarket,
		MasterAssigned:  order.MasterAssigned,
		TailorAssigned:  order.TailorAssigned,
		CurrentStage:    order.CurrentStage,
		Comments:        order.Comments,
		LastUpdated:     order.LastUpdated,
	}
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/boutique-service/internal/api/dto"
	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/service"
)

// StaffHandler serves the staff directory.
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{service: staffService}
}

// ListStaff GET /staff.
func (h *StaffHandler) ListStaff(c *fiber.Ctx) error {
	var role *domain.StaffRole
	if roleStr := c.Query("role"); roleStr != "" {
		parsed := domain.StaffRole(roleStr)
		role = &parsed
	}

	members, err := h.service.ListStaff(c.UserContext(), role)
	if err != nil {
		return err
	}

	items := make([]dto.StaffResponse, 0, len(members))
	for _, member := range members {
		items = append(items, dto.StaffResponse{
			Name:      member.Name,
			Role:      member.Role,
			ReportsTo: member.ReportsTo,
			Active:    member.Active,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

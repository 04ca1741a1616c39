package dto

import (
	"time"

	"github.com/spec-kit/boutique-service/internal/domain"
)

// CreateOrderRequest payload for order intake.
type CreateOrderRequest struct {
	OrderNumber     string  `json:"order_number"`
	ClientName      string  `json:"client_name"`
	Phone           string  `json:"phone"`
	OrderDate       string  `json:"order_date"`
	DueDate         string  `json:"due_date"`
	NeedsDyeing     bool    `json:"needs_dyeing"`
	NeedsEmbroidery bool    `json:"needs_embroidery"`
	NeedsMarket     bool    `json:"needs_market"`
	MasterAssigned  string  `json:"master_assigned"`
	TailorAssigned  *string `json:"tailor_assigned,omitempty"`
	Comments        string  `json:"comments"`
}

// UpdateStageRequest payload for stage changes.
type UpdateStageRequest struct {
	Stage domain.Stage `json:"stage"`
}

// UpdateTailorRequest payload for tailor reassignment.
type UpdateTailorRequest struct {
	Tailor string `json:"tailor"`
}

// OrderResponse payload.
type OrderResponse struct {
	ID              int64        `json:"id"`
	OrderNumber     string       `json:"order_number"`
	ClientName      string       `json:"client_name"`
	Phone           string       `json:"phone"`
	OrderDate       string       `json:"order_date"`
	DueDate         string       `json:"due_date"`
	NeedsDyeing     bool         `json:"needs_dyeing"`
	NeedsEmbroidery bool         `json:"needs_embroidery"`
	NeedsMarket     bool         `json:"needs_market"`
	MasterAssigned  string       `json:"master_assigned"`
	TailorAssigned  *string      `json:"tailor_assigned,omitempty"`
	CurrentStage    domain.Stage `json:"current_stage"`
	Comments        string       `json:"comments"`
	LastUpdated     time.Time    `json:"last_updated"`
}

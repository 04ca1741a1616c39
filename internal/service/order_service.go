package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/events"
	"github.com/spec-kit/boutique-service/internal/repository"
	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

// OrderService coordinates the order lifecycle over the fixed stage list.
type OrderService struct {
	orders     repository.OrderRepository
	policy     ValidationPolicy
	dispatcher events.Dispatcher
	now        func() time.Time
}

// OrderDependencies bundles collaborators for the order service.
type OrderDependencies struct {
	OrderRepo  repository.OrderRepository
	Policy     ValidationPolicy
	Dispatcher events.Dispatcher
}

// OrderCreateInput describes order intake payload.
type OrderCreateInput struct {
	OrderNumber     string
	ClientName      string
	Phone           string
	OrderDate       string
	DueDate         string
	NeedsDyeing     bool
	NeedsEmbroidery bool
	NeedsMarket     bool
	MasterAssigned  string
	TailorAssigned  *string
	Comments        string
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	policy := deps.Policy
	if policy == nil {
		policy = NewPermissivePolicy()
	}
	return &OrderService{
		orders:     deps.OrderRepo,
		policy:     policy,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// CreateOrder validates intake fields and persists a new order at the first
// production stage.
func (s *OrderService) CreateOrder(ctx context.Context, input OrderCreateInput) (*domain.Order, error) {
	if strings.TrimSpace(input.OrderNumber) == "" {
		return nil, apperrors.NewValidationError("order number is required",
			map[string]any{"field": "order_number"})
	}
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, apperrors.NewValidationError("client name is required",
			map[string]any{"field": "client_name"})
	}
	if strings.TrimSpace(input.MasterAssigned) == "" {
		return nil, apperrors.NewValidationError("master assignment is required",
			map[string]any{"field": "master_assigned"})
	}
	if err := checkDateFormat("order_date", input.OrderDate); err != nil {
		return nil, err
	}
	if err := checkDateFormat("due_date", input.DueDate); err != nil {
		return nil, err
	}

	tailor := input.TailorAssigned
	if tailor != nil {
		trimmed := strings.TrimSpace(*tailor)
		if trimmed == "" {
			tailor = nil
		} else {
			if err := s.policy.CheckTailorAssignment(ctx, trimmed); err != nil {
				return nil, err
			}
			tailor = &trimmed
		}
	}

	order := &domain.Order{
		OrderNumber:     strings.TrimSpace(input.OrderNumber),
		ClientName:      strings.TrimSpace(input.ClientName),
		Phone:           strings.TrimSpace(input.Phone),
		OrderDate:       input.OrderDate,
		DueDate:         input.DueDate,
		NeedsDyeing:     input.NeedsDyeing,
		NeedsEmbroidery: input.NeedsEmbroidery,
		NeedsMarket:     input.NeedsMarket,
		MasterAssigned:  strings.TrimSpace(input.MasterAssigned),
		TailorAssigned:  tailor,
		CurrentStage:    domain.FirstStage(),
		Comments:        input.Comments,
		LastUpdated:     s.now(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventOrderCreated,
		OrderID: order.ID,
		Payload: events.OrderCreatedPayload{
			OrderNumber:    order.OrderNumber,
			ClientName:     order.ClientName,
			DueDate:        order.DueDate,
			MasterAssigned: order.MasterAssigned,
			TailorAssigned: order.TailorAssigned,
			Stage:          order.CurrentStage,
		},
	})
	return order, nil
}

// ListOrders returns orders sorted by ascending due date, optionally
// restricted to one exact stage.
func (s *OrderService) ListOrders(ctx context.Context, stage *domain.Stage) ([]domain.Order, error) {
	if stage != nil && !domain.IsValidStage(*stage) {
		return nil, apperrors.NewValidationError("unknown production stage",
			map[string]any{"field": "stage", "value": *stage})
	}
	orders, err := s.orders.List(ctx, repository.OrderFilter{Stage: stage})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return orders, nil
}

// GetOrder fetches a single order.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err, orderID)
	}
	return order, nil
}

// UpdateStage moves an order to any member of the fixed stage list.
// Transitions are deliberately unrestricted: operators jump stages to fix
// mistakes or skip steps an order does not need.
func (s *OrderService) UpdateStage(ctx context.Context, orderID int64, newStage domain.Stage) (*domain.Order, error) {
	if !domain.IsValidStage(newStage) {
		return nil, apperrors.NewValidationError("unknown production stage",
			map[string]any{"field": "stage", "value": newStage})
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err, orderID)
	}

	oldStage := order.CurrentStage
	updatedAt := s.now()
	if err := s.orders.UpdateStage(ctx, orderID, newStage, updatedAt); err != nil {
		return nil, mapOrderError(err, orderID)
	}
	order.CurrentStage = newStage
	order.LastUpdated = updatedAt

	s.publish(ctx, events.Event{
		Type:    events.EventOrderStageChanged,
		OrderID: orderID,
		Payload: events.OrderStageChangedPayload{
			OldStage: oldStage,
			NewStage: newStage,
		},
	})
	return order, nil
}

// UpdateTailor assigns or reassigns the tailor on an order. Whether the name
// must be an active Tailor is decided by the configured validation policy.
func (s *OrderService) UpdateTailor(ctx context.Context, orderID int64, tailorName string) (*domain.Order, error) {
	tailorName = strings.TrimSpace(tailorName)
	if tailorName == "" {
		return nil, apperrors.NewValidationError("tailor name is required",
			map[string]any{"field": "tailor"})
	}
	if err := s.policy.CheckTailorAssignment(ctx, tailorName); err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderError(err, orderID)
	}

	oldTailor := order.TailorAssigned
	updatedAt := s.now()
	if err := s.orders.UpdateTailor(ctx, orderID, tailorName, updatedAt); err != nil {
		return nil, mapOrderError(err, orderID)
	}
	order.TailorAssigned = &tailorName
	order.LastUpdated = updatedAt

	s.publish(ctx, events.Event{
		Type:    events.EventOrderTailorChanged,
		OrderID: orderID,
		Payload: events.OrderTailorChangedPayload{
			OldTailor: oldTailor,
			NewTailor: tailorName,
		},
	})
	return order, nil
}

func mapOrderError(err error, orderID int64) error {
	if errors.Is(err, pgx.ErrNoRows) || apperrors.IsNotFound(err) {
		return apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
	}
	return apperrors.MapError(err)
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/boutique-service/internal/events"
)

// AuditService writes a structured audit trail for domain events.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventOrderCreated, a.handleEvent("OrderCreated"))
	a.dispatcher.Subscribe(events.EventOrderStageChanged, a.handleEvent("OrderStageChanged"))
	a.dispatcher.Subscribe(events.EventOrderTailorChanged, a.handleEvent("OrderTailorChanged"))
	a.dispatcher.Subscribe(events.EventWorkLogged, a.handleEvent("WorkLogged"))
	a.dispatcher.Subscribe(events.EventStaffSeeded, a.handleEvent("StaffSeeded"))
}

func (a *AuditService) handleEvent(name string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		a.logger.Info(name,
			zap.String("event_id", event.ID),
			zap.Int64("order_id", event.OrderID),
			zap.Any("payload", event.Payload))
		return nil
	}
}

package events

import (
	"time"

	"github.com/spec-kit/boutique-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderStageChanged  EventType = "order_stage_changed"
	EventOrderTailorChanged EventType = "order_tailor_changed"
	EventWorkLogged         EventType = "work_logged"
	EventStaffSeeded        EventType = "staff_seeded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OrderID   int64       `json:"order_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	OrderNumber    string       `json:"order_number"`
	ClientName     string       `json:"client_name"`
	DueDate        string       `json:"due_date,omitempty"`
	MasterAssigned string       `json:"master_assigned"`
	TailorAssigned *string      `json:"tailor_assigned,omitempty"`
	Stage          domain.Stage `json:"stage"`
}

// OrderStageChangedPayload payload.
type OrderStageChangedPayload struct {
	OldStage domain.Stage `json:"old_stage"`
	NewStage domain.Stage `json:"new_stage"`
}

// OrderTailorChangedPayload payload.
type OrderTailorChangedPayload struct {
	OldTailor *string `json:"old_tailor,omitempty"`
	NewTailor string  `json:"new_tailor"`
}

// WorkLoggedPayload payload.
type WorkLoggedPayload struct {
	WorkDate  string           `json:"work_date"`
	StaffName string           `json:"staff_name"`
	Role      domain.StaffRole `json:"role"`
	WorkType  domain.WorkType  `json:"work_type"`
}

// StaffSeededPayload payload.
type StaffSeededPayload struct {
	Inserted int `json:"inserted"`
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/events"
	"github.com/spec-kit/boutique-service/internal/repository"
	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

// WorklogService guards the append-only work ledger.
type WorklogService struct {
	worklog    repository.WorklogRepository
	policy     ValidationPolicy
	dispatcher events.Dispatcher
}

// WorklogDependencies bundles collaborators for the worklog service.
type WorklogDependencies struct {
	WorklogRepo repository.WorklogRepository
	Policy      ValidationPolicy
	Dispatcher  events.Dispatcher
}

// WorkLogInput describes a work entry payload.
type WorkLogInput struct {
	WorkDate  string
	OrderID   int64
	StaffName string
	Role      domain.StaffRole
	WorkType  domain.WorkType
	Notes     string
}

// NewWorklogService constructs the service.
func NewWorklogService(deps WorklogDependencies) *WorklogService {
	policy := deps.Policy
	if policy == nil {
		policy = NewPermissivePolicy()
	}
	return &WorklogService{
		worklog:    deps.WorklogRepo,
		policy:     policy,
		dispatcher: deps.Dispatcher,
	}
}

// LogWork appends one event to the ledger. The work type must belong to the
// closed enumeration for the given role; order and staff references are
// checked only as far as the configured validation policy demands.
func (s *WorklogService) LogWork(ctx context.Context, input WorkLogInput) (*domain.WorkEvent, error) {
	if input.WorkDate == "" {
		return nil, apperrors.NewValidationError("work date is required",
			map[string]any{"field": "work_date"})
	}
	if _, err := parseDate("work_date", input.WorkDate); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.StaffName) == "" {
		return nil, apperrors.NewValidationError("staff name is required",
			map[string]any{"field": "staff_name"})
	}
	if !domain.IsValidStaffRole(input.Role) {
		return nil, apperrors.NewValidationError("unknown staff role",
			map[string]any{"field": "role", "value": input.Role})
	}
	if !domain.IsValidWorkType(input.Role, input.WorkType) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("work type %q is not valid for role %s", input.WorkType, input.Role),
			map[string]any{
				"field":   "work_type",
				"value":   input.WorkType,
				"allowed": domain.WorkTypesByRole[input.Role],
			})
	}
	if err := s.policy.CheckWorkReferences(ctx, input.OrderID, input.StaffName); err != nil {
		return nil, err
	}

	event := &domain.WorkEvent{
		WorkDate:  input.WorkDate,
		OrderID:   input.OrderID,
		StaffName: strings.TrimSpace(input.StaffName),
		Role:      input.Role,
		WorkType:  input.WorkType,
		Notes:     input.Notes,
	}
	if err := s.worklog.Append(ctx, event); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventWorkLogged,
		OrderID: event.OrderID,
		Payload: events.WorkLoggedPayload{
			WorkDate:  event.WorkDate,
			StaffName: event.StaffName,
			Role:      event.Role,
			WorkType:  event.WorkType,
		},
	})
	return event, nil
}

// QueryByStaff returns all events for one staff member, optionally filtered
// to a single date.
func (s *WorklogService) QueryByStaff(ctx context.Context, staffName string, workDate *string) ([]domain.WorkEvent, error) {
	if strings.TrimSpace(staffName) == "" {
		return nil, apperrors.NewValidationError("staff name is required",
			map[string]any{"field": "staff_name"})
	}
	if workDate != nil {
		if _, err := parseDate("work_date", *workDate); err != nil {
			return nil, err
		}
	}
	result, err := s.worklog.ListByStaff(ctx, staffName, workDate)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return result, nil
}

// QueryByDateRange returns all events in the inclusive [startDate, endDate]
// range across all staff. An inverted range is a validation failure.
func (s *WorklogService) QueryByDateRange(ctx context.Context, startDate, endDate string) ([]domain.WorkEvent, error) {
	start, err := parseDate("start_date", startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", endDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, apperrors.NewValidationError("start date must not be after end date",
			map[string]any{"field": "start_date", "start_date": startDate, "end_date": endDate})
	}

	result, err := s.worklog.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return result, nil
}

func (s *WorklogService) publish(ctx context.Context, event events.Event) {
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

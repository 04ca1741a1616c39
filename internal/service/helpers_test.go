package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/repository"
	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	require.Equal(t, code, domainErr.Code)
}

var _ repository.StaffRepository = &memStaffRepo{}

type memStaffRepo struct {
	members []domain.StaffMember
}

func (m *memStaffRepo) Insert(ctx context.Context, staff *domain.StaffMember) error {
	for _, existing := range m.members {
		if existing.Name == staff.Name {
			return apperrors.NewConflict("staff name already exists", map[string]any{"name": staff.Name})
		}
	}
	m.members = append(m.members, *staff)
	return nil
}

func (m *memStaffRepo) List(ctx context.Context, filter repository.StaffFilter) ([]domain.StaffMember, error) {
	var result []domain.StaffMember
	for _, member := range m.members {
		if filter.Role != nil && member.Role != *filter.Role {
			continue
		}
		if filter.Active != nil && member.Active != *filter.Active {
			continue
		}
		result = append(result, member)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if filter.Role == nil && result[i].Role != result[j].Role {
			return result[i].Role < result[j].Role
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *memStaffRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.members)), nil
}

var _ repository.OrderRepository = &memOrderRepo{}

type memOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[int64]*domain.Order)}
}

func (m *memOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	m.nextID++
	order.ID = m.nextID
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *memOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *order
	return &clone, nil
}

func (m *memOrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	var result []domain.Order
	for _, order := range m.orders {
		if filter.Stage != nil && order.CurrentStage != *filter.Stage {
			continue
		}
		result = append(result, *order)
	}
	sort.SliceStable(result, func(i, j int) bool {
		left, right := result[i].DueDate, result[j].DueDate
		if (left == "") != (right == "") {
			return right == "" // unset due dates sort last
		}
		if left != right {
			return left < right
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *memOrderRepo) UpdateStage(ctx context.Context, id int64, stage domain.Stage, updatedAt time.Time) error {
	order, ok := m.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.CurrentStage = stage
	order.LastUpdated = updatedAt
	return nil
}

func (m *memOrderRepo) UpdateTailor(ctx context.Context, id int64, tailor string, updatedAt time.Time) error {
	order, ok := m.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	order.TailorAssigned = &tailor
	order.LastUpdated = updatedAt
	return nil
}

var _ repository.WorklogRepository = &memWorklogRepo{}

type memWorklogRepo struct {
	events []domain.WorkEvent
	nextID int64
}

func (m *memWorklogRepo) Append(ctx context.Context, event *domain.WorkEvent) error {
	m.nextID++
	event.ID = m.nextID
	m.events = append(m.events, *event)
	return nil
}

func (m *memWorklogRepo) ListByStaff(ctx context.Context, staffName string, workDate *string) ([]domain.WorkEvent, error) {
	var result []domain.WorkEvent
	for _, event := range m.events {
		if event.StaffName != staffName {
			continue
		}
		if workDate != nil && event.WorkDate != *workDate {
			continue
		}
		result = append(result, event)
	}
	return result, nil
}

func (m *memWorklogRepo) ListByDateRange(ctx context.Context, startDate, endDate string) ([]domain.WorkEvent, error) {
	var result []domain.WorkEvent
	for _, event := range m.events {
		if event.WorkDate >= startDate && event.WorkDate <= endDate {
			result = append(result, event)
		}
	}
	return result, nil
}

package service

import (
	"context"
	"math"

	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/repository"
	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

// PerformanceService derives per-staff rollups from the work ledger.
// It holds no state of its own; every call recomputes from the ledger.
type PerformanceService struct {
	staff   repository.StaffRepository
	worklog repository.WorklogRepository
}

// NewPerformanceService constructs the service.
func NewPerformanceService(staff repository.StaffRepository, worklog repository.WorklogRepository) *PerformanceService {
	return &PerformanceService{staff: staff, worklog: worklog}
}

// WorkTypeCount is the distinct-order count for one work type, next to its
// fixed daily target (zero when the type has no target).
type WorkTypeCount struct {
	WorkType domain.WorkType
	Count    int
	Target   int
}

// DailyPerformanceRow is one staff member's distinct-order counts for a day.
type DailyPerformanceRow struct {
	StaffName string
	ReportsTo string
	Counts    []WorkTypeCount
}

// RangePerformanceRow extends the per-type counts with range totals: the
// distinct orders touched over the whole range and the per-day rate.
type RangePerformanceRow struct {
	StaffName   string
	ReportsTo   string
	Counts      []WorkTypeCount
	Days        int
	TotalOrders int
	PerDayRate  float64
}

// DailyPerformance computes distinct-order counts per work type for every
// active member of the role on a single day. Repeated logging against the
// same order counts once.
func (s *PerformanceService) DailyPerformance(ctx context.Context, role domain.StaffRole, date string) ([]DailyPerformanceRow, error) {
	if !domain.IsValidStaffRole(role) {
		return nil, apperrors.NewValidationError("unknown staff role",
			map[string]any{"field": "role", "value": role})
	}
	if _, err := parseDate("date", date); err != nil {
		return nil, err
	}

	members, err := s.activeMembers(ctx, role)
	if err != nil {
		return nil, err
	}

	rows := make([]DailyPerformanceRow, 0, len(members))
	for _, member := range members {
		events, err := s.worklog.ListByStaff(ctx, member.Name, &date)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		rows = append(rows, DailyPerformanceRow{
			StaffName: member.Name,
			ReportsTo: member.ReportsTo,
			Counts:    countDistinctOrders(events, domain.WorkTypesByRole[role]),
		})
	}
	return rows, nil
}

// RangePerformance computes per-type distinct-order counts over the
// inclusive [startDate, endDate] range, plus the total distinct orders
// touched and the per-day rate (total divided by range length, rounded to
// two decimals).
func (s *PerformanceService) RangePerformance(ctx context.Context, role domain.StaffRole, startDate, endDate string) ([]RangePerformanceRow, error) {
	if !domain.IsValidStaffRole(role) {
		return nil, apperrors.NewValidationError("unknown staff role",
			map[string]any{"field": "role", "value": role})
	}
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
	days := daysBetween(start, end)

	members, err := s.activeMembers(ctx, role)
	if err != nil {
		return nil, err
	}
	events, err := s.worklog.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	byStaff := make(map[string][]domain.WorkEvent)
	for _, event := range events {
		byStaff[event.StaffName] = append(byStaff[event.StaffName], event)
	}

	workTypes := domain.WorkTypesByRole[role]
	rows := make([]RangePerformanceRow, 0, len(members))
	for _, member := range members {
		memberEvents := byStaff[member.Name]
		total := countDistinctTotal(memberEvents, workTypes)
		rows = append(rows, RangePerformanceRow{
			StaffName:   member.Name,
			ReportsTo:   member.ReportsTo,
			Counts:      countDistinctOrders(memberEvents, workTypes),
			Days:        days,
			TotalOrders: total,
			PerDayRate:  round2(float64(total) / float64(days)),
		})
	}
	return rows, nil
}

func (s *PerformanceService) activeMembers(ctx context.Context, role domain.StaffRole) ([]domain.StaffMember, error) {
	active := true
	members, err := s.staff.List(ctx, repository.StaffFilter{Role: &role, Active: &active})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return members, nil
}

// countDistinctOrders tallies distinct order IDs per work type, in the
// enumeration's order.
func countDistinctOrders(events []domain.WorkEvent, workTypes []domain.WorkType) []WorkTypeCount {
	seen := make(map[domain.WorkType]map[int64]struct{}, len(workTypes))
	for _, workType := range workTypes {
		seen[workType] = make(map[int64]struct{})
	}
	for _, event := range events {
		if orders, ok := seen[event.WorkType]; ok {
			orders[event.OrderID] = struct{}{}
		}
	}

	counts := make([]WorkTypeCount, 0, len(workTypes))
	for _, workType := range workTypes {
		counts = append(counts, WorkTypeCount{
			WorkType: workType,
			Count:    len(seen[workType]),
			Target:   domain.DailyTargets[workType],
		})
	}
	return counts
}

// countDistinctTotal tallies distinct order IDs across all of the role's
// work types.
func countDistinctTotal(events []domain.WorkEvent, workTypes []domain.WorkType) int {
	relevant := make(map[domain.WorkType]struct{}, len(workTypes))
	for _, workType := range workTypes {
		relevant[workType] = struct{}{}
	}
	orders := make(map[int64]struct{})
	for _, event := range events {
		if _, ok := relevant[event.WorkType]; ok {
			orders[event.OrderID] = struct{}{}
		}
	}
	return len(orders)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

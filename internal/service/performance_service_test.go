package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/boutique-service/internal/domain"
)

func setupPerformanceService(t *testing.T) (*PerformanceService, *memStaffRepo, *memWorklogRepo) {
	t.Helper()
	staffRepo := &memStaffRepo{members: []domain.StaffMember{
		{Name: "Hassan", Role: domain.StaffRoleMaster, Active: true},
		{Name: "Mariswamy", Role: domain.StaffRoleMaster, Active: true},
		{Name: "Aslam", Role: domain.StaffRoleTailor, ReportsTo: "Hassan", Active: true},
	}}
	worklogRepo := &memWorklogRepo{}
	return NewPerformanceService(staffRepo, worklogRepo), staffRepo, worklogRepo
}

func appendWork(t *testing.T, repo *memWorklogRepo, staff string, role domain.StaffRole, workType domain.WorkType, date string, orderID int64) {
	t.Helper()
	err := repo.Append(context.Background(), &domain.WorkEvent{
		WorkDate: date, OrderID: orderID, StaffName: staff, Role: role, WorkType: workType,
	})
	require.NoError(t, err)
}

func countFor(counts []WorkTypeCount, workType domain.WorkType) (WorkTypeCount, bool) {
	for _, count := range counts {
		if count.WorkType == workType {
			return count, true
		}
	}
	return WorkTypeCount{}, false
}

func TestDailyPerformanceCountsDistinctOrders(t *testing.T) {
	performanceService, _, worklogRepo := setupPerformanceService(t)
	ctx := context.Background()

	// Two Marking entries against the same order on the same day count once.
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeMarking, "2024-06-10", 7)
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeMarking, "2024-06-10", 7)
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeMarking, "2024-06-10", 8)
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeCutting, "2024-06-10", 7)
	// Different day, must not leak into the daily rollup.
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeMarking, "2024-06-11", 9)

	rows, err := performanceService.DailyPerformance(ctx, domain.StaffRoleMaster, "2024-06-10")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var hassan DailyPerformanceRow
	for _, row := range rows {
		if row.StaffName == "Hassan" {
			hassan = row
		}
	}
	require.NotEmpty(t, hassan.StaffName)

	marking, ok := countFor(hassan.Counts, domain.WorkTypeMarking)
	require.True(t, ok)
	assert.Equal(t, 2, marking.Count)
	assert.Equal(t, 4, marking.Target)

	cutting, ok := countFor(hassan.Counts, domain.WorkTypeCutting)
	require.True(t, ok)
	assert.Equal(t, 1, cutting.Count)
	assert.Equal(t, 6, cutting.Target)
}

func TestDailyPerformanceTailorTargetAndReportsTo(t *testing.T) {
	performanceService, _, worklogRepo := setupPerformanceService(t)

	appendWork(t, worklogRepo, "Aslam", domain.StaffRoleTailor, domain.WorkTypeBlouseStitched, "2024-06-10", 3)

	rows, err := performanceService.DailyPerformance(context.Background(), domain.StaffRoleTailor, "2024-06-10")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Aslam", rows[0].StaffName)
	assert.Equal(t, "Hassan", rows[0].ReportsTo)

	stitched, ok := countFor(rows[0].Counts, domain.WorkTypeBlouseStitched)
	require.True(t, ok)
	assert.Equal(t, 1, stitched.Count)
	assert.Equal(t, 3, stitched.Target)
}

func TestDailyPerformanceValidation(t *testing.T) {
	performanceService, _, _ := setupPerformanceService(t)
	ctx := context.Background()

	_, err := performanceService.DailyPerformance(ctx, "Supervisor", "2024-06-10")
	requireErrorCode(t, err, "VALIDATION_FAILED")

	_, err = performanceService.DailyPerformance(ctx, domain.StaffRoleMaster, "10-06-2024")
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestRangePerformanceRate(t *testing.T) {
	performanceService, _, worklogRepo := setupPerformanceService(t)

	// 14 distinct orders marked across a 7-day range: rate must be 2.00.
	for i := 0; i < 14; i++ {
		date := fmt.Sprintf("2024-06-%02d", 10+i%7)
		appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeMarking, date, int64(100+i))
	}

	rows, err := performanceService.RangePerformance(context.Background(), domain.StaffRoleMaster, "2024-06-10", "2024-06-16")
	require.NoError(t, err)

	var hassan RangePerformanceRow
	for _, row := range rows {
		if row.StaffName == "Hassan" {
			hassan = row
		}
	}
	require.NotEmpty(t, hassan.StaffName)
	assert.Equal(t, 7, hassan.Days)
	assert.Equal(t, 14, hassan.TotalOrders)
	assert.Equal(t, 2.00, hassan.PerDayRate)

	marking, ok := countFor(hassan.Counts, domain.WorkTypeMarking)
	require.True(t, ok)
	assert.Equal(t, 14, marking.Count)
}

func TestRangePerformanceSingleDayRange(t *testing.T) {
	performanceService, _, worklogRepo := setupPerformanceService(t)

	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeCutting, "2024-06-10", 1)
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeCutting, "2024-06-10", 2)
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeCutting, "2024-06-10", 2)

	rows, err := performanceService.RangePerformance(context.Background(), domain.StaffRoleMaster, "2024-06-10", "2024-06-10")
	require.NoError(t, err)

	for _, row := range rows {
		if row.StaffName != "Hassan" {
			continue
		}
		assert.Equal(t, 1, row.Days)
		assert.Equal(t, 2, row.TotalOrders)
		assert.Equal(t, 2.00, row.PerDayRate)
	}
}

func TestRangePerformanceCountsOrderOnceAcrossDays(t *testing.T) {
	performanceService, _, worklogRepo := setupPerformanceService(t)

	// Same order marked on three different days still counts once in the range total.
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeMarking, "2024-06-10", 42)
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeMarking, "2024-06-11", 42)
	appendWork(t, worklogRepo, "Hassan", domain.StaffRoleMaster, domain.WorkTypeMarking, "2024-06-12", 42)

	rows, err := performanceService.RangePerformance(context.Background(), domain.StaffRoleMaster, "2024-06-10", "2024-06-12")
	require.NoError(t, err)

	for _, row := range rows {
		if row.StaffName != "Hassan" {
			continue
		}
		assert.Equal(t, 1, row.TotalOrders)
		assert.Equal(t, 0.33, row.PerDayRate)
	}
}

func TestRangePerformanceRejectsInvertedRange(t *testing.T) {
	performanceService, _, _ := setupPerformanceService(t)

	rows, err := performanceService.RangePerformance(context.Background(), domain.StaffRoleMaster, "2024-06-16", "2024-06-10")
	requireErrorCode(t, err, "VALIDATION_FAILED")
	assert.Nil(t, rows, "no partial result on a rejected range")
}

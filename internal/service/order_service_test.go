package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/boutique-service/internal/domain"
)

func setupOrderService(t *testing.T) (*OrderService, *memOrderRepo) {
	t.Helper()
	repo := newMemOrderRepo()
	orderService := NewOrderService(OrderDependencies{OrderRepo: repo})
	return orderService, repo
}

func validOrderInput() OrderCreateInput {
	return OrderCreateInput{
		OrderNumber:    "SLIP-101",
		ClientName:     "Meena",
		Phone:          "9876543210",
		OrderDate:      "2024-06-01",
		DueDate:        "2024-06-20",
		MasterAssigned: "Hassan",
	}
}

func TestCreateOrderStartsAtFirstStage(t *testing.T) {
	orderService, repo := setupOrderService(t)

	order, err := orderService.CreateOrder(context.Background(), validOrderInput())

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.Stages[0], order.CurrentStage)
	assert.NotZero(t, order.ID)
	assert.False(t, order.LastUpdated.IsZero())

	stored, ok := repo.orders[order.ID]
	require.True(t, ok)
	assert.Equal(t, domain.FirstStage(), stored.CurrentStage)
}

func TestCreateOrderValidation(t *testing.T) {
	orderService, repo := setupOrderService(t)
	ctx := context.Background()

	t.Run("missing order number", func(t *testing.T) {
		input := validOrderInput()
		input.OrderNumber = "  "
		_, err := orderService.CreateOrder(ctx, input)
		requireErrorCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("missing client name", func(t *testing.T) {
		input := validOrderInput()
		input.ClientName = ""
		_, err := orderService.CreateOrder(ctx, input)
		requireErrorCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("missing master", func(t *testing.T) {
		input := validOrderInput()
		input.MasterAssigned = ""
		_, err := orderService.CreateOrder(ctx, input)
		requireErrorCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("malformed due date", func(t *testing.T) {
		input := validOrderInput()
		input.DueDate = "20/06/2024"
		_, err := orderService.CreateOrder(ctx, input)
		requireErrorCode(t, err, "VALIDATION_FAILED")
	})

	assert.Empty(t, repo.orders, "no order may be persisted on validation failure")
}

func TestCreateOrderBlankTailorMeansUnassigned(t *testing.T) {
	orderService, _ := setupOrderService(t)

	blank := "   "
	input := validOrderInput()
	input.TailorAssigned = &blank

	order, err := orderService.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	assert.Nil(t, order.TailorAssigned)
}

func TestUpdateStageAllowsAnyJump(t *testing.T) {
	orderService, _ := setupOrderService(t)
	ctx := context.Background()

	order, err := orderService.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)

	// Forward jump over every intermediate stage.
	updated, err := orderService.UpdateStage(ctx, order.ID, "Delivered")
	require.NoError(t, err)
	assert.Equal(t, domain.Stage("Delivered"), updated.CurrentStage)

	// Backward jump is just as legal.
	updated, err = orderService.UpdateStage(ctx, order.ID, "Lining")
	require.NoError(t, err)
	assert.Equal(t, domain.Stage("Lining"), updated.CurrentStage)

	listed, err := orderService.ListOrders(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, domain.Stage("Lining"), listed[0].CurrentStage)
}

func TestUpdateStageSameValueIsNoop(t *testing.T) {
	orderService, _ := setupOrderService(t)
	ctx := context.Background()

	order, err := orderService.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)

	updated, err := orderService.UpdateStage(ctx, order.ID, order.CurrentStage)
	require.NoError(t, err)
	assert.Equal(t, order.CurrentStage, updated.CurrentStage)
}

func TestUpdateStageRejectsUnknownStage(t *testing.T) {
	orderService, _ := setupOrderService(t)
	ctx := context.Background()

	order, err := orderService.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)

	_, err = orderService.UpdateStage(ctx, order.ID, "Ironing")
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestUpdateStageNotFound(t *testing.T) {
	orderService, _ := setupOrderService(t)

	_, err := orderService.UpdateStage(context.Background(), 999, "Lining")
	requireErrorCode(t, err, "NOT_FOUND")
}

func TestUpdateTailorBumpsLastUpdated(t *testing.T) {
	orderService, repo := setupOrderService(t)
	ctx := context.Background()

	clock := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	orderService.now = func() time.Time { return clock }

	order, err := orderService.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)

	clock = clock.Add(time.Hour)
	updated, err := orderService.UpdateTailor(ctx, order.ID, "Aslam")
	require.NoError(t, err)
	require.NotNil(t, updated.TailorAssigned)
	assert.Equal(t, "Aslam", *updated.TailorAssigned)
	assert.True(t, updated.LastUpdated.After(order.LastUpdated))

	stored := repo.orders[order.ID]
	require.NotNil(t, stored.TailorAssigned)
	assert.Equal(t, "Aslam", *stored.TailorAssigned)
}

func TestUpdateTailorRequiresName(t *testing.T) {
	orderService, _ := setupOrderService(t)

	_, err := orderService.UpdateTailor(context.Background(), 1, "  ")
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

func TestStrictPolicyRejectsUnknownTailor(t *testing.T) {
	repo := newMemOrderRepo()
	staffRepo := &memStaffRepo{members: []domain.StaffMember{
		{Name: "Aslam", Role: domain.StaffRoleTailor, ReportsTo: "Hassan", Active: true},
		{Name: "Rashid", Role: domain.StaffRoleTailor, ReportsTo: "Shameen", Active: false},
	}}
	orderService := NewOrderService(OrderDependencies{
		OrderRepo: repo,
		Policy:    NewStrictPolicy(staffRepo, repo),
	})
	ctx := context.Background()

	order, err := orderService.CreateOrder(ctx, validOrderInput())
	require.NoError(t, err)

	_, err = orderService.UpdateTailor(ctx, order.ID, "Nobody")
	requireErrorCode(t, err, "VALIDATION_FAILED")

	// Inactive tailors are rejected too.
	_, err = orderService.UpdateTailor(ctx, order.ID, "Rashid")
	requireErrorCode(t, err, "VALIDATION_FAILED")

	updated, err := orderService.UpdateTailor(ctx, order.ID, "Aslam")
	require.NoError(t, err)
	assert.Equal(t, "Aslam", *updated.TailorAssigned)
}

func TestListOrdersSortsByDueDateUnsetLast(t *testing.T) {
	orderService, _ := setupOrderService(t)
	ctx := context.Background()

	late := validOrderInput()
	late.DueDate = "2024-07-01"
	soon := validOrderInput()
	soon.DueDate = "2024-06-05"
	unset := validOrderInput()
	unset.DueDate = ""

	first, err := orderService.CreateOrder(ctx, late)
	require.NoError(t, err)
	second, err := orderService.CreateOrder(ctx, soon)
	require.NoError(t, err)
	third, err := orderService.CreateOrder(ctx, unset)
	require.NoError(t, err)

	listed, err := orderService.ListOrders(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
	assert.Equal(t, third.ID, listed[2].ID)
}

func TestListOrdersRejectsUnknownStageFilter(t *testing.T) {
	orderService, _ := setupOrderService(t)

	bogus := domain.Stage("Pressing")
	_, err := orderService.ListOrders(context.Background(), &bogus)
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/repository"
	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

// ValidationPolicy isolates the referential checks the workshop never
// enforced: whether an assigned tailor is an active Tailor, and whether a
// work entry points at an existing order and staff member. The permissive
// policy reproduces the historical behavior; the strict policy enforces the
// references and can be swapped in without touching the storage layer.
type ValidationPolicy interface {
	CheckTailorAssignment(ctx context.Context, tailorName string) error
	CheckWorkReferences(ctx context.Context, orderID int64, staffName string) error
}

type permissivePolicy struct{}

// NewPermissivePolicy returns the policy matching the historical behavior:
// no referential checks at all.
func NewPermissivePolicy() ValidationPolicy {
	return permissivePolicy{}
}

func (permissivePolicy) CheckTailorAssignment(ctx context.Context, tailorName string) error {
	return nil
}

func (permissivePolicy) CheckWorkReferences(ctx context.Context, orderID int64, staffName string) error {
	return nil
}

type strictPolicy struct {
	staff  repository.StaffRepository
	orders repository.OrderRepository
}

// NewStrictPolicy returns a policy that verifies tailor assignments against
// the active tailor roster and work entries against existing orders and
// staff members.
func NewStrictPolicy(staff repository.StaffRepository, orders repository.OrderRepository) ValidationPolicy {
	return &strictPolicy{staff: staff, orders: orders}
}

func (p *strictPolicy) CheckTailorAssignment(ctx context.Context, tailorName string) error {
	role := domain.StaffRoleTailor
	active := true
	tailors, err := p.staff.List(ctx, repository.StaffFilter{Role: &role, Active: &active})
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	for _, tailor := range tailors {
		if tailor.Name == tailorName {
			return nil
		}
	}
	return apperrors.NewValidationError("tailor is not an active Tailor",
		map[string]any{"field": "tailor_assigned", "value": tailorName})
}

func (p *strictPolicy) CheckWorkReferences(ctx context.Context, orderID int64, staffName string) error {
	if _, err := p.orders.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
		}
		return apperrors.NewInternalError(err)
	}
	active := true
	members, err := p.staff.List(ctx, repository.StaffFilter{Active: &active})
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	for _, member := range members {
		if member.Name == staffName {
			return nil
		}
	}
	return apperrors.NewNotFound("staff member", map[string]any{"staff_name": staffName})
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/boutique-service/internal/domain"
	"github.com/spec-kit/boutique-service/internal/events"
	"github.com/spec-kit/boutique-service/internal/repository"
	apperrors "github.com/spec-kit/boutique-service/pkg/util/errorutil"
)

// seedRoster is the fixed initial staff for a fresh deployment. Tailors
// report to one of the seeded masters.
var seedRoster = []domain.StaffMember{
	{Name: "Mariswamy", Role: domain.StaffRoleMaster, Active: true},
	{Name: "Hassan", Role: domain.StaffRoleMaster, Active: true},
	{Name: "Shameen", Role: domain.StaffRoleMaster, Active: true},
	{Name: "Abdul", Role: domain.StaffRoleMaster, Active: true},
	{Name: "Anand Rao", Role: domain.StaffRoleTailor, ReportsTo: "Mariswamy", Active: true},
	{Name: "Lucky", Role: domain.StaffRoleTailor, ReportsTo: "Mariswamy", Active: true},
	{Name: "Aslam", Role: domain.StaffRoleTailor, ReportsTo: "Hassan", Active: true},
	{Name: "Shafiq", Role: domain.StaffRoleTailor, ReportsTo: "Hassan", Active: true},
	{Name: "Sameerul", Role: domain.StaffRoleTailor, ReportsTo: "Hassan", Active: true},
	{Name: "Sridhar", Role: domain.StaffRoleTailor, ReportsTo: "Shameen", Active: true},
	{Name: "Rashid", Role: domain.StaffRoleTailor, ReportsTo: "Shameen", Active: true},
	{Name: "Shaman", Role: domain.StaffRoleTailor, ReportsTo: "Shameen", Active: true},
	{Name: "Zajeer", Role: domain.StaffRoleTailor, ReportsTo: "Shameen", Active: true},
}

// StaffService manages the staff directory.
type StaffService struct {
	staff      repository.StaffRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// StaffDependencies bundles collaborators for the staff service.
type StaffDependencies struct {
	StaffRepo  repository.StaffRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewStaffService constructs the service.
func NewStaffService(deps StaffDependencies) *StaffService {
	return &StaffService{
		staff:      deps.StaffRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ListStaff returns active staff members, optionally restricted to one role.
// Unfiltered listings are ordered by role then name, filtered ones by name.
func (s *StaffService) ListStaff(ctx context.Context, role *domain.StaffRole) ([]domain.StaffMember, error) {
	if role != nil && !domain.IsValidStaffRole(*role) {
		return nil, apperrors.NewValidationError("unknown staff role",
			map[string]any{"field": "role", "value": *role})
	}
	active := true
	members, err := s.staff.List(ctx, repository.StaffFilter{Role: role, Active: &active})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return members, nil
}

// SeedIfEmpty inserts the fixed initial roster into an empty directory.
// A non-empty directory is left untouched. Duplicate-key failures from a
// concurrent seeder are treated as benign no-ops; the name uniqueness
// constraint guarantees no double insert.
func (s *StaffService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.staff.Count(ctx)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if count > 0 {
		return nil
	}

	inserted := 0
	for i := range seedRoster {
		member := seedRoster[i]
		if err := s.staff.Insert(ctx, &member); err != nil {
			if apperrors.IsUniqueViolation(err) || apperrors.IsConflict(err) {
				continue
			}
			return apperrors.NewInternalError(err)
		}
		inserted++
	}

	if s.logger != nil {
		s.logger.Info("staff roster seeded", zap.Int("inserted", inserted))
	}
	s.publish(ctx, events.Event{
		Type:    events.EventStaffSeeded,
		Payload: events.StaffSeededPayload{Inserted: inserted},
	})
	return nil
}

func (s *StaffService) publish(ctx context.Context, event events.Event) {
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

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/boutique-service/internal/domain"
)

func setupStaffService(t *testing.T) (*StaffService, *memStaffRepo) {
	t.Helper()
	repo := &memStaffRepo{}
	staffService := NewStaffService(StaffDependencies{StaffRepo: repo})
	return staffService, repo
}

func TestSeedIfEmptyPopulatesRoster(t *testing.T) {
	staffService, repo := setupStaffService(t)
	ctx := context.Background()

	require.NoError(t, staffService.SeedIfEmpty(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(seedRoster)), count)

	// Every seeded tailor reports to a seeded master.
	masters := make(map[string]bool)
	for _, member := range repo.members {
		if member.Role == domain.StaffRoleMaster {
			masters[member.Name] = true
		}
	}
	for _, member := range repo.members {
		if member.Role == domain.StaffRoleTailor {
			assert.True(t, masters[member.ReportsTo],
				"tailor %s reports to unknown master %s", member.Name, member.ReportsTo)
		}
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	staffService, repo := setupStaffService(t)
	ctx := context.Background()

	require.NoError(t, staffService.SeedIfEmpty(ctx))
	countAfterFirst, err := repo.Count(ctx)
	require.NoError(t, err)

	require.NoError(t, staffService.SeedIfEmpty(ctx))
	countAfterSecond, err := repo.Count(ctx)
	require.NoError(t, err)

	assert.Equal(t, countAfterFirst, countAfterSecond)
}

func TestSeedIfEmptyLeavesExistingDirectoryUntouched(t *testing.T) {
	staffService, repo := setupStaffService(t)
	ctx := context.Background()

	existing := domain.StaffMember{Name: "Vishwa", Role: domain.StaffRoleMaster, Active: true}
	require.NoError(t, repo.Insert(ctx, &existing))

	require.NoError(t, staffService.SeedIfEmpty(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// zeroCountStaffRepo simulates a concurrent seeder that has already inserted
// the roster between our emptiness check and our inserts.
type zeroCountStaffRepo struct {
	memStaffRepo
}

func (z *zeroCountStaffRepo) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestSeedIfEmptyTreatsDuplicateInsertAsNoop(t *testing.T) {
	repo := &zeroCountStaffRepo{}
	staffService := NewStaffService(StaffDependencies{StaffRepo: repo})
	ctx := context.Background()

	require.NoError(t, staffService.SeedIfEmpty(ctx))
	// Second run sees count 0 again and every insert collides.
	require.NoError(t, staffService.SeedIfEmpty(ctx))

	assert.Len(t, repo.members, len(seedRoster))
}

func TestListStaffFiltersAndOrders(t *testing.T) {
	staffService, repo := setupStaffService(t)
	ctx := context.Background()

	require.NoError(t, staffService.SeedIfEmpty(ctx))
	inactive := domain.StaffMember{Name: "Retired", Role: domain.StaffRoleTailor, Active: false}
	require.NoError(t, repo.Insert(ctx, &inactive))

	role := domain.StaffRoleMaster
	masters, err := staffService.ListStaff(ctx, &role)
	require.NoError(t, err)
	require.Len(t, masters, 4)
	assert.Equal(t, "Abdul", masters[0].Name, "filtered listing is ordered by name")

	all, err := staffService.ListStaff(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, len(seedRoster), "inactive members are excluded")
	for _, member := range all {
		assert.True(t, member.Active)
	}
}

func TestListStaffRejectsUnknownRole(t *testing.T) {
	staffService, _ := setupStaffService(t)

	bogus := domain.StaffRole("Ironing")
	_, err := staffService.ListStaff(context.Background(), &bogus)
	requireErrorCode(t, err, "VALIDATION_FAILED")
}

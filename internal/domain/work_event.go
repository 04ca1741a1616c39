package domain

// WorkType labels a unit of logged work. The set of valid labels depends on
// the role the work was performed under.
type WorkType string

const (
	WorkTypeMarking        WorkType = "Marking"
	WorkTypeCutting        WorkType = "Cutting"
	WorkTypeBlouseStitched WorkType = "Blouse Stitched"
	WorkTypeEmbroideryDone WorkType = "Embroidery Done"
)

// WorkTypesByRole is the closed per-role work-type enumeration, consumed by
// both the work-log validator and the performance rollups.
var WorkTypesByRole = map[StaffRole][]WorkType{
	StaffRoleMaster:     {WorkTypeMarking, WorkTypeCutting},
	StaffRoleTailor:     {WorkTypeBlouseStitched},
	StaffRoleEmbroidery: {WorkTypeEmbroideryDone},
}

// DailyTargets holds the fixed per-day distinct-order targets. Work types
// without an entry have no target.
var DailyTargets = map[WorkType]int{
	WorkTypeMarking:        4,
	WorkTypeCutting:        6,
	WorkTypeBlouseStitched: 3,
}

// IsValidWorkType reports whether workType is allowed for the given role.
func IsValidWorkType(role StaffRole, workType WorkType) bool {
	for _, candidate := range WorkTypesByRole[role] {
		if candidate == workType {
			return true
		}
	}
	return false
}

// WorkEvent is one append-only ledger entry. Role is duplicated from the
// staff record at log time: the ledger records historical fact and must not
// change if the member's role later changes. Events are never updated or
// removed; they are the sole source of truth for performance metrics.
type WorkEvent struct {
	ID        int64
	WorkDate  string
	OrderID   int64
	StaffName string
	Role      StaffRole
	WorkType  WorkType
	Notes     string
}

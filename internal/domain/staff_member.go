package domain

// StaffRole enumerates workshop roles.
type StaffRole string

const (
	StaffRoleMaster     StaffRole = "Master"
	StaffRoleTailor     StaffRole = "Tailor"
	StaffRoleEmbroidery StaffRole = "Embroidery"
)

// StaffRoles lists every valid role.
var StaffRoles = []StaffRole{StaffRoleMaster, StaffRoleTailor, StaffRoleEmbroidery}

// IsValidStaffRole reports whether role belongs to the fixed role set.
func IsValidStaffRole(role StaffRole) bool {
	for _, candidate := range StaffRoles {
		if candidate == role {
			return true
		}
	}
	return false
}

// StaffMember models a workshop worker. Name is the unique identifier.
// Members are never deleted; deactivation keeps work-log attribution intact.
type StaffMember struct {
	Name      string
	Role      StaffRole
	ReportsTo string
	Active    bool
}

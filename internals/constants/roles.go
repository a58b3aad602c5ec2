package constants

// Role vocabulary (users.role)
const (
	RoleDeveloper = "developer"
	RoleAdmin     = "admin"
	RoleTeacher   = "teacher"
	RoleStudent   = "student"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleDeveloper,
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	// Roles a school admin is allowed to provision.
	ProvisionableRoles = []string{
		RoleTeacher,
		RoleStudent,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

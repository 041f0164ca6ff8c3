package constants

import "fmt"

const (
	RoleLearner    = "learner"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
	RoleOwner      = "owner"
)

// Template pesan error role
const ErrOnlyAdminsCanAccess = "❌ Only admin or owner can access %s."

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var AdminAndAbove = []string{
	RoleAdmin,
	RoleOwner,
}
